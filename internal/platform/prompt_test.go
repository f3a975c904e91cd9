package platform_test

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/platform"
)

func TestReadLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("hunter2\r\nsecond\nlast"))

	for _, want := range []string{"hunter2", "second", "last"} {
		got, err := platform.ReadLine(r)
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}

	_, err := platform.ReadLine(r)
	assert.Error(t, err)
}

func TestReadPassphrase_NonTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in")
	require.NoError(t, os.WriteFile(path, []byte("s3cret\n"), 0o600))
	in, err := os.Open(path)
	require.NoError(t, err)
	defer in.Close()

	var out strings.Builder
	got, err := platform.ReadPassphrase("Master password: ", in, &out)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", string(got))
	assert.Equal(t, "Master password: ", out.String())
}
