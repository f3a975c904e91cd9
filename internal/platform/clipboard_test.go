package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	content string
	slept   time.Duration
	onSleep func(*fakeClipboard)
	readErr error
}

func (f *fakeClipboard) system() *systemClipboard {
	return &systemClipboard{
		read:  func() (string, error) { return f.content, f.readErr },
		write: func(s string) error { f.content = s; return nil },
		sleep: func(d time.Duration) {
			f.slept = d
			if f.onSleep != nil {
				f.onSleep(f)
			}
		},
	}
}

func TestClipboard_SetWithoutTTL(t *testing.T) {
	f := &fakeClipboard{}

	require.NoError(t, f.system().Set("s3cret", 0))

	assert.Equal(t, "s3cret", f.content)
	assert.Zero(t, f.slept)
}

func TestClipboard_ClearsAfterTTL(t *testing.T) {
	f := &fakeClipboard{}

	require.NoError(t, f.system().Set("s3cret", 30*time.Second))

	assert.Equal(t, 30*time.Second, f.slept)
	assert.Empty(t, f.content)
}

func TestClipboard_KeepsNewerContent(t *testing.T) {
	f := &fakeClipboard{onSleep: func(f *fakeClipboard) { f.content = "user copied this" }}

	require.NoError(t, f.system().Set("s3cret", time.Second))

	assert.Equal(t, "user copied this", f.content)
}

func TestClipboard_ReadFailure(t *testing.T) {
	f := &fakeClipboard{readErr: errors.New("xsel died")}

	assert.Error(t, f.system().Set("s3cret", time.Second))
}

func TestUnsupportedClipboard(t *testing.T) {
	assert.ErrorIs(t, unsupportedClipboard{}.Set("x", 0), ErrClipboardUnsupported)
}
