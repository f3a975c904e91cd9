package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/domain"
	"passvault/internal/store"
)

func TestCollectionCodec_RoundTrip(t *testing.T) {
	cases := map[string]domain.Collection{
		"empty":  {},
		"single": {{Service: "github", Username: "alice", Secret: "xyz"}},
		"many": {
			{Service: "github", Username: "alice", Secret: "xyz"},
			{Service: "GitHub", Username: "bob", Secret: ""},
			{Service: "mail", Username: "", Secret: "p@ss w0rd"},
			{Service: "bank ü", Username: "zoë", Secret: "密码🔑"},
		},
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := store.EncodeCollection(creds)
			require.NoError(t, err)

			got, err := store.DecodeCollection(b)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, creds, got)
		})
	}
}

func TestEncodeCollection_EmptyLayout(t *testing.T) {
	b, err := store.EncodeCollection(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestEncodeCollection_Layout(t *testing.T) {
	b, err := store.EncodeCollection(domain.Collection{{Service: "a", Username: "bc", Secret: ""}})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0, 0, 0, 1,
		0, 0, 0, 1, 'a',
		0, 0, 0, 2, 'b', 'c',
		0, 0, 0, 0,
	}, b)
}

func TestDecodeCollection_ReadsUint32Lengths(t *testing.T) {
	secret := make([]byte, 70000)
	for i := range secret {
		secret[i] = 'x'
	}
	creds := domain.Collection{{Service: "big", Username: "u", Secret: string(secret)}}

	b, err := store.EncodeCollection(creds)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0x11, 0x70}, b[4+4+3+4+1:4+4+3+4+1+4], "secret length prefix")

	got, err := store.DecodeCollection(b)
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestEncodeCollection_RejectsInvalidUTF8(t *testing.T) {
	_, err := store.EncodeCollection(domain.Collection{{Service: "ok", Username: "\xff", Secret: "x"}})
	require.Error(t, err)
}

func TestDecodeCollection_RejectsMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":           {},
		"short count":     {0, 0, 1},
		"count too large": {0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0},
		"missing record":  {0, 0, 0, 1},
		"truncated field": {0, 0, 0, 1, 0, 0, 0, 5, 'a', 'b'},
		"missing fields":  {0, 0, 0, 1, 0, 0, 0, 1, 'a', 0, 0, 0, 0},
		"trailing bytes":  {0, 0, 0, 0, 0x00},
		"field past end": {
			0, 0, 0, 1,
			0xff, 0xff, 0xff, 0xff,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
		"invalid utf8": {
			0, 0, 0, 1,
			0, 0, 0, 1, 0xff,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.DecodeCollection(b)
			assert.ErrorIs(t, err, store.ErrMalformedPayload)
		})
	}
}

func FuzzDecodeCollection(f *testing.F) {
	seed, _ := store.EncodeCollection(domain.Collection{{Service: "github", Username: "alice", Secret: "xyz"}})
	f.Add(seed)
	f.Add([]byte{0, 0, 0, 0})
	f.Add([]byte{0, 0, 0, 9, 1, 2, 3})
	f.Fuzz(func(t *testing.T, b []byte) {
		creds, err := store.DecodeCollection(b)
		if err != nil {
			require.ErrorIs(t, err, store.ErrMalformedPayload)
			return
		}
		// The encoding is canonical, so anything that decodes re-encodes to
		// the same bytes.
		again, err := store.EncodeCollection(creds)
		require.NoError(t, err)
		require.Equal(t, b, again)
	})
}
