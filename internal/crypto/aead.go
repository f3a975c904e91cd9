package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/pkg/errors"
)

const (
	// NonceBytes is the standard GCM nonce size.
	NonceBytes = 12
	// TagBytes is the GCM authentication tag appended to every ciphertext.
	TagBytes = 16
)

// ErrAuthentication is returned by Open when the tag does not verify.
var ErrAuthentication = errors.New("message authentication failed")

// Seal encrypts plaintext under key and nonce, authenticating aad as well.
// The result is ciphertext||tag and is deterministic for identical inputs.
// A nonce must never be reused with the same key.
func Seal(key *Key, nonce, plaintext, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, aad), nil
}

// Open verifies and decrypts sealed. Any mismatch in key, nonce, aad or the
// sealed bytes yields ErrAuthentication.
func Open(key *Key, nonce, sealed, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	pt, err := gcm.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}

// NewSalt returns SaltBytes of fresh randomness.
func NewSalt() ([]byte, error) {
	return randomBytes(SaltBytes, "salt")
}

// NewNonce returns NonceBytes of fresh randomness.
func NewNonce() ([]byte, error) {
	return randomBytes(NonceBytes, "nonce")
}

func randomBytes(n int, what string) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Wrapf(err, "cannot generate %s", what)
	}
	return b, nil
}

func newGCM(key *Key, nonce []byte) (cipher.AEAD, error) {
	if len(nonce) != NonceBytes {
		return nil, errors.Errorf("invalid nonce length %d; want %d", len(nonce), NonceBytes)
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, errors.Wrap(err, "cannot create aes block cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create gcm cipher")
	}
	return gcm, nil
}
