package crypto

import (
	"crypto/sha256"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"passvault/internal/util/memzero"
)

const (
	// KDFIterations is the PBKDF2 work factor. It is not stored in the vault,
	// so changing it makes existing vaults unreadable.
	KDFIterations = 65536
	KeyBytes      = 32
	SaltBytes     = 16
)

// Key is a derived symmetric key.
type Key [KeyBytes]byte

// Wipe zeroes the key in place.
func (k *Key) Wipe() { memzero.Zero(k[:]) }

// DeriveKey stretches passphrase with salt into a Key. The same inputs always
// yield the same key.
func DeriveKey(passphrase, salt []byte) (Key, error) {
	var key Key
	if len(salt) != SaltBytes {
		return key, errors.Errorf("invalid salt length %d; want %d", len(salt), SaltBytes)
	}
	dk := pbkdf2.Key(passphrase, salt, KDFIterations, KeyBytes, sha256.New)
	copy(key[:], dk)
	memzero.Zero(dk)
	return key, nil
}
