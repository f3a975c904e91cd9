package store

import (
	"bytes"

	"passvault/internal/crypto"
	"passvault/internal/domain"
)

// vaultMagic opens every versioned vault file. Files without it are read as
// the headerless version 0 layout.
const vaultMagic = "PVLT"

const (
	// magic || version || salt, authenticated as associated data.
	v1HeaderLen = len(vaultMagic) + 1 + crypto.SaltBytes
	v1MinLen    = v1HeaderLen + crypto.NonceBytes
	v0MinLen    = crypto.SaltBytes + crypto.NonceBytes
)

// vaultFile is the parsed on-disk container.
//
//	v0: salt(16) || nonce(12) || sealed
//	v1: "PVLT" || 0x01 || salt(16) || nonce(12) || sealed, aad = bytes[0:21]
type vaultFile struct {
	version domain.FormatVersion
	aad     []byte // nil for v0
	salt    []byte
	nonce   []byte
	sealed  []byte
}

// newVaultFile lays out the header for a save; sealed is filled in later.
func newVaultFile(version domain.FormatVersion, salt, nonce []byte) vaultFile {
	f := vaultFile{version: version, salt: salt, nonce: nonce}
	if version == domain.FormatV1 {
		aad := make([]byte, 0, v1HeaderLen)
		aad = append(aad, vaultMagic...)
		aad = append(aad, byte(domain.FormatV1))
		aad = append(aad, salt...)
		f.aad = aad
	}
	return f
}

// marshal returns the complete file contents.
func (f vaultFile) marshal() []byte {
	var out []byte
	if f.version == domain.FormatV1 {
		out = make([]byte, 0, len(f.aad)+len(f.nonce)+len(f.sealed))
		out = append(out, f.aad...)
	} else {
		out = make([]byte, 0, len(f.salt)+len(f.nonce)+len(f.sealed))
		out = append(out, f.salt...)
	}
	out = append(out, f.nonce...)
	return append(out, f.sealed...)
}

// parseVaultFile splits raw into its parts. It reports false when raw is
// too short to hold the header of the layout it claims.
func parseVaultFile(raw []byte) (vaultFile, bool) {
	if len(raw) > len(vaultMagic) &&
		bytes.Equal(raw[:len(vaultMagic)], []byte(vaultMagic)) &&
		domain.FormatVersion(raw[len(vaultMagic)]) == domain.FormatV1 {
		if len(raw) < v1MinLen {
			return vaultFile{}, false
		}
		return vaultFile{
			version: domain.FormatV1,
			aad:     raw[:v1HeaderLen],
			salt:    raw[len(vaultMagic)+1 : v1HeaderLen],
			nonce:   raw[v1HeaderLen:v1MinLen],
			sealed:  raw[v1MinLen:],
		}, true
	}

	if len(raw) < v0MinLen {
		return vaultFile{}, false
	}
	return vaultFile{
		version: domain.FormatV0,
		salt:    raw[:crypto.SaltBytes],
		nonce:   raw[crypto.SaltBytes:v0MinLen],
		sealed:  raw[v0MinLen:],
	}, true
}
