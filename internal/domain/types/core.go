package types

import "fmt"

// FormatVersion identifies the on-disk layout of a vault file.
type FormatVersion uint8

const (
	// FormatV0 is the headerless layout: salt || nonce || sealed.
	FormatV0 FormatVersion = 0
	// FormatV1 prefixes a magic and version byte and binds them, with the
	// salt, into the authentication tag.
	FormatV1 FormatVersion = 1
)

// String returns the version as "v<n>".
func (v FormatVersion) String() string { return fmt.Sprintf("v%d", uint8(v)) }

// Valid reports whether v is a layout this build can read and write.
func (v FormatVersion) Valid() bool { return v == FormatV0 || v == FormatV1 }
