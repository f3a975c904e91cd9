package store

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"

	"passvault/internal/domain"
)

// ErrMalformedPayload is returned when decrypted bytes do not describe a
// credential collection. Callers outside this package only ever see
// domain.ErrWrongPasswordOrCorrupt.
var ErrMalformedPayload = errors.New("malformed vault payload")

// Each record carries three uint32 length prefixes.
const minRecordBytes = 3 * 4

// EncodeCollection serialises creds as a uint32 record count followed by
// three uint32-length-prefixed UTF-8 strings per record (service, username,
// secret), all big-endian.
func EncodeCollection(creds domain.Collection) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint32(uint32(len(creds)))
	for i, c := range creds {
		for _, field := range [...]struct{ name, value string }{
			{"service", c.Service},
			{"username", c.Username},
			{"secret", c.Secret},
		} {
			if !utf8.ValidString(field.value) {
				return nil, errors.Errorf("record %d: %s is not valid UTF-8", i, field.name)
			}
			addString(&b, field.value)
		}
	}
	out, err := b.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode collection")
	}
	return out, nil
}

// DecodeCollection parses the output of EncodeCollection. Any structural
// problem, including trailing bytes, yields ErrMalformedPayload.
func DecodeCollection(payload []byte) (domain.Collection, error) {
	s := cryptobyte.String(payload)

	var count uint32
	if !s.ReadUint32(&count) {
		return nil, errors.Wrap(ErrMalformedPayload, "missing record count")
	}
	if uint64(count)*minRecordBytes > uint64(len(s)) {
		return nil, errors.Wrapf(ErrMalformedPayload, "record count %d exceeds payload", count)
	}

	creds := make(domain.Collection, 0, count)
	for i := uint32(0); i < count; i++ {
		var service, username, secret string
		if !readString(&s, &service) || !readString(&s, &username) || !readString(&s, &secret) {
			return nil, errors.Wrapf(ErrMalformedPayload, "record %d is truncated or not UTF-8", i)
		}
		creds = append(creds, domain.Credential{Service: service, Username: username, Secret: secret})
	}
	if !s.Empty() {
		return nil, errors.Wrapf(ErrMalformedPayload, "%d trailing bytes", len(s))
	}
	return creds, nil
}

func addString(b *cryptobyte.Builder, v string) {
	b.AddUint32LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(v))
	})
}

// readString reads one uint32-length-prefixed UTF-8 string. cryptobyte only
// has length-prefixed readers up to 24 bits, so the prefix is read by hand.
func readString(s *cryptobyte.String, out *string) bool {
	var n uint32
	var field []byte
	if !s.ReadUint32(&n) || uint64(n) > uint64(len(*s)) || !s.ReadBytes(&field, int(n)) || !utf8.Valid(field) {
		return false
	}
	*out = string(field)
	return true
}
