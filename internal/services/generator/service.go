package generator

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"passvault/internal/domain"
)

// Character classes. Every generated password contains at least one of each.
const (
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

const (
	// MinLength is one character per class.
	MinLength = 4
	// DefaultLength is used when a credential is added without a secret.
	DefaultLength = 16
)

// ErrLengthTooShort is returned for lengths that cannot hold every class.
var ErrLengthTooShort = errors.New("password length must be at least 4")

var classes = [...]string{Upper, Lower, Digits, Symbols}

// Generator draws passwords from a cryptographically secure source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewWithReader returns a Generator reading randomness from r.
func NewWithReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate returns a password of exactly length characters.
func (g *Generator) Generate(length int) (string, error) {
	if length < MinLength {
		return "", errors.Wrapf(ErrLengthTooShort, "got %d", length)
	}

	all := Upper + Lower + Digits + Symbols
	out := make([]byte, 0, length)
	for i := 0; i < length-len(classes); i++ {
		c, err := g.pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates, so the guaranteed characters are not stuck at the end.
	for i := len(out) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

func (g *Generator) pick(alphabet string) (byte, error) {
	i, err := g.intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "cannot read randomness")
	}
	return int(v.Int64()), nil
}

// Compile-time assertion that Generator implements domain.PasswordGenerator.
var _ domain.PasswordGenerator = (*Generator)(nil)
