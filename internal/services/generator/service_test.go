package generator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/services/generator"
)

func containsAny(s, chars string) bool { return strings.ContainsAny(s, chars) }

func TestGenerate_ContainsEveryClass(t *testing.T) {
	g := generator.New()
	for i := 0; i < 50; i++ {
		pw, err := g.Generate(20)
		require.NoError(t, err)

		assert.Len(t, pw, 20)
		assert.True(t, containsAny(pw, generator.Upper), "upper in %q", pw)
		assert.True(t, containsAny(pw, generator.Lower), "lower in %q", pw)
		assert.True(t, containsAny(pw, generator.Digits), "digit in %q", pw)
		assert.True(t, containsAny(pw, generator.Symbols), "symbol in %q", pw)
	}
}

func TestGenerate_OnlyKnownCharacters(t *testing.T) {
	all := generator.Upper + generator.Lower + generator.Digits + generator.Symbols
	pw, err := generator.New().Generate(256)
	require.NoError(t, err)

	for _, r := range pw {
		assert.True(t, strings.ContainsRune(all, r), "unexpected %q", r)
	}
}

func TestGenerate_ExactLengths(t *testing.T) {
	g := generator.New()
	for _, n := range []int{generator.MinLength, 5, generator.DefaultLength, 64} {
		pw, err := g.Generate(n)
		require.NoError(t, err)
		assert.Len(t, pw, n)
	}
}

func TestGenerate_MinLengthHasOneOfEach(t *testing.T) {
	pw, err := generator.New().Generate(generator.MinLength)
	require.NoError(t, err)

	for _, class := range []string{generator.Upper, generator.Lower, generator.Digits, generator.Symbols} {
		assert.Equal(t, 1, countIn(pw, class), "%q", pw)
	}
}

func TestGenerate_Unique(t *testing.T) {
	g := generator.New()
	a, err := g.Generate(16)
	require.NoError(t, err)
	b, err := g.Generate(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerate_ShufflesGuaranteedCharacters(t *testing.T) {
	// Without the shuffle the symbol would always be last.
	g := generator.New()
	lastIsSymbol := 0
	for i := 0; i < 200; i++ {
		pw, err := g.Generate(generator.MinLength)
		require.NoError(t, err)
		if strings.ContainsRune(generator.Symbols, rune(pw[len(pw)-1])) {
			lastIsSymbol++
		}
	}
	assert.Less(t, lastIsSymbol, 200)
}

func TestGenerate_RejectsShortLengths(t *testing.T) {
	g := generator.New()
	for _, n := range []int{-1, 0, 1, 3} {
		pw, err := g.Generate(n)
		assert.ErrorIs(t, err, generator.ErrLengthTooShort, "length %d", n)
		assert.Empty(t, pw)
	}
}

func TestGenerate_RandomnessFailure(t *testing.T) {
	_, err := generator.NewWithReader(errReader{}).Generate(8)
	require.Error(t, err)
	assert.NotErrorIs(t, err, generator.ErrLengthTooShort)
}

func countIn(s, chars string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(chars, r) {
			n++
		}
	}
	return n
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }
