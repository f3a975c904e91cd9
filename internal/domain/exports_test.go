package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"passvault/internal/domain"
	"passvault/internal/domain/types"
)

func TestFormatVersionExports(t *testing.T) {
	assert.Equal(t, types.FormatV0, domain.FormatV0)
	assert.Equal(t, types.FormatV1, domain.FormatV1)
	assert.True(t, domain.FormatV0.Valid())
	assert.True(t, domain.FormatV1.Valid())
	assert.False(t, domain.FormatVersion(2).Valid())
	assert.Equal(t, "v1", domain.FormatV1.String())
}
