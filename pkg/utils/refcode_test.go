package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferencia(t *testing.T) {
	referencia, err := GenerateReferencia("P")

	assert.NoError(t, err)
	assert.Len(t, referencia, 8)
	assert.True(t, strings.HasPrefix(referencia, "P-"))

	for _, r := range referencia[2:] {
		assert.Contains(t, characters, string(r))
	}
}
