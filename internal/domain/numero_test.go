package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeroUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Numero
		wantErr  bool
	}{
		{name: "número JSON", payload: `12.5`, expected: NumeroDe(12.5)},
		{name: "inteiro JSON", payload: `100`, expected: NumeroDe(100)},
		{name: "string numérica", payload: `"12.5"`, expected: NumeroDe(12.5)},
		{name: "string com vírgula decimal", payload: `"12,5"`, expected: NumeroDe(12.5)},
		{name: "string com espaços", payload: `" 8 "`, expected: NumeroDe(8)},
		{name: "null é ausente", payload: `null`, expected: Numero{}},
		{name: "string vazia é ausente", payload: `""`, expected: Numero{}},
		{name: "string só com espaços é ausente", payload: `"   "`, expected: Numero{}},
		{name: "zero é presente", payload: `0`, expected: NumeroDe(0)},
		{name: "texto não numérico falha", payload: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numero
			err := json.Unmarshal([]byte(tt.payload), &n)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestNumeroMarshalJSON(t *testing.T) {
	presente, err := json.Marshal(NumeroDe(12.5))
	assert.NoError(t, err)
	assert.Equal(t, `12.5`, string(presente))

	ausente, err := json.Marshal(Numero{})
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(ausente))
}

func TestNumeroPtr(t *testing.T) {
	presente := NumeroDe(7.5).Ptr()
	if assert.NotNil(t, presente) {
		assert.Equal(t, 7.5, *presente)
	}

	assert.Nil(t, Numero{}.Ptr())
}
