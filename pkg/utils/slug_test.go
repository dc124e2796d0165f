package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		nome     string
		expected string
	}{
		{name: "remove acentos", nome: "Têxteis", expected: "texteis"},
		{name: "espaços viram hífens", nome: "Grande Formato", expected: "grande-formato"},
		{name: "cedilha e til", nome: "Serviços Gráficos", expected: "servicos-graficos"},
		{name: "barras viram hífens", nome: "Impressão/Corte", expected: "impressao-corte"},
		{name: "hífens duplicados são comprimidos", nome: "Brindes - Promocionais", expected: "brindes-promocionais"},
		{name: "espaços nas pontas são aparados", nome: "  Papelaria  ", expected: "papelaria"},
		{name: "números são preservados", nome: "Formato A3", expected: "formato-a3"},
		{name: "pontuação é descartada", nome: "Acabamentos (manuais)", expected: "acabamentos-manuais"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.nome))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.236))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -2.57, RoundWithTwoDecimalPlace(-2.567))
}
