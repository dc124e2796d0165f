package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myprintpt/catalog-api/internal/domain"
)

func TestResolveMargem(t *testing.T) {
	categorias := []*domain.Categoria{
		{ID: 1, Nome: "Papelaria", Tipo: domain.TipoCategoriaProduto},
		{ID: 3, Nome: "Têxteis", Tipo: domain.TipoCategoriaProduto},
	}

	configuracao := &domain.Configuracao{
		ID:           1,
		MargemPadrao: 100,
		Margens: []*domain.MargemCategoria{
			{ID: 1, ConfiguracaoID: 1, Categoria: "Têxteis", Margem: 150},
		},
	}

	tests := []struct {
		name         string
		categoriaID  int
		configuracao *domain.Configuracao
		margemAtual  float64
		expected     float64
	}{
		{
			name:         "categoria com margem específica usa a margem da categoria",
			categoriaID:  3,
			configuracao: configuracao,
			margemAtual:  100,
			expected:     150,
		},
		{
			name:         "categoria sem margem específica mantém o valor atual",
			categoriaID:  1,
			configuracao: configuracao,
			margemAtual:  80,
			expected:     80,
		},
		{
			name:         "sem categoria selecionada mantém o valor atual",
			categoriaID:  0,
			configuracao: configuracao,
			margemAtual:  60,
			expected:     60,
		},
		{
			name:         "categoria desconhecida mantém o valor atual",
			categoriaID:  99,
			configuracao: configuracao,
			margemAtual:  70,
			expected:     70,
		},
		{
			name:         "sem configuração carregada mantém o valor atual",
			categoriaID:  3,
			configuracao: nil,
			margemAtual:  55,
			expected:     55,
		},
		{
			// o fallback é sempre o valor corrente do chamador, mesmo
			// quando difere da margem padrão da configuração
			name:         "fallback não recorre à margem padrão explícita",
			categoriaID:  1,
			configuracao: configuracao,
			margemAtual:  42,
			expected:     42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margem := ResolveMargem(tt.categoriaID, categorias, tt.configuracao, tt.margemAtual)
			assert.Equal(t, tt.expected, margem)
		})
	}
}

func TestPrecoSugerido(t *testing.T) {
	tests := []struct {
		name      string
		custoBase float64
		margem    float64
		expected  float64
	}{
		{
			name:      "margem de 100 por cento duplica o custo",
			custoBase: 10,
			margem:    100,
			expected:  20,
		},
		{
			name:      "margem zero devolve o custo",
			custoBase: 12.5,
			margem:    0,
			expected:  12.5,
		},
		{
			name:      "arredonda a duas casas decimais",
			custoBase: 0.1,
			margem:    150,
			expected:  0.25,
		},
		{
			name:      "não acumula erro binário em valores monetários",
			custoBase: 1.1,
			margem:    10,
			expected:  1.21,
		},
		{
			name:      "custo zero devolve zero",
			custoBase: 0,
			margem:    100,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrecoSugerido(tt.custoBase, tt.margem))
		})
	}
}
