package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/myprintpt/catalog-api/internal/domain"
)

// ResolveMargem devolve a margem a aplicar a um produto ou extra da
// categoria dada. A margem específica da categoria tem precedência; sem
// categoria selecionada, sem configuração carregada, com categoria
// desconhecida ou sem margem específica, devolve a margem que o chamador
// já tem em mãos — no formulário de criação esse valor foi pré-carregado
// com a margem padrão, por isso o fallback nunca é a margem padrão
// explícita, é sempre o valor corrente do chamador.
func ResolveMargem(categoriaID int, categorias []*domain.Categoria, configuracao *domain.Configuracao, margemAtual float64) float64 {
	if categoriaID == 0 || configuracao == nil {
		return margemAtual
	}

	var nome string
	for _, c := range categorias {
		if c.ID == categoriaID {
			nome = c.Nome
			break
		}
	}
	if nome == "" {
		return margemAtual
	}

	if margem, ok := configuracao.MargemDaCategoria(nome); ok {
		return margem
	}

	return margemAtual
}

// PrecoSugerido calcula o preço de venda de referência:
// custo × (1 + margem/100), arredondado a duas casas decimais. O cálculo
// usa decimal para não acumular erro binário em valores monetários.
func PrecoSugerido(custoBase, margem float64) float64 {
	custo := decimal.NewFromFloat(custoBase)
	fator := decimal.NewFromFloat(margem).
		Div(decimal.NewFromInt(100)).
		Add(decimal.NewFromInt(1))

	preco, _ := custo.Mul(fator).Round(2).Float64()
	return preco
}
