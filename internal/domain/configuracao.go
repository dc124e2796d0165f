package domain

import "time"

// MargemPadraoInicial é a margem aplicada quando a configuração é criada
// pela primeira vez (criação preguiçosa no primeiro GET)
const MargemPadraoInicial = 100.0

// Configuracao é o registo único de configuração global de preços.
// Existe no máximo uma linha na tabela; as coleções filhas vivem em
// tabelas próprias com chave natural única dentro da configuração.
type Configuracao struct {
	ID           int                `json:"id"`
	MargemPadrao float64            `json:"margem_padrao"`
	Margens      []*MargemCategoria `json:"margens"`
	Minimos      []*MinimoFaturacao `json:"minimos"`
	Tempos       []*TempoPadrao     `json:"tempos"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// MargemCategoria é uma margem específica de uma categoria, que tem
// precedência sobre a margem padrão global
type MargemCategoria struct {
	ID             int     `json:"id"`
	ConfiguracaoID int     `json:"configuracao_id"`
	Categoria      string  `json:"categoria"`
	Margem         float64 `json:"margem"`
}

// MinimoFaturacao é o valor mínimo de faturação por tipo de unidade
type MinimoFaturacao struct {
	ID             int     `json:"id"`
	ConfiguracaoID int     `json:"configuracao_id"`
	Tipo           string  `json:"tipo"`
	ValorMinimo    float64 `json:"valor_minimo"`
}

// TempoPadrao é o tempo médio e o valor hora de uma operação padrão
type TempoPadrao struct {
	ID                int     `json:"id"`
	ConfiguracaoID    int     `json:"configuracao_id"`
	Operacao          string  `json:"operacao"`
	TempoMedioMinutos float64 `json:"tempo_medio_minutos"`
	ValorHora         float64 `json:"valor_hora"`
}

// MargemDaCategoria devolve a margem específica da categoria, se existir
func (c *Configuracao) MargemDaCategoria(nome string) (float64, bool) {
	for _, m := range c.Margens {
		if m.Categoria == nome {
			return m.Margem, true
		}
	}
	return 0, false
}
