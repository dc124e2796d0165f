package domain

import "time"

// Extra é um serviço de acabamento (plastificação, corte, furação, ...)
// com custo e margem próprios. Tal como o produto, a remoção é lógica.
type Extra struct {
	ID               int       `json:"id"`
	Nome             string    `json:"nome"`
	Descricao        *string   `json:"descricao"`
	CategoriaID      int       `json:"categoria_id"`
	UnidadeID        int       `json:"unidade_id"`
	CustoBase        float64   `json:"custo_base"`
	Margem           float64   `json:"margem"`
	TipoAplicacao    *string   `json:"tipo_aplicacao"`
	UnidadeFaturacao *string   `json:"unidade_faturacao"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NovoExtraRequest é o payload de criação de um extra
type NovoExtraRequest struct {
	Nome             string  `json:"nome"`
	Descricao        *string `json:"descricao"`
	CategoriaID      int     `json:"categoria_id"`
	UnidadeID        int     `json:"unidade_id"`
	CustoBase        Numero  `json:"custo_base"`
	Margem           Numero  `json:"margem"`
	TipoAplicacao    *string `json:"tipo_aplicacao"`
	UnidadeFaturacao *string `json:"unidade_faturacao"`
}

// AtualizaExtraRequest transporta os campos editáveis de um extra.
// Campos nil/ausentes não são alterados.
type AtualizaExtraRequest struct {
	ID               int     `json:"id"`
	Nome             *string `json:"nome"`
	Descricao        *string `json:"descricao"`
	CategoriaID      *int    `json:"categoria_id"`
	UnidadeID        *int    `json:"unidade_id"`
	CustoBase        Numero  `json:"custo_base"`
	Margem           Numero  `json:"margem"`
	TipoAplicacao    *string `json:"tipo_aplicacao"`
	UnidadeFaturacao *string `json:"unidade_faturacao"`
}
