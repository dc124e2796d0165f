package domain

import "time"

// Produto é um item do catálogo com custo base, margem e a cauda de
// atributos técnicos opcionais dos produtos de impressão. A margem é
// preenchida na criação a partir da configuração (margem da categoria ou
// margem padrão) mas é editável de forma independente a partir daí.
type Produto struct {
	ID          int     `json:"id"`
	Referencia  string  `json:"referencia"`
	Nome        string  `json:"nome"`
	Descricao   *string `json:"descricao"`
	CategoriaID int     `json:"categoria_id"`
	UnidadeID   int     `json:"unidade_id"`
	CustoBase   float64 `json:"custo_base"`
	Margem      float64 `json:"margem"`

	// Atributos técnicos opcionais (dimensões, papel, acabamentos)
	LarguraMM  *float64 `json:"largura_mm"`
	AlturaMM   *float64 `json:"altura_mm"`
	Gramagem   *float64 `json:"gramagem"`
	TipoPapel  *string  `json:"tipo_papel"`
	Cores      *string  `json:"cores"`
	Acabamento *string  `json:"acabamento"`
	Paginas    *int     `json:"paginas"`
	Orientacao *string  `json:"orientacao"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NovoProdutoRequest é o payload de criação de um produto. Os campos
// numéricos chegam como Numero porque os formulários enviam strings.
type NovoProdutoRequest struct {
	Referencia  string  `json:"referencia"`
	Nome        string  `json:"nome"`
	Descricao   *string `json:"descricao"`
	CategoriaID int     `json:"categoria_id"`
	UnidadeID   int     `json:"unidade_id"`
	CustoBase   Numero  `json:"custo_base"`
	Margem      Numero  `json:"margem"`
	LarguraMM   Numero  `json:"largura_mm"`
	AlturaMM    Numero  `json:"altura_mm"`
	Gramagem    Numero  `json:"gramagem"`
	TipoPapel   *string `json:"tipo_papel"`
	Cores       *string `json:"cores"`
	Acabamento  *string `json:"acabamento"`
	Paginas     Numero  `json:"paginas"`
	Orientacao  *string `json:"orientacao"`
}

// AtualizaProdutoRequest transporta os campos editáveis de um produto.
// Campos nil/ausentes não são alterados.
type AtualizaProdutoRequest struct {
	ID          int     `json:"id"`
	Referencia  *string `json:"referencia"`
	Nome        *string `json:"nome"`
	Descricao   *string `json:"descricao"`
	CategoriaID *int    `json:"categoria_id"`
	UnidadeID   *int    `json:"unidade_id"`
	CustoBase   Numero  `json:"custo_base"`
	Margem      Numero  `json:"margem"`
	LarguraMM   Numero  `json:"largura_mm"`
	AlturaMM    Numero  `json:"altura_mm"`
	Gramagem    Numero  `json:"gramagem"`
	TipoPapel   *string `json:"tipo_papel"`
	Cores       *string `json:"cores"`
	Acabamento  *string `json:"acabamento"`
	Paginas     Numero  `json:"paginas"`
	Orientacao  *string `json:"orientacao"`
}
