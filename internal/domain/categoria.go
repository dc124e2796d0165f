package domain

import "time"

// TipoCategoria distingue a que parte do catálogo a categoria se aplica
type TipoCategoria string

const (
	TipoCategoriaGeral   TipoCategoria = "geral"
	TipoCategoriaProduto TipoCategoria = "produto"
	TipoCategoriaExtra   TipoCategoria = "extra"
)

// Valido indica se o tipo é um dos valores conhecidos
func (t TipoCategoria) Valido() bool {
	return t == TipoCategoriaGeral || t == TipoCategoriaProduto || t == TipoCategoriaExtra
}

// Categoria agrupa produtos e extras. O slug é derivado do nome
// (minúsculas, sem acentos, hífens) e a ordem de apresentação é
// atribuída automaticamente dentro de cada tipo.
type Categoria struct {
	ID        int           `json:"id"`
	Nome      string        `json:"nome"`
	Slug      string        `json:"slug"`
	Tipo      TipoCategoria `json:"tipo"`
	Ordem     int           `json:"ordem"`
	Status    Status        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// AtualizaCategoriaRequest transporta os campos editáveis de uma
// categoria. Campos nil não são alterados; o slug é recalculado quando o
// nome muda.
type AtualizaCategoriaRequest struct {
	ID     int            `json:"id"`
	Nome   *string        `json:"nome"`
	Tipo   *TipoCategoria `json:"tipo"`
	Ordem  *int           `json:"ordem"`
	Status *Status        `json:"status"`
}
