package domain

import "time"

// Unidade é uma unidade de medida usada por produtos e extras (ex.: m2,
// unidade, folha). Não pode ser removida enquanto estiver referenciada.
type Unidade struct {
	ID          int       `json:"id"`
	Nome        string    `json:"nome"`
	Abreviatura *string   `json:"abreviatura"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AtualizaUnidadeRequest transporta os campos editáveis de uma unidade.
// Campos nil não são alterados.
type AtualizaUnidadeRequest struct {
	ID          int     `json:"id"`
	Nome        *string `json:"nome"`
	Abreviatura *string `json:"abreviatura"`
	Status      *Status `json:"status"`
}
