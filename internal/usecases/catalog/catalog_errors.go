package catalog

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de unidades e categorias
var (
	// Erros de validação
	ErrDadosObrigatorios = errors.New("dados obrigatórios ausentes")
	ErrTipoInvalido      = errors.New("tipo de categoria inválido")

	// Erros de domínio
	ErrConflito      = errors.New("já existe um registo com esse nome")
	ErrNaoEncontrado = errors.New("registo não encontrado")
	ErrEmUso         = errors.New("registo referenciado por produtos ou extras")

	// Erros de banco de dados
	ErrOperacaoBD = errors.New("erro ao realizar operação no banco de dados")
)

// CatalogError é um erro com contexto adicional para o catálogo
type CatalogError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError cria um novo CatalogError
func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
