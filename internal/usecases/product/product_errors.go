package product

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de produtos e extras
var (
	// Erros de validação
	ErrDadosObrigatorios = errors.New("dados obrigatórios ausentes")
	ErrValorInvalido     = errors.New("valor numérico inválido ou negativo")

	// Erros de domínio
	ErrConflito           = errors.New("já existe um registo com essa referência")
	ErrNaoEncontrado      = errors.New("registo não encontrado")
	ErrReferenciaInvalida = errors.New("categoria ou unidade inexistente")

	// Erros de banco de dados
	ErrOperacaoBD = errors.New("erro ao realizar operação no banco de dados")
)

// ProductError é um erro com contexto adicional para produtos e extras
type ProductError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProductError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError cria um novo ProductError
func NewProductError(err error, code string, details string) *ProductError {
	return &ProductError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
