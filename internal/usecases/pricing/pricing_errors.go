package pricing

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de configuração de preços
var (
	// Erros de validação
	ErrDadosObrigatorios = errors.New("dados obrigatórios ausentes")
	ErrValorInvalido     = errors.New("valor numérico inválido ou negativo")

	// Erros de domínio
	ErrConflito      = errors.New("já existe uma entrada com essa chave")
	ErrNaoEncontrado = errors.New("registo não encontrado")

	// Erros de banco de dados
	ErrOperacaoBD = errors.New("erro ao realizar operação no banco de dados")
)

// PricingError é um erro com contexto adicional para configuração
type PricingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PricingError) Unwrap() error {
	return e.Err
}

// NewPricingError cria um novo PricingError
func NewPricingError(err error, code string, details string) *PricingError {
	return &PricingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
