package repository

import (
	"errors"

	"github.com/lib/pq"
)

// código de erro do Postgres para violação de constraint única
const uniqueViolationCode = "23505"

// ErrDuplicado sinaliza que a inserção violou uma chave natural única.
// As tabelas de margens, mínimos, tempos, unidades e categorias têm
// constraints únicas, por isso duas inserções concorrentes com a mesma
// chave nunca passam ambas: a segunda devolve este erro.
var ErrDuplicado = errors.New("registo duplicado")

// IsUniqueViolation verifica se o erro veio de uma constraint única
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}
