package domain

// Status representa o estado de um registo do catálogo.
// A remoção de produtos e extras é sempre lógica: o registo passa a
// "inativo" e deixa de aparecer nas listagens por omissão.
type Status string

const (
	StatusAtivo   Status = "ativo"
	StatusInativo Status = "inativo"
)

// Valido indica se o status é um dos valores conhecidos
func (s Status) Valido() bool {
	return s == StatusAtivo || s == StatusInativo
}
