package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferencia gera um código de referência curto para produtos de
// demonstração (ex.: "P-4TQ8XK"). As referências reais são atribuídas
// manualmente pela equipa.
func GenerateReferencia(prefixo string) (string, error) {
	id, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "", err
	}
	return prefixo + "-" + id, nil
}
