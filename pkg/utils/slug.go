package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify deriva um slug a partir de um nome: remove acentos, converte
// para minúsculas e troca separadores por hífens ("Têxteis" -> "texteis",
// "Grande Formato" -> "grande-formato").
func Slugify(nome string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	semAcentos, _, err := transform.String(t, nome)
	if err != nil {
		semAcentos = nome
	}

	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(semAcentos)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '/':
			b.WriteRune('-')
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}
