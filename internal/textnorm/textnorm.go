// Package textnorm concentra a normalização de texto usada em buscas,
// relatórios e nomes de arquivo.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents decompõe s (NFD) e remove as marcas diacríticas.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Key devolve s em minúsculas e sem acentos: "Ebó" e "ebo" viram "ebo".
func Key(s string) string {
	if s == "" {
		return ""
	}
	return StripAccents(strings.ToLower(s))
}

// ASCII decompõe s em forma de compatibilidade (NFKD) e descarta tudo
// que não for ASCII.
func ASCII(s string) string {
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
