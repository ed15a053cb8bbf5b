package storage

import (
	"path/filepath"
	"strings"

	"github.com/BruksfildServices01/odutech/internal/textnorm"
)

const FallbackName = "arquivo"

// SanitizeFilename reduz o nome enviado a [A-Za-z0-9_.-], troca espaços
// e separadores de caminho por "_" e remove "." e "_" das pontas.
// Pode devolver "" quando nada aproveitável sobra.
func SanitizeFilename(name string) string {
	s := textnorm.ASCII(name)
	s = strings.NewReplacer("/", " ", "\\", " ").Replace(s)
	s = strings.Join(strings.Fields(s), "_")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "._")
}

// Ext devolve a extensão em minúsculas do nome já sanitizado.
func Ext(name string) string {
	return strings.ToLower(filepath.Ext(SanitizeFilename(name)))
}
