package document

import (
	"strings"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/storage"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// CheckUpload valida o nome enviado e devolve o nome original
// sanitizado que será exibido e usado no download.
func CheckUpload(filename string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", httperr.Validation("Selecione um arquivo.")
	}
	if !allowedExtensions[storage.Ext(filename)] {
		return "", httperr.Validation("Somente PDF, DOC ou DOCX.")
	}

	name := storage.SanitizeFilename(filename)
	if strings.TrimSuffix(name, storage.Ext(name)) == "" {
		return "", httperr.Validation("Nome de arquivo inválido.")
	}
	return name, nil
}
