package attachment

import (
	"io"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/storage"
)

// Upload é um arquivo recebido na borda HTTP. multipart.File satisfaz
// io.ReadSeeker.
type Upload struct {
	Filename string
	MimeType string
	Content  io.ReadSeeker
}

// CheckPhoto valida extensão e cabeçalho da imagem sem gravar nada.
func CheckPhoto(up Upload) error {
	if up.Content == nil || up.Filename == "" {
		return httperr.Validation("Selecione uma imagem.")
	}
	if !storage.IsPhotoExtension(storage.Ext(up.Filename)) {
		return httperr.Validation("Apenas imagens JPG, PNG ou WEBP.")
	}
	if _, err := storage.CheckImage(up.Content); err != nil {
		return httperr.Validation("O arquivo enviado não é uma imagem válida.")
	}
	return nil
}
