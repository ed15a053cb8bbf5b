package storage

import (
	"errors"
	"image"
	"io"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var ErrNotImage = errors.New("storage: upload is not a supported image")

var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func IsPhotoExtension(ext string) bool {
	return photoExtensions[ext]
}

// CheckImage lê apenas o cabeçalho da imagem para confirmar o formato e
// volta o leitor ao início. Nenhuma transformação é feita.
func CheckImage(r io.ReadSeeker) (string, error) {
	_, format, err := image.DecodeConfig(r)
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil {
		return "", seekErr
	}
	if err != nil {
		return "", ErrNotImage
	}
	return format, nil
}
