package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/odutech/internal/httperr"
)

type StoredFile struct {
	Name string
	Path string
	Size int64
}

// FileStore grava uploads em disco com nomes aleatórios.
type FileStore struct {
	token func() string
}

func NewFileStore() *FileStore {
	return &FileStore{token: randomToken}
}

// 128 bits aleatórios em hexadecimal
func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Store grava r em dir com um nome único derivado de suggested.
// O tamanho devolvido é o observado em disco, não o declarado.
func (s *FileStore) Store(dir string, r io.Reader, suggested string) (StoredFile, error) {
	original := SanitizeFilename(suggested)
	if original == "" {
		original = FallbackName
	}
	name := s.token() + strings.ToLower(filepath.Ext(original))
	abs := filepath.Join(dir, name)

	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return StoredFile{}, httperr.StorageWrite(fmt.Errorf("create %s: %w", name, err))
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(abs)
		return StoredFile{}, httperr.StorageWrite(fmt.Errorf("write %s: %w", name, err))
	}
	if err := f.Close(); err != nil {
		os.Remove(abs)
		return StoredFile{}, httperr.StorageWrite(fmt.Errorf("close %s: %w", name, err))
	}

	info, err := os.Stat(abs)
	if err != nil {
		os.Remove(abs)
		return StoredFile{}, httperr.StorageWrite(fmt.Errorf("stat %s: %w", name, err))
	}

	return StoredFile{Name: name, Path: abs, Size: info.Size()}, nil
}

// Remove apaga o arquivo; arquivo inexistente não é erro.
func (s *FileStore) Remove(abs string) error {
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists informa se há um arquivo regular em abs.
func (s *FileStore) Exists(abs string) bool {
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}
