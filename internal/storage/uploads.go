package storage

import (
	"io"
	"log"
)

// Uploads reúne o resolver de caminhos e o file store sob a mesma raiz.
type Uploads struct {
	*Resolver
	Files *FileStore
}

func NewUploads(root string) (*Uploads, error) {
	r, err := NewResolver(root)
	if err != nil {
		return nil, err
	}
	return &Uploads{Resolver: r, Files: NewFileStore()}, nil
}

// StoreIn grava o stream em dir e devolve também o caminho relativo que
// vai para o banco. Se o caminho não puder ser relativizado, o arquivo é
// apagado.
func (u *Uploads) StoreIn(dir string, stream io.Reader, suggested string) (StoredFile, string, error) {
	sf, err := u.Files.Store(dir, stream, suggested)
	if err != nil {
		return StoredFile{}, "", err
	}

	rel, err := u.Rel(sf.Path)
	if err != nil {
		u.Files.Remove(sf.Path)
		return StoredFile{}, "", err
	}
	return sf, rel, nil
}

// RemoveRel apaga o arquivo de um caminho relativo persistido. Falhas são
// apenas registradas: o banco já foi atualizado.
func (u *Uploads) RemoveRel(rel string) {
	if rel == "" {
		return
	}

	abs, err := u.Abs(rel)
	if err != nil {
		log.Printf("storage: refusing to remove %q: %v", rel, err)
		return
	}
	if err := u.Files.Remove(abs); err != nil {
		log.Printf("storage: remove %s: %v", rel, err)
	}
}

// LocateRel devolve o caminho absoluto de um arquivo existente.
func (u *Uploads) LocateRel(rel string) (string, bool) {
	abs, err := u.Abs(rel)
	if err != nil {
		return "", false
	}
	return abs, u.Files.Exists(abs)
}
