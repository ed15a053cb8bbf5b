package storage

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Category string

const (
	CategoryPhoto    Category = "fotos"
	CategoryDocument Category = "docs"
)

var (
	ErrMissingID   = errors.New("storage: owner and client ids are required")
	ErrOutsideRoot = errors.New("storage: path escapes upload root")
	ErrBadCategory = errors.New("storage: unknown category")
)

// Resolver deriva os diretórios de upload. Só ids numéricos entram na
// construção do caminho; nomes enviados pelo usuário nunca.
type Resolver struct {
	root string
}

func NewResolver(root string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Resolver{root: abs}, nil
}

func (r *Resolver) Root() string { return r.root }

// Dir devolve (criando se preciso) o diretório da categoria:
// fotos/c<client> ou docs/u<owner>/c<client>.
func (r *Resolver) Dir(cat Category, ownerID, clientID uint) (string, error) {
	var dir string
	switch cat {
	case CategoryPhoto:
		if clientID == 0 {
			return "", ErrMissingID
		}
		dir = filepath.Join(r.root, string(cat), fmt.Sprintf("c%d", clientID))
	case CategoryDocument:
		if ownerID == 0 || clientID == 0 {
			return "", ErrMissingID
		}
		dir = filepath.Join(r.root, string(cat), fmt.Sprintf("u%d", ownerID), fmt.Sprintf("c%d", clientID))
	default:
		return "", ErrBadCategory
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s dir: %w", cat, err)
	}
	return dir, nil
}

func (r *Resolver) PhotoDir(clientID uint) (string, error) {
	return r.Dir(CategoryPhoto, 0, clientID)
}

func (r *Resolver) DocumentDir(ownerID, clientID uint) (string, error) {
	return r.Dir(CategoryDocument, ownerID, clientID)
}

// Rel converte um caminho absoluto dentro da raiz no formato persistido
// no banco: relativo e com barras normais ("docs/u1/c2/abc.pdf").
func (r *Resolver) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return "", ErrOutsideRoot
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", ErrOutsideRoot
	}
	return rel, nil
}

// Abs faz o caminho inverso de Rel, recusando qualquer valor que saia da raiz.
func (r *Resolver) Abs(rel string) (string, error) {
	if rel == "" {
		return "", ErrOutsideRoot
	}
	clean := path.Clean("/" + strings.ReplaceAll(rel, "\\", "/"))
	if clean == "/" {
		return "", ErrOutsideRoot
	}
	abs := filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
	if _, err := r.Rel(abs); err != nil {
		return "", err
	}
	return abs, nil
}
