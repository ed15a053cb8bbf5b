// Package pagination concentra a paginação fixa das listagens.
package pagination

import (
	"math"
	"strconv"
)

const DefaultPageSize = 10

type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	Pages    int   `json:"pages"`
}

// Request é a página pedida; valores inválidos viram a primeira página.
type Request struct {
	Page int
	Size int
}

func Parse(page string) Request {
	n, _ := strconv.Atoi(page)
	return New(n, DefaultPageSize)
}

func New(page, size int) Request {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	// offset cabe em int32
	if last := math.MaxInt32 / size; page > last {
		page = last
	}
	return Request{Page: page, Size: size}
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.Size
}

func (r Request) Limit() int {
	return r.Size
}

func NewPage[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := int((total + int64(req.Size) - 1) / int64(req.Size))
	return Page[T]{
		Items:    items,
		Page:     req.Page,
		PageSize: req.Size,
		Total:    total,
		Pages:    pages,
	}
}
