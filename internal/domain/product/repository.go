package product

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

type ListFilter struct {
	Search string
	Page   pagination.Request
}

type Repository interface {
	Create(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, ownerID, id uint) (*models.Product, error)
	List(ctx context.Context, ownerID uint, f ListFilter) (pagination.Page[models.Product], error)
	ListAll(ctx context.Context, ownerID uint) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error

	// Delete desvincula os atendimentos (product_id = NULL) antes de apagar.
	Delete(ctx context.Context, ownerID, id uint) error
}
