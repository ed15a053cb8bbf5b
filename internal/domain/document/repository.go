package document

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/models"
)

type Repository interface {
	Create(ctx context.Context, d *models.ClientDocument) error
	Get(ctx context.Context, ownerID, id uint) (*models.ClientDocument, error)
	ListByClient(ctx context.Context, ownerID, clientID uint) ([]models.ClientDocument, error)
	Delete(ctx context.Context, ownerID, id uint) (*models.ClientDocument, error)
}
