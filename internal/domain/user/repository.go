package user

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/models"
)

// Removed lista o que saiu do banco junto com o usuário e ainda tem
// arquivo em disco.
type Removed struct {
	User       models.User
	PhotoPaths []string
	Documents  []models.ClientDocument
}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) (*Removed, error)
}
