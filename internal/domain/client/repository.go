package client

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

type ListFilter struct {
	Search string
	Page   pagination.Request
}

// Detail é a ficha completa: atendimentos e documentos do mais novo
// para o mais antigo.
type Detail struct {
	Client       models.Client           `json:"client"`
	Appointments []models.Appointment    `json:"appointments"`
	Documents    []models.ClientDocument `json:"documents"`
}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	Get(ctx context.Context, ownerID, id uint) (*models.Client, error)
	Detail(ctx context.Context, ownerID, id uint) (*Detail, error)
	List(ctx context.Context, ownerID uint, f ListFilter) (pagination.Page[models.Client], error)
	ListAll(ctx context.Context, ownerID uint) ([]models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	UpdateRituals(ctx context.Context, ownerID, id uint, r models.Rituals) (*models.Client, error)
	SetPhotoPath(ctx context.Context, ownerID, id uint, path string) error

	// Delete remove o cliente e as linhas dos seus documentos, devolvendo
	// o que foi apagado para que os arquivos sejam removidos depois.
	Delete(ctx context.Context, ownerID, id uint) (*models.Client, []models.ClientDocument, error)
}
