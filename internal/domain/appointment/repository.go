package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

// ListFilter: Month fora de 1..12 é ignorado.
type ListFilter struct {
	Search string
	Month  int
	Page   pagination.Request
}

// Totals cobre o conjunto filtrado inteiro, não só a página.
type Totals struct {
	TotalValue    float64 `json:"total_value"`
	TotalCount    int64   `json:"total_count"`
	AverageTicket float64 `json:"average_ticket"`
}

// PeriodFilter seleciona atendimentos para relatórios. Limites nil não
// restringem; End já deve ser exclusivo.
type PeriodFilter struct {
	Start *time.Time
	End   *time.Time
	Type  string
}

type Repository interface {
	// -------- CRUD --------
	Create(ctx context.Context, ap *models.Appointment) error
	Get(ctx context.Context, ownerID, id uint) (*models.Appointment, error)
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, ownerID, id uint) (*models.Appointment, error)

	// -------- Listagens --------
	List(ctx context.Context, ownerID uint, f ListFilter) (pagination.Page[models.Appointment], Totals, error)
	ListPeriod(ctx context.Context, ownerID uint, f PeriodFilter) ([]models.Appointment, error)
}
