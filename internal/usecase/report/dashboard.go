package report

import (
	"context"
	"strings"

	apdomain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	userdomain "github.com/BruksfildServices01/odutech/internal/domain/user"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/policy"
	"github.com/BruksfildServices01/odutech/internal/timezone"
)

// Dashboard é o resumo do mês corrente do perfil.
type Dashboard struct {
	User         models.User          `json:"user"`
	Month        string               `json:"month"`
	TotalCount   int                  `json:"total_count"`
	TotalValue   float64              `json:"total_value"`
	Ebos         int                  `json:"ebos"`
	Gbory        int                  `json:"gbory"`
	Obrigacoes   int                  `json:"obrigacoes"`
	Buzios       int                  `json:"buzios"`
	Appointments []models.Appointment `json:"appointments"`
}

type BuildDashboard struct {
	users        userdomain.Repository
	appointments apdomain.Repository
	now          timezone.Clock
}

func NewBuildDashboard(
	users userdomain.Repository,
	appointments apdomain.Repository,
	now timezone.Clock,
) *BuildDashboard {
	if now == nil {
		now = timezone.Now
	}
	return &BuildDashboard{
		users:        users,
		appointments: appointments,
		now:          now,
	}
}

// Execute só atende o próprio usuário: outro id é Forbidden.
func (uc *BuildDashboard) Execute(ctx context.Context, currentID, requestedID uint) (*Dashboard, error) {
	if err := policy.GuardAccount(currentID, requestedID); err != nil {
		return nil, err
	}

	u, err := uc.users.GetByID(ctx, requestedID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	start, end := timezone.MonthRange(now)

	items, err := uc.appointments.ListPeriod(ctx, u.ID, apdomain.PeriodFilter{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Appointment{}
	}

	d := &Dashboard{
		User:         *u,
		Month:        now.Format("2006-01"),
		TotalCount:   len(items),
		Appointments: items,
	}

	for _, ap := range items {
		d.TotalValue += ap.TotalValue

		key := apdomain.NormalizeType(ap.Type)
		switch {
		case strings.Contains(key, "ebo"):
			d.Ebos++
		case strings.Contains(key, "gbory"):
			d.Gbory++
		case strings.Contains(key, "obrig"):
			d.Obrigacoes++
		case strings.Contains(key, "buzio"):
			d.Buzios++
		}
	}

	return d, nil
}
