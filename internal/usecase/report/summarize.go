package report

import (
	"context"
	"strings"

	apdomain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/timezone"
)

// BreakdownKeys é a ordem fixa do detalhamento por tipo. "obrigacao" e
// "obrigação" são chaves distintas mas agrupam os mesmos atendimentos.
var BreakdownKeys = []string{"consulta", "ebó", "gbory", "obrigacao", "obrigação", "buzios", "outro"}

// ======================================================
// INPUT / OUTPUT
// ======================================================

// SalesFilter recebe as datas como chegam da query ("AAAA-MM-DD");
// valores inválidos são ignorados.
type SalesFilter struct {
	Start string
	End   string
	Type  string
}

type Breakdown struct {
	Type       string  `json:"type"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

type Sales struct {
	TotalValue   float64              `json:"total_value"`
	TotalCount   int                  `json:"total_count"`
	Breakdown    []Breakdown          `json:"breakdown"`
	Appointments []models.Appointment `json:"appointments"`
}

// ======================================================
// USE CASE
// ======================================================

type Summarize struct {
	repo apdomain.Repository
}

func NewSummarize(repo apdomain.Repository) *Summarize {
	return &Summarize{repo: repo}
}

func (uc *Summarize) Execute(ctx context.Context, ownerID uint, f SalesFilter) (*Sales, error) {
	period := apdomain.PeriodFilter{Type: strings.TrimSpace(f.Type)}

	if d, err := timezone.ParseDate(strings.TrimSpace(f.Start)); err == nil {
		period.Start = &d
	}
	// o dia final entra inteiro
	if d, err := timezone.ParseDate(strings.TrimSpace(f.End)); err == nil {
		end := d.AddDate(0, 0, 1)
		period.End = &end
	}

	items, err := uc.repo.ListPeriod(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}

	return Aggregate(items), nil
}

// Aggregate calcula totais e o detalhamento sobre o conjunto inteiro.
func Aggregate(items []models.Appointment) *Sales {
	if items == nil {
		items = []models.Appointment{}
	}

	out := &Sales{
		TotalCount:   len(items),
		Breakdown:    make([]Breakdown, 0, len(BreakdownKeys)),
		Appointments: items,
	}

	byType := map[string]Breakdown{}
	for _, ap := range items {
		out.TotalValue += ap.TotalValue

		key := apdomain.NormalizeType(ap.Type)
		b := byType[key]
		b.Count++
		b.TotalValue += ap.TotalValue
		byType[key] = b
	}

	for _, k := range BreakdownKeys {
		b := byType[apdomain.NormalizeType(k)]
		b.Type = k
		out.Breakdown = append(out.Breakdown, b)
	}

	return out
}
