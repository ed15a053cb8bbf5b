package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
	"github.com/BruksfildServices01/odutech/internal/timezone"
)

func TestAppointmentRejectsForeignReferences(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentGormRepository(gdb)

	u1 := mustUser(t, gdb, "u1")
	u2 := mustUser(t, gdb, "u2")
	own := mustClient(t, gdb, u1.ID, "Ana")
	foreign := mustClient(t, gdb, u2.ID, "Outro")
	foreignProduct := mustProduct(t, gdb, u2.ID, "Vela")

	base := func() *models.Appointment {
		return &models.Appointment{
			UserID:        u1.ID,
			ClientID:      own.ID,
			Date:          testDate(3, 10),
			Executor:      "Pai João",
			Procedures:    "Consulta",
			PaymentMethod: "pix",
			Type:          "consulta",
		}
	}

	ap := base()
	ap.ClientID = foreign.ID
	if err := repo.Create(ctx, ap); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Errorf("foreign client: %v", err)
	}

	ap = base()
	ap.ProductID = &foreignProduct.ID
	if err := repo.Create(ctx, ap); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Errorf("foreign product: %v", err)
	}

	ap = base()
	ap.ClientID = 9999
	if err := repo.Create(ctx, ap); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Errorf("missing client: %v", err)
	}

	var count int64
	gdb.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("%d appointments persisted", count)
	}

	ok := base()
	if err := repo.Create(ctx, ok); err != nil {
		t.Fatalf("create: %v", err)
	}
	if ok.Client.Name != "Ana" {
		t.Errorf("client not loaded: %+v", ok.Client)
	}

	ok.ClientID = foreign.ID
	if err := repo.Update(ctx, ok); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Errorf("update to foreign client: %v", err)
	}
}

func TestAppointmentOwnerIsolation(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentGormRepository(gdb)

	u1 := mustUser(t, gdb, "u1")
	u2 := mustUser(t, gdb, "u2")
	c := mustClient(t, gdb, u1.ID, "Ana")
	ap := mustAppointment(t, gdb, u1.ID, c.ID, nil, testDate(3, 10), 100)

	if _, err := repo.Get(ctx, u2.ID, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("get: %v", err)
	}
	if _, err := repo.Delete(ctx, u2.ID, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("delete: %v", err)
	}

	page, totals, err := repo.List(ctx, u2.ID, domain.ListFilter{Page: pagination.Parse("")})
	if err != nil || page.Total != 0 || totals.TotalValue != 0 {
		t.Errorf("other owner sees %+v %+v %v", page, totals, err)
	}

	if _, err := repo.Delete(ctx, u1.ID, ap.ID); err != nil {
		t.Errorf("owner delete: %v", err)
	}
}

func TestAppointmentMonthFilterUsesLocalMonth(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	ana := mustClient(t, gdb, u.ID, "Ana")

	// 22:30 em 31/03 no fuso padrão já é abril em UTC
	late := time.Date(2026, 3, 31, 22, 30, 0, 0, timezone.Location(timezone.DefaultTimezone))
	mustAppointment(t, gdb, u.ID, ana.ID, nil, late, 80)

	_, march, err := repo.List(ctx, u.ID, domain.ListFilter{Month: 3, Page: pagination.Parse("1")})
	if err != nil {
		t.Fatalf("list march: %v", err)
	}
	_, april, err := repo.List(ctx, u.ID, domain.ListFilter{Month: 4, Page: pagination.Parse("1")})
	if err != nil {
		t.Fatalf("list april: %v", err)
	}

	if march.TotalCount != 1 || april.TotalCount != 0 {
		t.Errorf("march count=%d april count=%d", march.TotalCount, april.TotalCount)
	}
}

func TestAppointmentListFiltersAndTotals(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	ana := mustClient(t, gdb, u.ID, "Ana")
	bia := mustClient(t, gdb, u.ID, "Beatriz")

	mustAppointment(t, gdb, u.ID, ana.ID, nil, testDate(3, 10), 100)
	mustAppointment(t, gdb, u.ID, ana.ID, nil, testDate(3, 20), 50)
	latest := mustAppointment(t, gdb, u.ID, bia.ID, nil, testDate(4, 5), 30)

	page, totals, err := repo.List(ctx, u.ID, domain.ListFilter{Page: pagination.Parse("1")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 || page.Items[0].ID != latest.ID {
		t.Errorf("expected newest first, got %+v", page.Items)
	}
	if totals.TotalValue != 180 || totals.TotalCount != 3 || totals.AverageTicket != 60 {
		t.Errorf("totals = %+v", totals)
	}

	_, totals, err = repo.List(ctx, u.ID, domain.ListFilter{Month: 3, Page: pagination.Parse("1")})
	if err != nil || totals.TotalCount != 2 || totals.TotalValue != 150 {
		t.Errorf("march totals = %+v, %v", totals, err)
	}

	_, totals, err = repo.List(ctx, u.ID, domain.ListFilter{Month: 13, Page: pagination.Parse("1")})
	if err != nil || totals.TotalCount != 3 {
		t.Errorf("invalid month must be ignored: %+v, %v", totals, err)
	}

	page, totals, err = repo.List(ctx, u.ID, domain.ListFilter{Search: "beat", Page: pagination.Parse("1")})
	if err != nil || totals.TotalCount != 1 || page.Items[0].Client.Name != "Beatriz" {
		t.Errorf("client search = %+v %+v, %v", page.Items, totals, err)
	}

	page, _, err = repo.List(ctx, u.ID, domain.ListFilter{Search: "PROCEDIMENTO 50", Page: pagination.Parse("1")})
	if err != nil || len(page.Items) != 1 || page.Items[0].TotalValue != 50 {
		t.Errorf("procedure search = %+v, %v", page.Items, err)
	}
}

func TestAppointmentListPeriod(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewAppointmentGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	c := mustClient(t, gdb, u.ID, "Ana")
	mustAppointment(t, gdb, u.ID, c.ID, nil, testDate(3, 10), 100)
	mustAppointment(t, gdb, u.ID, c.ID, nil, testDate(3, 31), 50)
	mustAppointment(t, gdb, u.ID, c.ID, nil, testDate(4, 1), 30)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	items, err := repo.ListPeriod(ctx, u.ID, domain.PeriodFilter{Start: &start, End: &end})
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if len(items) != 2 || items[0].TotalValue != 50 {
		t.Errorf("period items = %+v", items)
	}

	items, err = repo.ListPeriod(ctx, u.ID, domain.PeriodFilter{Type: "ebó"})
	if err != nil || len(items) != 0 {
		t.Errorf("type filter = %d items, %v", len(items), err)
	}
}
