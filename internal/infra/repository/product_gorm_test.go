package repository

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/odutech/internal/domain/product"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

func TestProductDeleteUnlinksAppointments(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewProductGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	c := mustClient(t, gdb, u.ID, "Ana")
	p := mustProduct(t, gdb, u.ID, "Vela")
	ap := mustAppointment(t, gdb, u.ID, c.ID, &p.ID, testDate(3, 10), 40)

	if err := repo.Delete(ctx, u.ID, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded models.Appointment
	if err := gdb.First(&reloaded, ap.ID).Error; err != nil {
		t.Fatalf("appointment must survive: %v", err)
	}
	if reloaded.ProductID != nil {
		t.Errorf("product_id = %v, want NULL", *reloaded.ProductID)
	}
	if _, err := repo.Get(ctx, u.ID, p.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("product still there: %v", err)
	}
}

func TestProductOwnerIsolationAndSearch(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewProductGormRepository(gdb)

	u1 := mustUser(t, gdb, "u1")
	u2 := mustUser(t, gdb, "u2")
	p := mustProduct(t, gdb, u1.ID, "Vela branca")
	mustProduct(t, gdb, u1.ID, "Incenso")

	if err := repo.Delete(ctx, u2.ID, p.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("delete by other owner: %v", err)
	}

	edit := *p
	edit.UserID = u2.ID
	if err := repo.Update(ctx, &edit); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("update by other owner: %v", err)
	}

	page, err := repo.List(ctx, u1.ID, domain.ListFilter{Search: "BRANCA", Page: pagination.Parse("")})
	if err != nil || len(page.Items) != 1 || page.Items[0].ID != p.ID {
		t.Errorf("search = %+v, %v", page.Items, err)
	}

	all, err := repo.ListAll(ctx, u1.ID)
	if err != nil || len(all) != 2 || all[0].Name != "Incenso" {
		t.Errorf("list all = %+v, %v", all, err)
	}
}
