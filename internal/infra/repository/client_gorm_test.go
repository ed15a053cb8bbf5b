package repository

import (
	"context"
	"fmt"
	"testing"

	domain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

func TestClientOwnerIsolation(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewClientGormRepository(gdb)

	u1 := mustUser(t, gdb, "u1")
	u2 := mustUser(t, gdb, "u2")
	c := mustClient(t, gdb, u1.ID, "Ana")

	if _, err := repo.Get(ctx, u2.ID, c.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("get by other owner: %v", err)
	}
	if _, err := repo.Detail(ctx, u2.ID, c.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("detail by other owner: %v", err)
	}

	hijack := *c
	hijack.UserID = u2.ID
	hijack.Name = "Invasor"
	if err := repo.Update(ctx, &hijack); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("update by other owner: %v", err)
	}
	if _, err := repo.UpdateRituals(ctx, u2.ID, c.ID, models.Rituals{Orixa: "Xangô"}); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("rituals by other owner: %v", err)
	}
	if _, _, err := repo.Delete(ctx, u2.ID, c.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("delete by other owner: %v", err)
	}

	page, err := repo.List(ctx, u2.ID, domain.ListFilter{Page: pagination.New(1, 10)})
	if err != nil || page.Total != 0 {
		t.Errorf("other owner list = %+v, %v", page, err)
	}

	got, err := repo.Get(ctx, u1.ID, c.ID)
	if err != nil || got.Name != "Ana" {
		t.Errorf("owner get = %+v, %v", got, err)
	}
}

func TestClientListPagination(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewClientGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	for i := 25; i >= 1; i-- {
		mustClient(t, gdb, u.ID, fmt.Sprintf("Cliente %02d", i))
	}

	first, err := repo.List(ctx, u.ID, domain.ListFilter{Page: pagination.Parse("1")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if first.Total != 25 || first.Pages != 3 || len(first.Items) != 10 {
		t.Fatalf("first page = total %d pages %d items %d", first.Total, first.Pages, len(first.Items))
	}
	if first.Items[0].Name != "Cliente 01" || first.Items[9].Name != "Cliente 10" {
		t.Errorf("not ordered by name: %s .. %s", first.Items[0].Name, first.Items[9].Name)
	}

	last, err := repo.List(ctx, u.ID, domain.ListFilter{Page: pagination.Parse("3")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(last.Items) != 5 || last.Items[0].Name != "Cliente 21" {
		t.Errorf("last page = %d items starting at %q", len(last.Items), last.Items[0].Name)
	}
}

func TestClientListSearch(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewClientGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	ana := mustClient(t, gdb, u.ID, "Ana Souza")
	bia := mustClient(t, gdb, u.ID, "Beatriz")
	bia.Email = "bia@Terreiro.com"
	bia.Phone = "11 99999-0000"
	if err := repo.Update(ctx, bia); err != nil {
		t.Fatalf("update: %v", err)
	}

	tests := []struct {
		search string
		want   uint
	}{
		{"SOUZA", ana.ID},
		{"terreiro", bia.ID},
		{"99999", bia.ID},
	}
	for _, tt := range tests {
		page, err := repo.List(ctx, u.ID, domain.ListFilter{Search: tt.search, Page: pagination.Parse("")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].ID != tt.want {
			t.Errorf("search %q = %+v", tt.search, page.Items)
		}
	}
}

func TestClientDeleteRules(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewClientGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	busy := mustClient(t, gdb, u.ID, "Com atendimento")
	mustAppointment(t, gdb, u.ID, busy.ID, nil, testDate(3, 10), 50)

	if _, _, err := repo.Delete(ctx, u.ID, busy.ID); !httperr.IsBusiness(err, httperr.CodeHasDependents) {
		t.Fatalf("expected has_dependents, got %v", err)
	}
	if _, err := repo.Get(ctx, u.ID, busy.ID); err != nil {
		t.Errorf("client must survive: %v", err)
	}

	free := mustClient(t, gdb, u.ID, "Sem atendimento")
	mustDocument(t, gdb, u.ID, free.ID, "a.pdf")
	mustDocument(t, gdb, u.ID, free.ID, "b.pdf")

	removed, docs, err := repo.Delete(ctx, u.ID, free.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != free.ID || len(docs) != 2 {
		t.Errorf("removed %+v with %d docs", removed, len(docs))
	}

	var left int64
	gdb.Model(&models.ClientDocument{}).Where("client_id = ?", free.ID).Count(&left)
	if left != 0 {
		t.Errorf("%d document rows left", left)
	}
	if _, err := repo.Get(ctx, u.ID, free.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("client still there: %v", err)
	}
}

func TestClientRitualsAndDetail(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()
	repo := NewClientGormRepository(gdb)

	u := mustUser(t, gdb, "u1")
	c := mustClient(t, gdb, u.ID, "Ana")

	got, err := repo.UpdateRituals(ctx, u.ID, c.ID, models.Rituals{
		Orixa:             "Oxum",
		SettledDeitiesRaw: "Xangô, Oxum ,, Ogum",
	})
	if err != nil {
		t.Fatalf("rituals: %v", err)
	}
	if got.Orixa != "Oxum" || got.Name != "Ana" || len(got.SettledDeities()) != 3 {
		t.Errorf("rituals not saved: %+v", got.Rituals)
	}

	older := mustAppointment(t, gdb, u.ID, c.ID, nil, testDate(3, 1), 10)
	newer := mustAppointment(t, gdb, u.ID, c.ID, nil, testDate(3, 20), 20)
	mustDocument(t, gdb, u.ID, c.ID, "a.pdf")

	d, err := repo.Detail(ctx, u.ID, c.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if len(d.Appointments) != 2 || d.Appointments[0].ID != newer.ID || d.Appointments[1].ID != older.ID {
		t.Errorf("appointments not newest first: %+v", d.Appointments)
	}
	if len(d.Documents) != 1 {
		t.Errorf("documents = %d", len(d.Documents))
	}

	if err := repo.SetPhotoPath(ctx, u.ID, c.ID, "fotos/c1/abc.png"); err != nil {
		t.Fatalf("photo: %v", err)
	}
	got, _ = repo.Get(ctx, u.ID, c.ID)
	if got.PhotoPath != "fotos/c1/abc.png" {
		t.Errorf("photo path = %q", got.PhotoPath)
	}
}
