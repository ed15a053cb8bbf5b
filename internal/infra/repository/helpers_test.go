package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/odutech/internal/db"
	"github.com/BruksfildServices01/odutech/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, _ := gdb.DB()
	t.Cleanup(func() { sqlDB.Close() })
	return gdb
}

func mustUser(t *testing.T, gdb *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
	if err := NewUserGormRepository(gdb).Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func mustClient(t *testing.T, gdb *gorm.DB, ownerID uint, name string) *models.Client {
	t.Helper()
	c := &models.Client{
		UserID:     ownerID,
		Name:       name,
		BirthDate:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		MotherName: "Maria",
	}
	if err := NewClientGormRepository(gdb).Create(context.Background(), c); err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func mustProduct(t *testing.T, gdb *gorm.DB, ownerID uint, name string) *models.Product {
	t.Helper()
	p := &models.Product{UserID: ownerID, Name: name, Price: 10, StockQuantity: 1}
	if err := NewProductGormRepository(gdb).Create(context.Background(), p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func mustAppointment(t *testing.T, gdb *gorm.DB, ownerID, clientID uint, productID *uint, date time.Time, value float64) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		UserID:        ownerID,
		ClientID:      clientID,
		ProductID:     productID,
		Date:          date,
		Executor:      "Pai João",
		Procedures:    fmt.Sprintf("Procedimento %.0f", value),
		TotalValue:    value,
		PaymentMethod: "pix",
		Type:          "consulta",
	}
	if err := NewAppointmentGormRepository(gdb).Create(context.Background(), ap); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return ap
}

func mustDocument(t *testing.T, gdb *gorm.DB, ownerID, clientID uint, name string) *models.ClientDocument {
	t.Helper()
	d := &models.ClientDocument{
		UserID:       ownerID,
		ClientID:     clientID,
		OriginalName: name,
		StoredPath:   fmt.Sprintf("docs/u%d/c%d/%s", ownerID, clientID, name),
	}
	if err := NewDocumentGormRepository(gdb).Create(context.Background(), d); err != nil {
		t.Fatalf("create document: %v", err)
	}
	return d
}

func testDate(month time.Month, day int) time.Time {
	return time.Date(2026, month, day, 12, 0, 0, 0, time.UTC)
}
