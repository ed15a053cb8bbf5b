package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
	"github.com/BruksfildServices01/odutech/internal/policy"
	"github.com/BruksfildServices01/odutech/internal/timezone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Referências (cliente / produto)
// --------------------------------------------------

// checkRefs garante que cliente e produto pertencem ao mesmo dono do
// atendimento. Roda dentro da transação de escrita.
func checkRefs(tx *gorm.DB, ap *models.Appointment) error {
	invalidClient := httperr.Validation("Por favor, selecione um cliente válido.")
	invalidProduct := httperr.Validation("Por favor, selecione um produto válido.")

	var c models.Client
	if err := tx.Select("id", "user_id").First(&c, ap.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidClient
		}
		return err
	}
	if !policy.Owns(ap.UserID, c) {
		return invalidClient
	}

	if ap.ProductID == nil {
		return nil
	}

	var p models.Product
	if err := tx.Select("id", "user_id").First(&p, *ap.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidProduct
		}
		return err
	}
	if !policy.Owns(ap.UserID, p) {
		return invalidProduct
	}
	return nil
}

func withRefs(db *gorm.DB) *gorm.DB {
	return db.Preload("Client").Preload("Product")
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	ap.Date = ap.Date.UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRefs(tx, ap); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			return err
		}
		return withRefs(tx).First(ap, ap.ID).Error
	})
}

func (r *AppointmentGormRepository) Get(ctx context.Context, ownerID, id uint) (*models.Appointment, error) {
	return findOwned[models.Appointment](withRefs(r.db.WithContext(ctx)), ownerID, id, msgAppointmentNotFound)
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	ap.Date = ap.Date.UTC()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findOwned[models.Appointment](tx, ap.UserID, ap.ID, msgAppointmentNotFound)
		if err != nil {
			return err
		}
		if err := checkRefs(tx, ap); err != nil {
			return err
		}

		if err := tx.Model(existing).Updates(map[string]any{
			"client_id":      ap.ClientID,
			"product_id":     ap.ProductID,
			"date":           ap.Date,
			"executor":       ap.Executor,
			"procedures":     ap.Procedures,
			"total_value":    ap.TotalValue,
			"payment_method": ap.PaymentMethod,
			"type":           ap.Type,
			"details":        ap.Details,
		}).Error; err != nil {
			return err
		}

		*ap = models.Appointment{}
		return withRefs(tx).First(ap, existing.ID).Error
	})
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, ownerID, id uint) (*models.Appointment, error) {
	var removed *models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ap, err := findOwned[models.Appointment](tx, ownerID, id, msgAppointmentNotFound)
		if err != nil {
			return err
		}
		removed = ap
		return tx.Delete(ap).Error
	})
	return removed, err
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	ownerID uint,
	f domain.ListFilter,
) (pagination.Page[models.Appointment], domain.Totals, error) {

	var (
		page   pagination.Page[models.Appointment]
		totals domain.Totals
	)

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointments.user_id = ?", ownerID)

	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		like := "%" + s + "%"
		q = q.
			Joins("JOIN clients ON clients.id = appointments.client_id").
			Where("(LOWER(clients.name) LIKE ? OR LOWER(appointments.procedures) LIKE ?)", like, like)
	}

	if f.Month >= 1 && f.Month <= 12 {
		expr, zone := r.monthExpr()
		q = q.Where(expr, zone, f.Month)
	}
	q = q.Session(&gorm.Session{})

	var agg struct {
		Total float64
		Count int64
	}
	if err := q.
		Select("COALESCE(SUM(appointments.total_value), 0) AS total, COUNT(*) AS count").
		Scan(&agg).Error; err != nil {
		return page, totals, err
	}

	totals.TotalValue = agg.Total
	totals.TotalCount = agg.Count
	if agg.Count > 0 {
		totals.AverageTicket = agg.Total / float64(agg.Count)
	}

	var items []models.Appointment
	if err := withRefs(q).
		Order("appointments.date DESC").
		Order("appointments.id DESC").
		Limit(f.Page.Limit()).
		Offset(f.Page.Offset()).
		Find(&items).Error; err != nil {
		return page, totals, err
	}

	return pagination.NewPage(items, f.Page, agg.Count), totals, nil
}

func (r *AppointmentGormRepository) ListPeriod(
	ctx context.Context,
	ownerID uint,
	f domain.PeriodFilter,
) ([]models.Appointment, error) {

	q := withRefs(r.db.WithContext(ctx)).Where("user_id = ?", ownerID)

	if f.Start != nil {
		q = q.Where("date >= ?", f.Start.UTC())
	}
	if f.End != nil {
		q = q.Where("date < ?", f.End.UTC())
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}

	var items []models.Appointment
	err := q.
		Order("date DESC").
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// monthExpr extrai o mês no fuso padrão; as datas ficam gravadas em UTC.
// No SQLite o fuso vira o deslocamento atual em segundos.
func (r *AppointmentGormRepository) monthExpr() (string, string) {
	if r.db.Dialector.Name() == "sqlite" {
		_, offset := timezone.Now().Zone()
		return "CAST(strftime('%m', appointments.date, ?) AS INTEGER) = ?",
			fmt.Sprintf("%+d seconds", offset)
	}
	return "EXTRACT(MONTH FROM appointments.date AT TIME ZONE ?) = ?", timezone.DefaultTimezone
}
