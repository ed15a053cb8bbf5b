package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

type ClientGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Create / Get
// --------------------------------------------------

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *ClientGormRepository) Get(ctx context.Context, ownerID, id uint) (*models.Client, error) {
	return findOwned[models.Client](r.db.WithContext(ctx), ownerID, id, msgClientNotFound)
}

func (r *ClientGormRepository) Detail(ctx context.Context, ownerID, id uint) (*domain.Detail, error) {
	db := r.db.WithContext(ctx)

	c, err := findOwned[models.Client](db, ownerID, id, msgClientNotFound)
	if err != nil {
		return nil, err
	}

	d := &domain.Detail{Client: *c}

	if err := db.
		Preload("Product").
		Where("client_id = ? AND user_id = ?", c.ID, ownerID).
		Order("date DESC").
		Order("id DESC").
		Find(&d.Appointments).Error; err != nil {
		return nil, err
	}

	if err := db.
		Where("client_id = ? AND user_id = ?", c.ID, ownerID).
		Order("uploaded_at DESC").
		Order("id DESC").
		Find(&d.Documents).Error; err != nil {
		return nil, err
	}

	return d, nil
}

// --------------------------------------------------
// List
// --------------------------------------------------

func (r *ClientGormRepository) List(
	ctx context.Context,
	ownerID uint,
	f domain.ListFilter,
) (pagination.Page[models.Client], error) {

	q := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("user_id = ?", ownerID)

	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"(LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?)",
			like, like, like,
		)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return pagination.Page[models.Client]{}, err
	}

	var items []models.Client
	if err := q.
		Order("name ASC").
		Order("id ASC").
		Limit(f.Page.Limit()).
		Offset(f.Page.Offset()).
		Find(&items).Error; err != nil {
		return pagination.Page[models.Client]{}, err
	}

	return pagination.NewPage(items, f.Page, total), nil
}

func (r *ClientGormRepository) ListAll(ctx context.Context, ownerID uint) ([]models.Client, error) {
	var items []models.Client
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name ASC").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// --------------------------------------------------
// Update
// --------------------------------------------------

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findOwned[models.Client](tx, c.UserID, c.ID, msgClientNotFound)
		if err != nil {
			return err
		}

		if err := tx.Model(existing).Updates(map[string]any{
			"name":            c.Name,
			"birth_date":      c.BirthDate,
			"mother_name":     c.MotherName,
			"initiation_date": c.InitiationDate,
			"email":           c.Email,
			"phone":           c.Phone,
			"address":         c.Address,
			"notes":           c.Notes,
		}).Error; err != nil {
			return err
		}

		return tx.First(c, c.ID).Error
	})
}

func (r *ClientGormRepository) UpdateRituals(
	ctx context.Context,
	ownerID, id uint,
	rit models.Rituals,
) (*models.Client, error) {

	var out *models.Client
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findOwned[models.Client](tx, ownerID, id, msgClientNotFound)
		if err != nil {
			return err
		}

		if err := tx.Model(existing).Updates(map[string]any{
			"navalha":             rit.Navalha,
			"babakekere":          rit.Babakekere,
			"iyakekere":           rit.Iyakekere,
			"ojubona":             rit.Ojubona,
			"padrinho":            rit.Padrinho,
			"madrinha":            rit.Madrinha,
			"orunko":              rit.Orunko,
			"orixa":               rit.Orixa,
			"ajunto":              rit.Ajunto,
			"settled_deities_raw": rit.SettledDeitiesRaw,
		}).Error; err != nil {
			return err
		}

		out = existing
		return tx.First(out, id).Error
	})
	return out, err
}

func (r *ClientGormRepository) SetPhotoPath(ctx context.Context, ownerID, id uint, path string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findOwned[models.Client](tx, ownerID, id, msgClientNotFound)
		if err != nil {
			return err
		}
		return tx.Model(existing).Update("photo_path", path).Error
	})
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	ownerID, id uint,
) (*models.Client, []models.ClientDocument, error) {

	var (
		removed *models.Client
		docs    []models.ClientDocument
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := findOwned[models.Client](tx, ownerID, id, msgClientNotFound)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("client_id = ?", c.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusinessMsg(
				httperr.CodeHasDependents,
				"Não é possível excluir um cliente com atendimentos.",
			)
		}

		if err := tx.Where("client_id = ?", c.ID).Find(&docs).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", c.ID).Delete(&models.ClientDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(c).Error; err != nil {
			return err
		}

		removed = c
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return removed, docs, nil
}
