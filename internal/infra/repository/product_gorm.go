package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/odutech/internal/domain/product"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

type ProductGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *ProductGormRepository) Get(ctx context.Context, ownerID, id uint) (*models.Product, error) {
	return findOwned[models.Product](r.db.WithContext(ctx), ownerID, id, msgProductNotFound)
}

func (r *ProductGormRepository) List(
	ctx context.Context,
	ownerID uint,
	f domain.ListFilter,
) (pagination.Page[models.Product], error) {

	q := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("user_id = ?", ownerID)

	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		like := "%" + s + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return pagination.Page[models.Product]{}, err
	}

	var items []models.Product
	if err := q.
		Order("name ASC").
		Order("id ASC").
		Limit(f.Page.Limit()).
		Offset(f.Page.Offset()).
		Find(&items).Error; err != nil {
		return pagination.Page[models.Product]{}, err
	}

	return pagination.NewPage(items, f.Page, total), nil
}

func (r *ProductGormRepository) ListAll(ctx context.Context, ownerID uint) ([]models.Product, error) {
	var items []models.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name ASC").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *ProductGormRepository) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findOwned[models.Product](tx, p.UserID, p.ID, msgProductNotFound)
		if err != nil {
			return err
		}

		if err := tx.Model(existing).Updates(map[string]any{
			"name":           p.Name,
			"description":    p.Description,
			"price":          p.Price,
			"stock_quantity": p.StockQuantity,
		}).Error; err != nil {
			return err
		}

		return tx.First(p, p.ID).Error
	})
}

func (r *ProductGormRepository) Delete(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := findOwned[models.Product](tx, ownerID, id, msgProductNotFound)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Appointment{}).
			Where("product_id = ?", p.ID).
			Update("product_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(p).Error
	})
}
