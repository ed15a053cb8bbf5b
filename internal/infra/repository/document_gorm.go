package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/odutech/internal/domain/document"
	"github.com/BruksfildServices01/odutech/internal/models"
)

type DocumentGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*DocumentGormRepository)(nil)

func NewDocumentGormRepository(db *gorm.DB) *DocumentGormRepository {
	return &DocumentGormRepository{db: db}
}

func (r *DocumentGormRepository) Create(ctx context.Context, d *models.ClientDocument) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

func (r *DocumentGormRepository) Get(ctx context.Context, ownerID, id uint) (*models.ClientDocument, error) {
	return findOwned[models.ClientDocument](r.db.WithContext(ctx), ownerID, id, msgDocumentNotFound)
}

func (r *DocumentGormRepository) ListByClient(
	ctx context.Context,
	ownerID, clientID uint,
) ([]models.ClientDocument, error) {

	var docs []models.ClientDocument
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND user_id = ?", clientID, ownerID).
		Order("uploaded_at DESC").
		Order("id DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentGormRepository) Delete(ctx context.Context, ownerID, id uint) (*models.ClientDocument, error) {
	var removed *models.ClientDocument
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, err := findOwned[models.ClientDocument](tx, ownerID, id, msgDocumentNotFound)
		if err != nil {
			return err
		}
		removed = d
		return tx.Delete(d).Error
	})
	return removed, err
}
