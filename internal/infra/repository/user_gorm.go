package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/odutech/internal/domain/user"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func duplicateUser() error {
	return httperr.ErrBusinessMsg(
		httperr.CodeDuplicateUser,
		"Já existe um usuário com esse username ou e-mail.",
	)
}

// Create verifica username e e-mail antes de inserir; a constraint única
// ainda cobre a corrida entre a checagem e o insert.
func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", u.Username, u.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return duplicateUser()
		}

		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			if isDuplicateKey(err) {
				return duplicateUser()
			}
			return err
		}
		return nil
	})
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return &u, nil
}

func (r *UserGormRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error
	return users, err
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}

// Delete apaga o usuário e tudo o que ele possui, na ordem das chaves
// estrangeiras.
func (r *UserGormRepository) Delete(ctx context.Context, id uint) (*domain.Removed, error) {
	out := &domain.Removed{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out.User, id).Error; err != nil {
			return notFound(err, msgUserNotFound)
		}

		if err := tx.Model(&models.Client{}).
			Where("user_id = ? AND photo_path <> ''", id).
			Pluck("photo_path", &out.PhotoPaths).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Find(&out.Documents).Error; err != nil {
			return err
		}

		owned := []any{
			&models.ClientDocument{},
			&models.Appointment{},
			&models.Product{},
			&models.Client{},
			&models.AuditLog{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&out.User).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
