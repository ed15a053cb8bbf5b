package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/policy"
)

const (
	msgClientNotFound      = "Cliente não encontrado."
	msgProductNotFound     = "Produto não encontrado."
	msgAppointmentNotFound = "Atendimento não encontrado."
	msgDocumentNotFound    = "Documento não encontrado."
	msgUserNotFound        = "Usuário não encontrado."
)

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundErr(msg)
	}
	return err
}

// findOwned carrega o registro pelo id e aplica o guard de posse.
func findOwned[T policy.Ownable](db *gorm.DB, ownerID, id uint, msg string) (*T, error) {
	var rec T
	if err := db.First(&rec, id).Error; err != nil {
		return nil, notFound(err, msg)
	}
	if err := policy.Guard(ownerID, rec, msg); err != nil {
		return nil, err
	}
	return &rec, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
