package appointment

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/audit"
	domain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	"github.com/BruksfildServices01/odutech/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type SaveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SaveAppointment {
	return &SaveAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveAppointment) Create(
	ctx context.Context,
	ownerID uint,
	ap models.Appointment,
) (*models.Appointment, error) {

	ap.ID = 0
	ap.UserID = ownerID

	if err := domain.Validate(&ap); err != nil {
		return nil, err
	}

	// posse de cliente/produto é conferida na transação do repositório
	if err := uc.repo.Create(ctx, &ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"client_id": ap.ClientID, "total_value": ap.TotalValue},
	})

	return &ap, nil
}

func (uc *SaveAppointment) Update(
	ctx context.Context,
	ownerID uint,
	id uint,
	ap models.Appointment,
) (*models.Appointment, error) {

	ap.ID = id
	ap.UserID = ownerID

	if err := domain.Validate(&ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, &ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &ap, nil
}

func (uc *SaveAppointment) Delete(ctx context.Context, ownerID, id uint) error {
	ap, err := uc.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	return nil
}
