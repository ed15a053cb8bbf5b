package client

import (
	"context"
	"log"

	"github.com/BruksfildServices01/odutech/internal/audit"
	domain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/timezone"
	"github.com/BruksfildServices01/odutech/internal/usecase/attachment"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SaveClientInput struct {
	OwnerID uint
	Client  models.Client
	Photo   *attachment.Upload
}

// SaveClientResult: Warning fica preenchido quando o cliente foi salvo
// mas a foto não.
type SaveClientResult struct {
	Client  *models.Client `json:"client"`
	Warning string         `json:"warning,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type SaveClient struct {
	repo  domain.Repository
	photo *attachment.AttachPhoto
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewSaveClient(
	repo domain.Repository,
	photo *attachment.AttachPhoto,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *SaveClient {
	if now == nil {
		now = timezone.Now
	}
	return &SaveClient{
		repo:  repo,
		photo: photo,
		audit: audit,
		now:   now,
	}
}

// Create grava o cliente e, havendo foto, anexa depois do commit: o
// diretório da foto depende do id.
func (uc *SaveClient) Create(ctx context.Context, in SaveClientInput) (*SaveClientResult, error) {
	c := in.Client
	c.ID = 0
	c.UserID = in.OwnerID
	c.PhotoPath = ""

	if err := uc.validate(&c, in.Photo); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, &c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"name": c.Name},
	})

	res := &SaveClientResult{Client: &c}
	uc.attachPhoto(ctx, in, res, "Cliente salvo. Falha ao salvar foto")
	return res, nil
}

func (uc *SaveClient) Update(ctx context.Context, id uint, in SaveClientInput) (*SaveClientResult, error) {
	c := in.Client
	c.ID = id
	c.UserID = in.OwnerID

	if err := uc.validate(&c, in.Photo); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, &c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.OwnerID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})

	res := &SaveClientResult{Client: &c}
	uc.attachPhoto(ctx, in, res, "Falha ao atualizar a foto")
	return res, nil
}

func (uc *SaveClient) UpdateRituals(ctx context.Context, ownerID, id uint, r models.Rituals) (*models.Client, error) {
	if err := domain.ValidateRituals(r); err != nil {
		return nil, err
	}

	c, err := uc.repo.UpdateRituals(ctx, ownerID, id, r)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "client_rituals_updated",
		Entity:   "client",
		EntityID: &c.ID,
	})
	return c, nil
}

// a foto é checada antes de qualquer escrita para que uma imagem
// inválida não deixe um cliente salvo pela metade
func (uc *SaveClient) validate(c *models.Client, photo *attachment.Upload) error {
	if err := domain.Validate(c, uc.now()); err != nil {
		return err
	}
	if photo != nil {
		return attachment.CheckPhoto(*photo)
	}
	return nil
}

func (uc *SaveClient) attachPhoto(ctx context.Context, in SaveClientInput, res *SaveClientResult, prefix string) {
	if in.Photo == nil {
		return
	}

	updated, err := uc.photo.Execute(ctx, in.OwnerID, res.Client.ID, *in.Photo)
	if err != nil {
		log.Printf("client %d: photo not saved: %v", res.Client.ID, err)
		res.Warning = prefix + "."

		uc.audit.Dispatch(audit.Event{
			UserID:   in.OwnerID,
			Action:   "client_photo_failed",
			Entity:   "client",
			EntityID: &res.Client.ID,
			Metadata: map[string]any{"error": err.Error()},
		})
		return
	}
	res.Client.PhotoPath = updated.PhotoPath
}
