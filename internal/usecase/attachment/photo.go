package attachment

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/audit"
	clientdomain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/storage"
)

// ======================================================
// USE CASE
// ======================================================

type AttachPhoto struct {
	clients clientdomain.Repository
	uploads *storage.Uploads
	audit   *audit.Dispatcher
}

func NewAttachPhoto(
	clients clientdomain.Repository,
	uploads *storage.Uploads,
	audit *audit.Dispatcher,
) *AttachPhoto {
	return &AttachPhoto{
		clients: clients,
		uploads: uploads,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute grava a foto primeiro e só então aponta o cliente para ela.
// A foto anterior sai do disco depois que o banco confirmou a troca.
func (uc *AttachPhoto) Execute(
	ctx context.Context,
	ownerID uint,
	clientID uint,
	up Upload,
) (*models.Client, error) {

	c, err := uc.clients.Get(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	if err := CheckPhoto(up); err != nil {
		return nil, err
	}

	dir, err := uc.uploads.PhotoDir(c.ID)
	if err != nil {
		return nil, err
	}

	sf, rel, err := uc.uploads.StoreIn(dir, up.Content, up.Filename)
	if err != nil {
		return nil, err
	}

	if err := uc.clients.SetPhotoPath(ctx, ownerID, c.ID, rel); err != nil {
		uc.uploads.Files.Remove(sf.Path)
		return nil, err
	}

	previous := c.PhotoPath
	c.PhotoPath = rel
	if previous != "" && previous != rel {
		uc.uploads.RemoveRel(previous)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "client_photo_updated",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"size": sf.Size},
	})

	return c, nil
}
