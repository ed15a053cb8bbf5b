package client

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/audit"
	domain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/storage"
)

type DeleteClient struct {
	repo    domain.Repository
	uploads *storage.Uploads
	audit   *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	uploads *storage.Uploads,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:    repo,
		uploads: uploads,
		audit:   audit,
	}
}

// Execute é bloqueado enquanto houver atendimentos. Os arquivos dos
// documentos e a foto saem do disco depois do commit.
func (uc *DeleteClient) Execute(ctx context.Context, ownerID, id uint) error {
	c, docs, err := uc.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}

	for _, d := range docs {
		uc.uploads.RemoveRel(d.StoredPath)
	}
	uc.uploads.RemoveRel(c.PhotoPath)

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"name": c.Name, "documents": len(docs)},
	})
	return nil
}
