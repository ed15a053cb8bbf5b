package attachment

import (
	"context"

	"github.com/BruksfildServices01/odutech/internal/audit"
	clientdomain "github.com/BruksfildServices01/odutech/internal/domain/client"
	docdomain "github.com/BruksfildServices01/odutech/internal/domain/document"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/storage"
)

// Documents cobre o ciclo de vida dos documentos do cliente: envio,
// download e exclusão.
type Documents struct {
	clients clientdomain.Repository
	docs    docdomain.Repository
	uploads *storage.Uploads
	audit   *audit.Dispatcher
}

func NewDocuments(
	clients clientdomain.Repository,
	docs docdomain.Repository,
	uploads *storage.Uploads,
	audit *audit.Dispatcher,
) *Documents {
	return &Documents{
		clients: clients,
		docs:    docs,
		uploads: uploads,
		audit:   audit,
	}
}

// ======================================================
// UPLOAD
// ======================================================

func (uc *Documents) Upload(
	ctx context.Context,
	ownerID uint,
	clientID uint,
	up Upload,
) (*models.ClientDocument, error) {

	c, err := uc.clients.Get(ctx, ownerID, clientID)
	if err != nil {
		return nil, err
	}

	if up.Content == nil {
		return nil, httperr.Validation("Selecione um arquivo.")
	}
	name, err := docdomain.CheckUpload(up.Filename)
	if err != nil {
		return nil, err
	}

	dir, err := uc.uploads.DocumentDir(ownerID, c.ID)
	if err != nil {
		return nil, err
	}

	sf, rel, err := uc.uploads.StoreIn(dir, up.Content, name)
	if err != nil {
		return nil, err
	}

	size := sf.Size
	doc := &models.ClientDocument{
		UserID:       ownerID,
		ClientID:     c.ID,
		OriginalName: name,
		StoredPath:   rel,
		MimeType:     up.MimeType,
		SizeBytes:    &size,
	}

	if err := uc.docs.Create(ctx, doc); err != nil {
		uc.uploads.Files.Remove(sf.Path)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "document_uploaded",
		Entity:   "client_document",
		EntityID: &doc.ID,
		Metadata: map[string]any{"client_id": c.ID, "name": name, "size": size},
	})

	return doc, nil
}

// ======================================================
// LIST / OPEN
// ======================================================

func (uc *Documents) List(ctx context.Context, ownerID, clientID uint) ([]models.ClientDocument, error) {
	if _, err := uc.clients.Get(ctx, ownerID, clientID); err != nil {
		return nil, err
	}
	return uc.docs.ListByClient(ctx, ownerID, clientID)
}

// Open devolve o documento e o caminho absoluto para download. Linha sem
// arquivo em disco vira NotFound.
func (uc *Documents) Open(ctx context.Context, ownerID, id uint) (*models.ClientDocument, string, error) {
	doc, err := uc.docs.Get(ctx, ownerID, id)
	if err != nil {
		return nil, "", err
	}

	abs, ok := uc.uploads.LocateRel(doc.StoredPath)
	if !ok {
		return nil, "", httperr.NotFoundErr("Arquivo não encontrado no servidor.")
	}
	return doc, abs, nil
}

// ======================================================
// DELETE
// ======================================================

// Delete apaga a linha e depois o arquivo; arquivo ausente não é erro.
func (uc *Documents) Delete(ctx context.Context, ownerID, id uint) error {
	doc, err := uc.docs.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}

	uc.uploads.RemoveRel(doc.StoredPath)

	uc.audit.Dispatch(audit.Event{
		UserID:   ownerID,
		Action:   "document_deleted",
		Entity:   "client_document",
		EntityID: &doc.ID,
		Metadata: map[string]any{"client_id": doc.ClientID, "name": doc.OriginalName},
	})

	return nil
}
