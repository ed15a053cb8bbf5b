package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/httpresp"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/usecase/attachment"
)

// campo multipart do documento
const documentField = "arquivo"

type DocumentHandler struct {
	docs *attachment.Documents
}

func NewDocumentHandler(docs *attachment.Documents) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

// GET /clients/:id/documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	clientID, ok := paramID(c, "id")
	if !ok {
		return
	}

	items, err := h.docs.List(c.Request.Context(), userID, clientID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_documents")
		return
	}

	httpresp.List(c, items)
}

// POST /clients/:id/documents
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	clientID, ok := paramID(c, "id")
	if !ok {
		return
	}

	up, done, err := formUpload(c, documentField)
	defer done()
	if err != nil {
		bindFailed(c, err)
		return
	}
	if up == nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Selecione um arquivo.")
		return
	}

	doc, err := h.docs.Upload(c.Request.Context(), userID, clientID, *up)
	if err != nil {
		httperr.FromError(c, err, "failed_to_upload_document")
		return
	}

	httpresp.Created(c, doc)
}

// GET /documents/:id/download
func (h *DocumentHandler) Download(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	doc, abs, err := h.docs.Open(c.Request.Context(), userID, id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_open_document")
		return
	}

	if doc.MimeType != "" {
		c.Header("Content-Type", doc.MimeType)
	}
	c.FileAttachment(abs, doc.OriginalName)
}

// DELETE /documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.docs.Delete(c.Request.Context(), userID, id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_document")
		return
	}

	httpresp.NoContent(c)
}
