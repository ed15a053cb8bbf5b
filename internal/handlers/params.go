package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/timezone"
	"github.com/BruksfildServices01/odutech/internal/usecase/attachment"
)

// formatos aceitos para data e hora do atendimento, no fuso padrão
var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseOptionalDate: vazio vira nil.
func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := timezone.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// paramID lê um id numérico da rota. Id inválido responde 404, igual a um
// registro inexistente.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Registro não encontrado.")
		return 0, false
	}
	return uint(id), true
}

// bindFailed responde erro de binding; corpo acima do limite vira 413.
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "payload_too_large", "Arquivo maior que o limite permitido.")
		return
	}
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}

// formUpload abre o arquivo do campo multipart. Sem arquivo (ou corpo que
// não é multipart) devolve nil sem erro. done deve ser chamado sempre.
func formUpload(c *gin.Context, field string) (up *attachment.Upload, done func(), err error) {
	done = func() {}

	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, done, nil
		}
		return nil, done, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, done, err
	}

	return &attachment.Upload{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Content:  f,
	}, func() { _ = f.Close() }, nil
}
