package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/httpresp"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/usecase/report"
)

type ReportHandler struct {
	summarize *report.Summarize
}

func NewReportHandler(summarize *report.Summarize) *ReportHandler {
	return &ReportHandler{summarize: summarize}
}

// Sales: start e end (AAAA-MM-DD, end inclusivo) e type são opcionais.
func (h *ReportHandler) Sales(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	sales, err := h.summarize.Execute(c.Request.Context(), userID, report.SalesFilter{
		Start: c.Query("start"),
		End:   c.Query("end"),
		Type:  c.Query("type"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_build_report")
		return
	}

	httpresp.OK(c, sales)
}
