package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apdomain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	"github.com/BruksfildServices01/odutech/internal/dto"
	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/httpresp"
	"github.com/BruksfildServices01/odutech/internal/middleware"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
	ucAppointment "github.com/BruksfildServices01/odutech/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo apdomain.Repository
	save *ucAppointment.SaveAppointment
}

func NewAppointmentHandler(
	repo apdomain.Repository,
	save *ucAppointment.SaveAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo: repo,
		save: save,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// AppointmentRequest: Date em "AAAA-MM-DDTHH:MM" (fuso padrão) ou RFC3339.
type AppointmentRequest struct {
	Date          string  `json:"date" binding:"required"`
	Executor      string  `json:"executor"`
	Procedures    string  `json:"procedures"`
	TotalValue    float64 `json:"total_value"`
	PaymentMethod string  `json:"payment_method"`
	Type          string  `json:"type"`
	Details       string  `json:"details"`
	ClientID      uint    `json:"client_id"`
	ProductID     *uint   `json:"product_id"`
}

func (r AppointmentRequest) toModel() (models.Appointment, error) {
	date, err := parseDateTime(r.Date)
	if err != nil {
		return models.Appointment{}, httperr.Validation("Data do atendimento inválida.")
	}

	productID := r.ProductID
	if productID != nil && *productID == 0 {
		productID = nil
	}

	return models.Appointment{
		Date:          date,
		Executor:      r.Executor,
		Procedures:    r.Procedures,
		TotalValue:    r.TotalValue,
		PaymentMethod: r.PaymentMethod,
		Type:          r.Type,
		Details:       r.Details,
		ClientID:      r.ClientID,
		ProductID:     productID,
	}, nil
}

// ======================================================
// LIST
// ======================================================

// List aceita search, month (1..12) e page; os totais cobrem o filtro
// inteiro.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	month, _ := strconv.Atoi(c.Query("month"))

	page, totals, err := h.repo.List(c.Request.Context(), userID, apdomain.ListFilter{
		Search: c.Query("search"),
		Month:  month,
		Page:   pagination.Parse(c.Query("page")),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.OK(c, dto.NewAppointmentList(page, totals))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.repo.Get(c.Request.Context(), userID, id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	ap, ok := h.bind(c)
	if !ok {
		return
	}

	created, err := h.save.Create(c.Request.Context(), userID, ap)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, created)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, ok := h.bind(c)
	if !ok {
		return
	}

	updated, err := h.save.Update(c.Request.Context(), userID, id, ap)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, updated)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.save.Delete(c.Request.Context(), userID, id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_appointment")
		return
	}

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) bind(c *gin.Context) (models.Appointment, bool) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return models.Appointment{}, false
	}

	ap, err := req.toModel()
	if err != nil {
		httperr.FromError(c, err, "invalid_request")
		return models.Appointment{}, false
	}
	return ap, true
}
