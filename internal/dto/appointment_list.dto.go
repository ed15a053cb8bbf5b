package dto

import (
	"time"

	apdomain "github.com/BruksfildServices01/odutech/internal/domain/appointment"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/pagination"
)

// AppointmentListDTO é a linha da listagem de atendimentos.
type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Date          time.Time `json:"date"`
	ClientID      uint      `json:"client_id"`
	ClientName    string    `json:"client_name"`
	ProductName   string    `json:"product_name"`
	Executor      string    `json:"executor"`
	Procedures    string    `json:"procedures"`
	TotalValue    float64   `json:"total_value"`
	PaymentMethod string    `json:"payment_method"`
	Type          string    `json:"type"`
}

type AppointmentList struct {
	pagination.Page[AppointmentListDTO]
	Totals apdomain.Totals `json:"totals"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.Date,
		ClientID:      ap.ClientID,
		ClientName:    ap.Client.Name,
		Executor:      ap.Executor,
		Procedures:    ap.Procedures,
		TotalValue:    ap.TotalValue,
		PaymentMethod: ap.PaymentMethod,
		Type:          ap.Type,
	}
	if ap.Product != nil {
		out.ProductName = ap.Product.Name
	}
	return out
}

func NewAppointmentList(page pagination.Page[models.Appointment], totals apdomain.Totals) AppointmentList {
	items := make([]AppointmentListDTO, 0, len(page.Items))
	for _, ap := range page.Items {
		items = append(items, NewAppointmentListDTO(ap))
	}

	return AppointmentList{
		Page: pagination.Page[AppointmentListDTO]{
			Items:    items,
			Page:     page.Page,
			PageSize: page.PageSize,
			Total:    page.Total,
			Pages:    page.Pages,
		},
		Totals: totals,
	}
}
