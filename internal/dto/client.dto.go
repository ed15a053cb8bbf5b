package dto

import (
	"time"

	clientdomain "github.com/BruksfildServices01/odutech/internal/domain/client"
	"github.com/BruksfildServices01/odutech/internal/models"
)

// PhotoURLPrefix é onde a árvore de fotos é servida publicamente.
const PhotoURLPrefix = "/uploads/"

// ClientView acrescenta ao cliente os valores derivados da ficha.
type ClientView struct {
	models.Client
	Age            int      `json:"age"`
	YearsInitiated *int     `json:"years_initiated"`
	SettledDeities []string `json:"settled_deities"`
	PhotoURL       string   `json:"photo_url,omitempty"`
}

type ClientDetailDTO struct {
	Client       ClientView              `json:"client"`
	Appointments []AppointmentListDTO    `json:"appointments"`
	Documents    []models.ClientDocument `json:"documents"`
}

func PhotoURL(photoPath string) string {
	if photoPath == "" {
		return ""
	}
	return PhotoURLPrefix + photoPath
}

func NewClientView(c models.Client, now time.Time) ClientView {
	return ClientView{
		Client:         c,
		Age:            clientdomain.Age(&c, now),
		YearsInitiated: clientdomain.YearsInitiated(&c, now),
		SettledDeities: c.SettledDeities(),
		PhotoURL:       PhotoURL(c.PhotoPath),
	}
}

func NewClientDetail(d *clientdomain.Detail, now time.Time) ClientDetailDTO {
	out := ClientDetailDTO{
		Client:       NewClientView(d.Client, now),
		Appointments: make([]AppointmentListDTO, 0, len(d.Appointments)),
		Documents:    d.Documents,
	}
	if out.Documents == nil {
		out.Documents = []models.ClientDocument{}
	}

	for _, ap := range d.Appointments {
		row := NewAppointmentListDTO(ap)
		row.ClientName = d.Client.Name
		out.Appointments = append(out.Appointments, row)
	}
	return out
}
