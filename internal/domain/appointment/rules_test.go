package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
)

func validAppointment() *models.Appointment {
	return &models.Appointment{
		Date:          time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		ClientID:      1,
		Executor:      " Pai João ",
		Procedures:    "Jogo de búzios",
		TotalValue:    120,
		PaymentMethod: "pix",
		Type:          "Ebó",
	}
}

func TestValidate(t *testing.T) {
	ap := validAppointment()
	if err := Validate(ap); err != nil {
		t.Fatalf("valid appointment rejected: %v", err)
	}
	if ap.Executor != "Pai João" {
		t.Errorf("executor not trimmed: %q", ap.Executor)
	}

	zero := uint(0)
	tests := map[string]func(*models.Appointment){
		"no client":      func(a *models.Appointment) { a.ClientID = 0 },
		"zero product":   func(a *models.Appointment) { a.ProductID = &zero },
		"negative value": func(a *models.Appointment) { a.TotalValue = -1 },
		"bad payment":    func(a *models.Appointment) { a.PaymentMethod = "cheque" },
		"bad type":       func(a *models.Appointment) { a.Type = "festa" },
		"no executor":    func(a *models.Appointment) { a.Executor = "  " },
		"no date":        func(a *models.Appointment) { a.Date = time.Time{} },
	}

	for name, mutate := range tests {
		ap := validAppointment()
		mutate(ap)
		if err := Validate(ap); !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestIsTypeIgnoresAccents(t *testing.T) {
	for _, s := range []string{"ebó", "ebo", "EBÓ", "obrigação", "Búzios"} {
		if !IsType(s) {
			t.Errorf("%q rejected", s)
		}
	}
}
