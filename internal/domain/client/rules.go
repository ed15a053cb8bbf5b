package client

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
	"github.com/BruksfildServices01/odutech/internal/timezone"
)

var validate = validator.New()

// Validate aplica as regras de cadastro em relação a today (data local).
// Também normaliza espaços nas pontas dos campos de texto.
func Validate(c *models.Client, today time.Time) error {
	c.Name = strings.TrimSpace(c.Name)
	c.MotherName = strings.TrimSpace(c.MotherName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)

	today = timezone.StartOfDay(today)
	birth := dateOnly(c.BirthDate, today.Location())

	switch {
	case c.Name == "" || len([]rune(c.Name)) > 100:
		return httperr.Validation("O nome é obrigatório (máx. 100 caracteres).")
	case c.BirthDate.IsZero():
		return httperr.Validation("A data de nascimento é obrigatória.")
	case birth.After(today):
		return httperr.Validation("A data de nascimento não pode ser no futuro.")
	case c.MotherName == "" || len([]rune(c.MotherName)) > 100:
		return httperr.Validation("O nome da mãe é obrigatório.")
	case len([]rune(c.Phone)) > 20:
		return httperr.Validation("Telefone deve ter no máximo 20 caracteres.")
	case len(c.Email) > 120:
		return httperr.Validation("E-mail deve ter no máximo 120 caracteres.")
	}

	if c.Email != "" {
		if err := validate.Var(c.Email, "email"); err != nil {
			return httperr.Validation("E-mail inválido.")
		}
	}

	if c.InitiationDate != nil {
		initiation := dateOnly(*c.InitiationDate, today.Location())
		if initiation.After(today) {
			return httperr.Validation("A data de iniciação não pode ser no futuro.")
		}
		if initiation.Before(birth) {
			return httperr.Validation("A data de iniciação não pode ser anterior à data de nascimento.")
		}
	}

	return ValidateRituals(c.Rituals)
}

// ValidateRituals limita o tamanho dos campos da ficha ritual.
func ValidateRituals(r models.Rituals) error {
	fields := []string{
		r.Navalha, r.Babakekere, r.Iyakekere, r.Ojubona, r.Padrinho,
		r.Madrinha, r.Orunko, r.Orixa, r.Ajunto,
	}
	for _, f := range fields {
		if len([]rune(f)) > 120 {
			return httperr.Validation("Campos da ficha ritual aceitam no máximo 120 caracteres.")
		}
	}
	if len([]rune(r.SettledDeitiesRaw)) > 600 {
		return httperr.Validation("A lista de orixás assentados aceita no máximo 600 caracteres.")
	}
	return nil
}

// Age devolve a idade em anos completos.
func Age(c *models.Client, now time.Time) int {
	return timezone.YearsSince(c.BirthDate, now)
}

// YearsInitiated devolve os anos desde a iniciação, ou nil sem iniciação.
func YearsInitiated(c *models.Client, now time.Time) *int {
	if c.InitiationDate == nil {
		return nil
	}
	y := timezone.YearsSince(*c.InitiationDate, now)
	return &y
}

// compara só a data civil, ignorando hora e fuso de origem
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
