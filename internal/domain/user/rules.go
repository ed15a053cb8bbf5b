package user

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/odutech/internal/httperr"
)

const MinPasswordLength = 6

var validate = validator.New()

// Credentials são os dados de cadastro já normalizados.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Normalize apara espaços e põe o e-mail em minúsculas antes de validar.
func Normalize(c Credentials) (Credentials, error) {
	c.Username = strings.TrimSpace(c.Username)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))

	switch {
	case c.Username == "" || len(c.Username) > 80:
		return c, httperr.Validation("Username é obrigatório (máx. 80 caracteres).")
	case len(c.Email) > 120 || validate.Var(c.Email, "required,email") != nil:
		return c, httperr.Validation("E-mail inválido.")
	case len(c.Password) < MinPasswordLength:
		return c, httperr.Validation("A senha deve ter ao menos 6 caracteres.")
	}
	return c, nil
}
