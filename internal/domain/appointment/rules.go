package appointment

import (
	"strings"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
)

// Validate confere os campos do atendimento. A posse de cliente e produto
// é verificada pelo repositório, dentro da transação.
func Validate(ap *models.Appointment) error {
	ap.Executor = strings.TrimSpace(ap.Executor)
	ap.Procedures = strings.TrimSpace(ap.Procedures)
	ap.Type = strings.TrimSpace(ap.Type)

	switch {
	case ap.Date.IsZero():
		return httperr.Validation("A data do atendimento é obrigatória.")
	case ap.ClientID == 0:
		return httperr.Validation("Por favor, selecione um cliente válido.")
	case ap.ProductID != nil && *ap.ProductID == 0:
		return httperr.Validation("Por favor, selecione um produto válido.")
	case ap.Executor == "" || len([]rune(ap.Executor)) > 100:
		return httperr.Validation("O executor é obrigatório (máx. 100 caracteres).")
	case ap.Procedures == "" || len([]rune(ap.Procedures)) > 200:
		return httperr.Validation("Os procedimentos são obrigatórios (máx. 200 caracteres).")
	case ap.TotalValue < 0:
		return httperr.Validation("O valor total não pode ser negativo.")
	case !IsPaymentMethod(ap.PaymentMethod):
		return httperr.Validation("Forma de pagamento inválida.")
	case !IsType(ap.Type):
		return httperr.Validation("Tipo de atendimento inválido.")
	}

	return nil
}
