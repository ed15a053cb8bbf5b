package appointment

import "github.com/BruksfildServices01/odutech/internal/textnorm"

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "dinheiro"
	PaymentPix      PaymentMethod = "pix"
	PaymentCredit   PaymentMethod = "cartao_credito"
	PaymentDebit    PaymentMethod = "cartao_debito"
	PaymentTransfer PaymentMethod = "transferencia"
)

var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentPix,
	PaymentCredit,
	PaymentDebit,
	PaymentTransfer,
}

func IsPaymentMethod(s string) bool {
	for _, p := range PaymentMethods {
		if string(p) == s {
			return true
		}
	}
	return false
}

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeConsulta  Type = "consulta"
	TypeEbo       Type = "ebó"
	TypeGbory     Type = "gbory"
	TypeObrigacao Type = "obrigacao"
	TypeBuzios    Type = "buzios"
	TypeOutro     Type = "outro"
)

var Types = []Type{
	TypeConsulta,
	TypeEbo,
	TypeGbory,
	TypeObrigacao,
	TypeBuzios,
	TypeOutro,
}

// IsType aceita o tipo com ou sem acento: "Ebó", "ebo" e "ebó" são o mesmo.
func IsType(s string) bool {
	key := NormalizeType(s)
	for _, t := range Types {
		if NormalizeType(string(t)) == key {
			return true
		}
	}
	return false
}

// NormalizeType é a chave de agrupamento dos relatórios.
func NormalizeType(s string) string {
	return textnorm.Key(s)
}
