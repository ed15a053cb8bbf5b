package product

import (
	"strings"

	"github.com/BruksfildServices01/odutech/internal/httperr"
	"github.com/BruksfildServices01/odutech/internal/models"
)

func Validate(p *models.Product) error {
	p.Name = strings.TrimSpace(p.Name)

	switch {
	case p.Name == "" || len([]rune(p.Name)) > 100:
		return httperr.Validation("O nome do produto é obrigatório (máx. 100 caracteres).")
	case p.Price < 0:
		return httperr.Validation("O preço não pode ser negativo.")
	case p.StockQuantity < 0:
		return httperr.Validation("A quantidade em estoque não pode ser negativa.")
	}
	return nil
}
