package cart

import (
	"strings"

	"nextpdv/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogLine monta a linha de quantidade 1 a partir de uma variação do catálogo.
func CatalogLine(p models.Product, v models.Variant) (Line, error) {
	if v.Stock <= 0 {
		return Line{}, ErrOutOfStock
	}
	variantID := v.ID
	stock := v.Stock
	return Line{
		ProductID: p.ID,
		VariantID: &variantID,
		Name:      p.Name,
		Code:      p.Code,
		Size:      string(v.Size),
		Price:     p.Price,
		Quantity:  1,
		Stock:     &stock,
	}, nil
}

// NewManualLine valida e cria um item fora do catálogo com chave sintética.
func NewManualLine(name string, price decimal.Decimal, qty int) (Line, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Line{}, &ValidationError{Field: "nome", Message: "nome do produto é obrigatório"}
	}
	if !price.IsPositive() {
		return Line{}, &ValidationError{Field: "preco", Message: "preço deve ser maior que zero"}
	}
	if qty <= 0 {
		return Line{}, &ValidationError{Field: "qtd", Message: "quantidade deve ser maior que zero"}
	}
	zero := 0
	return Line{
		Key:      uuid.NewString(),
		Name:     name,
		Code:     ManualCode,
		Size:     "-",
		Price:    price,
		Quantity: qty,
		Stock:    &zero,
		Manual:   true,
	}, nil
}
