package cart

import (
	"strings"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

// Tag é a etiqueta de entrega configurada (PDV_DELIVERY_TAG); vazia vale "entrega".
type Delivery struct {
	Type    string
	Fee     decimal.Decimal
	Courier string
	Tag     string
}

func (d Delivery) IsDelivery() bool {
	return strings.EqualFold(strings.TrimSpace(d.Type), d.DeliveryTag())
}

func (d Delivery) DeliveryTag() string {
	return models.NormalizeDeliveryTag(d.Tag)
}

type DiscountPolicy int

const (
	// ClampDiscount limita o desconto a [0, totalComEntrega].
	ClampDiscount DiscountPolicy = iota
	// RawDiscount aplica o desconto como veio.
	RawDiscount
)

type Totals struct {
	Products     decimal.Decimal `json:"totalProdutos"`
	WithDelivery decimal.Decimal `json:"totalComEntrega"`
	Discount     decimal.Decimal `json:"desconto"`
	Final        decimal.Decimal `json:"totalFinal"`
}

func ComputeTotals(lines []Line, d Delivery, discount decimal.Decimal, policy DiscountPolicy) Totals {
	products := decimal.Zero
	for _, l := range lines {
		products = products.Add(l.Subtotal())
	}

	withDelivery := products
	if d.IsDelivery() {
		withDelivery = products.Add(d.Fee)
	}

	if policy == ClampDiscount {
		if discount.IsNegative() {
			discount = decimal.Zero
		}
		if discount.GreaterThan(withDelivery) {
			discount = withDelivery
		}
	}

	return Totals{
		Products:     products,
		WithDelivery: withDelivery,
		Discount:     discount,
		Final:        withDelivery.Sub(discount),
	}
}

// SaleItems converte as linhas no formato de POST /vendas. Qualquer linha sem
// variação aborta a conversão inteira.
func SaleItems(lines []Line) ([]models.SaleItemInput, error) {
	items := make([]models.SaleItemInput, 0, len(lines))
	for _, l := range lines {
		if l.VariantID == nil {
			return nil, &MissingVariantError{Product: l.Name}
		}
		items = append(items, models.SaleItemInput{VariantID: *l.VariantID, Quantity: l.Quantity})
	}
	return items, nil
}

// OrderItems exige também preço definido em cada linha.
func OrderItems(lines []Line) ([]models.OrderItemInput, error) {
	items := make([]models.OrderItemInput, 0, len(lines))
	for _, l := range lines {
		if l.VariantID == nil {
			return nil, &MissingVariantError{Product: l.Name}
		}
		if !l.Price.IsPositive() {
			return nil, &ValidationError{Field: "preco", Message: "Produto \"" + l.Name + "\" não tem preço definido."}
		}
		items = append(items, models.OrderItemInput{
			VariantID: *l.VariantID,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Subtotal:  l.Subtotal(),
		})
	}
	return items, nil
}
