package sales

import (
	"fmt"
	"strings"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

// draft é a venda normalizada antes de tocar no banco.
type draft struct {
	items      []models.SaleItemInput
	quantities map[uint]int
	order      []uint

	total         decimal.NullDecimal
	paymentMethod string
	deliveryType  string
	deliveryFee   decimal.NullDecimal
	courier       *string
	customerID    *uint
}

func (d draft) isDelivery(tag string) bool { return d.deliveryType == tag }

func normalize(req models.CreateSaleRequest, deliveryTag string) (draft, error) {
	deliveryTag = models.NormalizeDeliveryTag(deliveryTag)
	if len(req.Items) == 0 {
		return draft{}, fmt.Errorf("%w: a venda precisa de ao menos um produto", ErrInvalid)
	}

	d := draft{
		items:         req.Items,
		quantities:    make(map[uint]int),
		paymentMethod: strings.ToLower(strings.TrimSpace(req.PaymentMethod)),
		customerID:    req.CustomerID,
	}
	for _, it := range req.Items {
		if it.VariantID == 0 {
			return draft{}, fmt.Errorf("%w: item sem variação", ErrInvalid)
		}
		if it.Quantity < 1 {
			return draft{}, fmt.Errorf("%w: quantidade deve ser maior que zero", ErrInvalid)
		}
		if _, seen := d.quantities[it.VariantID]; !seen {
			d.order = append(d.order, it.VariantID)
		}
		d.quantities[it.VariantID] += it.Quantity
	}

	kind := strings.ToLower(strings.TrimSpace(req.DeliveryType))
	switch kind {
	case "", models.DeliveryTypePickup:
		d.deliveryType = models.DeliveryTypePickup
	case deliveryTag:
		d.deliveryType = deliveryTag
	default:
		return draft{}, fmt.Errorf("%w: tipo de entrega deve ser %s ou %s", ErrInvalid, deliveryTag, models.DeliveryTypePickup)
	}

	if d.isDelivery(deliveryTag) {
		if req.DeliveryFee.Valid && req.DeliveryFee.Decimal.IsNegative() {
			return draft{}, fmt.Errorf("%w: taxa de entrega não pode ser negativa", ErrInvalid)
		}
		d.deliveryFee = req.DeliveryFee
		if req.Courier != nil {
			if c := strings.TrimSpace(*req.Courier); c != "" {
				d.courier = &c
			}
		}
	}

	if req.Total.Valid {
		if req.Total.Decimal.IsNegative() {
			return draft{}, fmt.Errorf("%w: total não pode ser negativo", ErrInvalid)
		}
		d.total = req.Total
	}
	return d, nil
}

// total: o enviado pelo cliente, senão Σ qtd × preço + taxa.
func (d draft) resolveTotal(variants map[uint]models.Variant) decimal.Decimal {
	if d.total.Valid {
		return d.total.Decimal
	}
	sum := decimal.Zero
	for _, it := range d.items {
		v := variants[it.VariantID]
		if v.Product != nil {
			sum = sum.Add(v.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	if d.deliveryFee.Valid {
		sum = sum.Add(d.deliveryFee.Decimal)
	}
	return sum
}

func checkExchange(req models.ExchangeRequest, item models.SaleItem, current, next models.Variant) error {
	if req.NewVariantID == 0 {
		return fmt.Errorf("%w: informe a nova variação", ErrInvalid)
	}
	if req.NewVariantID == item.VariantID {
		return ErrSameVariant
	}

	switch req.Mode {
	case models.ExchangeSameProduct, "":
		if next.ProductID != current.ProductID {
			return fmt.Errorf("%w: troca por numeração exige o mesmo produto", ErrInvalid)
		}
	case models.ExchangeOtherProduct:
		if req.NewProductID != 0 && next.ProductID != req.NewProductID {
			return fmt.Errorf("%w: variação não pertence ao produto escolhido", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: modo de troca deve ser mesmo ou outro", ErrInvalid)
	}

	if next.Stock < item.Quantity {
		return fmt.Errorf("%w: numeração %s tem %d em estoque", ErrInsufficientStock, next.Size, next.Stock)
	}
	return nil
}
