package analytics

import (
	"time"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func uid(id uint) *uint { return &id }

func product(id uint, name, price, cost, other string) *models.Product {
	return &models.Product{ID: id, Name: name, Price: d(price), UnitCost: d(cost), OtherCosts: d(other)}
}

func item(p *models.Product, qty int) models.SaleItem {
	return models.SaleItem{Quantity: qty, Variant: &models.Variant{ProductID: p.ID, Product: p}}
}

func sale(at time.Time, total string, items ...models.SaleItem) models.Sale {
	return models.Sale{Date: at, Total: d(total), PaymentMethod: models.PaymentPix, DeliveryType: models.DeliveryTypePickup, Items: items}
}

func newTestAggregator() *Aggregator {
	a := NewAggregator(models.DeliveryTypeDelivery)
	a.Now = func() time.Time { return fixedNow }
	return a
}
