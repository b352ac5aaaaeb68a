package orders

import (
	"testing"
	"time"

	"nextpdv/internal/models"
	"nextpdv/internal/sales"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t time.Time) *time.Time { return &t }

func TestGroup(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	list := []models.Order{
		{ID: 1},
		{ID: 2, DeliveryDate: at(time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC))},
		{ID: 3, DeliveryDate: at(time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC))},
		{ID: 4, DeliveryDate: at(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC))},
		{ID: 5, DeliveryDate: at(time.Date(2024, time.March, 14, 23, 0, 0, 0, time.UTC))},
		{ID: 6, DeliveryDate: at(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))},
	}

	g := Group(list, now)
	ids := func(os []models.Order) []uint {
		out := []uint{}
		for _, o := range os {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []uint{2, 6}, ids(g.Today))
	assert.Equal(t, []uint{4, 3}, ids(g.Upcoming))
	assert.Equal(t, []uint{1}, ids(g.Undated))
	assert.Equal(t, []uint{5}, ids(g.Overdue))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(models.OrderScheduled, models.OrderConfirmed))
	assert.True(t, CanTransition(models.OrderScheduled, models.OrderCanceled))
	assert.True(t, CanTransition(models.OrderConfirmed, models.OrderDelivered))

	assert.False(t, CanTransition(models.OrderScheduled, models.OrderDelivered))
	assert.False(t, CanTransition(models.OrderConfirmed, models.OrderCanceled))
	assert.False(t, CanTransition(models.OrderCanceled, models.OrderConfirmed))
	assert.False(t, CanTransition(models.OrderDelivered, models.OrderConfirmed))
	assert.False(t, CanTransition(models.OrderConfirmed, models.OrderConfirmed))
}

func TestBuild(t *testing.T) {
	courier := " Zé "
	o, err := build(models.CreateOrderRequest{
		DeliveryType: "entrega",
		DeliveryFee:  decimal.NewFromInt(10),
		Courier:      &courier,
		Items: []models.OrderItemInput{
			{VariantID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{VariantID: 2, Quantity: 1, UnitPrice: decimal.NewFromInt(30)},
		},
	}, models.DeliveryTypeDelivery)
	require.NoError(t, err)

	assert.Equal(t, models.OrderScheduled, o.Status)
	assert.Equal(t, "entrega", o.DeliveryType)
	require.NotNil(t, o.Courier)
	assert.Equal(t, "Zé", *o.Courier)
	assert.True(t, decimal.NewFromInt(100).Equal(o.Items[0].Subtotal))
	assert.True(t, decimal.NewFromInt(140).Equal(o.Total))

	_, err = build(models.CreateOrderRequest{
		Items: []models.OrderItemInput{{VariantID: 1, Quantity: 1, UnitPrice: decimal.Zero}},
	}, models.DeliveryTypeDelivery)
	assert.ErrorIs(t, err, sales.ErrInvalid)

	_, err = build(models.CreateOrderRequest{
		Status: models.OrderDelivered,
		Items:  []models.OrderItemInput{{VariantID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(1)}},
	}, models.DeliveryTypeDelivery)
	assert.ErrorIs(t, err, sales.ErrInvalid)

	_, err = build(models.CreateOrderRequest{}, models.DeliveryTypeDelivery)
	assert.ErrorIs(t, err, sales.ErrInvalid)
}

func TestSaleRequest(t *testing.T) {
	cid := uint(4)
	req := SaleRequest(models.Order{
		CustomerID:  &cid,
		Total:       decimal.NewFromInt(90),
		DeliveryFee: decimal.Zero,
		Items: []models.OrderItem{
			{VariantID: 7, Quantity: 3, UnitPrice: decimal.NewFromInt(30)},
		},
	})

	assert.Equal(t, models.PaymentCash, req.PaymentMethod)
	assert.Equal(t, models.DeliveryTypePickup, req.DeliveryType)
	assert.False(t, req.DeliveryFee.Valid)
	assert.True(t, req.Total.Valid)
	assert.True(t, decimal.NewFromInt(90).Equal(req.Total.Decimal))
	assert.Equal(t, []models.SaleItemInput{{VariantID: 7, Quantity: 3}}, req.Items)
	assert.Equal(t, &cid, req.CustomerID)
}

func TestBuildConfiguredTagIgnoresCase(t *testing.T) {
	o, err := build(models.CreateOrderRequest{
		DeliveryType: "Entrega",
		DeliveryFee:  decimal.NewFromInt(5),
		Items:        []models.OrderItemInput{{VariantID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(20)}},
	}, "Entrega")
	require.NoError(t, err)
	assert.Equal(t, "entrega", o.DeliveryType)
	assert.True(t, decimal.NewFromInt(25).Equal(o.Total))

	// a confirmação reenvia o tipo gravado, que precisa continuar aceito
	req := SaleRequest(o)
	assert.Equal(t, "entrega", req.DeliveryType)
	assert.True(t, req.DeliveryFee.Valid)
}
