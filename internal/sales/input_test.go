package sales

import (
	"errors"
	"fmt"
	"testing"

	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestNormalizeRejectsInvalid(t *testing.T) {
	cases := map[string]models.CreateSaleRequest{
		"sem itens":       {},
		"sem variação":    {Items: []models.SaleItemInput{{Quantity: 1}}},
		"quantidade zero": {Items: []models.SaleItemInput{{VariantID: 1}}},
		"entrega inválida": {
			Items:        []models.SaleItemInput{{VariantID: 1, Quantity: 1}},
			DeliveryType: "correio",
		},
		"taxa negativa": {
			Items:        []models.SaleItemInput{{VariantID: 1, Quantity: 1}},
			DeliveryType: "entrega",
			DeliveryFee:  decimal.NewNullDecimal(decimal.NewFromInt(-5)),
		},
		"total negativo": {
			Items: []models.SaleItemInput{{VariantID: 1, Quantity: 1}},
			Total: decimal.NewNullDecimal(decimal.NewFromInt(-1)),
		},
	}
	for name, req := range cases {
		_, err := normalize(req, models.DeliveryTypeDelivery)
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestNormalizeDelivery(t *testing.T) {
	d, err := normalize(models.CreateSaleRequest{
		Items:         []models.SaleItemInput{{VariantID: 3, Quantity: 1}, {VariantID: 4, Quantity: 2}, {VariantID: 3, Quantity: 2}},
		PaymentMethod: " PIX ",
		DeliveryType:  "Entrega",
		DeliveryFee:   decimal.NewNullDecimal(decimal.NewFromInt(12)),
		Courier:       strp(" Zé "),
	}, models.DeliveryTypeDelivery)
	require.NoError(t, err)

	assert.Equal(t, "entrega", d.deliveryType)
	assert.Equal(t, "pix", d.paymentMethod)
	assert.Equal(t, []uint{3, 4}, d.order)
	assert.Equal(t, 3, d.quantities[3])
	assert.Equal(t, 2, d.quantities[4])
	require.NotNil(t, d.courier)
	assert.Equal(t, "Zé", *d.courier)
	assert.True(t, d.deliveryFee.Valid)
}

func TestNormalizePickupDropsDeliveryFields(t *testing.T) {
	d, err := normalize(models.CreateSaleRequest{
		Items:       []models.SaleItemInput{{VariantID: 1, Quantity: 1}},
		DeliveryFee: decimal.NewNullDecimal(decimal.NewFromInt(12)),
		Courier:     strp("Zé"),
	}, models.DeliveryTypeDelivery)
	require.NoError(t, err)

	assert.Equal(t, models.DeliveryTypePickup, d.deliveryType)
	assert.False(t, d.deliveryFee.Valid)
	assert.Nil(t, d.courier)
}

func TestResolveTotal(t *testing.T) {
	variants := map[uint]models.Variant{
		1: {ID: 1, Product: &models.Product{Price: decimal.NewFromInt(100)}},
		2: {ID: 2, Product: &models.Product{Price: decimal.NewFromInt(30)}},
	}
	d, err := normalize(models.CreateSaleRequest{
		Items:        []models.SaleItemInput{{VariantID: 1, Quantity: 2}, {VariantID: 2, Quantity: 1}},
		DeliveryType: "entrega",
		DeliveryFee:  decimal.NewNullDecimal(decimal.NewFromInt(10)),
	}, models.DeliveryTypeDelivery)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(240).Equal(d.resolveTotal(variants)))

	d.total = decimal.NewNullDecimal(decimal.NewFromInt(200))
	assert.True(t, decimal.NewFromInt(200).Equal(d.resolveTotal(variants)))
}

func TestCheckExchange(t *testing.T) {
	item := models.SaleItem{ID: 1, VariantID: 10, Quantity: 2}
	current := models.Variant{ID: 10, ProductID: 1, Size: "38"}
	sameProduct := models.Variant{ID: 11, ProductID: 1, Size: "39", Stock: 5}
	otherProduct := models.Variant{ID: 20, ProductID: 2, Size: "40", Stock: 5}
	empty := models.Variant{ID: 12, ProductID: 1, Size: "41", Stock: 1}

	req := models.ExchangeRequest{SaleID: 1, ItemID: 1, Mode: models.ExchangeSameProduct}

	req.NewVariantID = 10
	assert.ErrorIs(t, checkExchange(req, item, current, current), ErrSameVariant)

	req.NewVariantID = 11
	assert.NoError(t, checkExchange(req, item, current, sameProduct))

	req.NewVariantID = 20
	assert.ErrorIs(t, checkExchange(req, item, current, otherProduct), ErrInvalid)

	req.Mode = models.ExchangeOtherProduct
	req.NewProductID = 2
	assert.NoError(t, checkExchange(req, item, current, otherProduct))

	req.NewProductID = 3
	assert.ErrorIs(t, checkExchange(req, item, current, otherProduct), ErrInvalid)

	req = models.ExchangeRequest{Mode: models.ExchangeSameProduct, NewVariantID: 12}
	assert.ErrorIs(t, checkExchange(req, item, current, empty), ErrInsufficientStock)

	req.Mode = "qualquer"
	assert.ErrorIs(t, checkExchange(req, item, current, sameProduct), ErrInvalid)
}

func TestHTTPError(t *testing.T) {
	code := func(err error) int {
		var fe *fiber.Error
		require.True(t, errors.As(HTTPError(err), &fe))
		return fe.Code
	}

	assert.Equal(t, fiber.StatusNotFound, code(ErrSaleNotFound))
	assert.Equal(t, fiber.StatusNotFound, code(fmt.Errorf("%w: id 3", ErrVariantNotFound)))
	assert.Equal(t, fiber.StatusConflict, code(fmt.Errorf("%w: 0 em estoque", ErrInsufficientStock)))
	assert.Equal(t, fiber.StatusBadRequest, code(ErrSameVariant))
	assert.Equal(t, fiber.StatusBadRequest, code(fmt.Errorf("%w: x", ErrInvalid)))
	assert.Equal(t, fiber.StatusTeapot, code(fiber.NewError(fiber.StatusTeapot, "x")))

	assert.NoError(t, HTTPError(nil))
	plain := errors.New("db caiu")
	assert.Equal(t, plain, HTTPError(plain))
}

func TestNormalizeConfiguredTagIgnoresCase(t *testing.T) {
	items := []models.SaleItemInput{{VariantID: 1, Quantity: 1}}

	for _, kind := range []string{"Entrega", "entrega", " ENTREGA "} {
		d, err := normalize(models.CreateSaleRequest{
			Items:        items,
			DeliveryType: kind,
			DeliveryFee:  decimal.NewNullDecimal(decimal.NewFromInt(8)),
		}, "Entrega")
		require.NoError(t, err, kind)
		assert.Equal(t, "entrega", d.deliveryType)
		assert.True(t, d.deliveryFee.Valid)
	}

	d, err := normalize(models.CreateSaleRequest{Items: items, DeliveryType: "Motoboy"}, "MotoBoy")
	require.NoError(t, err)
	assert.Equal(t, "motoboy", d.deliveryType)

	_, err = normalize(models.CreateSaleRequest{Items: items, DeliveryType: "entrega"}, "MotoBoy")
	assert.ErrorIs(t, err, ErrInvalid)
}
