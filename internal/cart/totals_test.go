package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestComputeTotalsPickup(t *testing.T) {
	lines := New(catalog(1, 10, 100), catalog(1, 10, 100), catalog(2, 20, 50)).Lines()

	got := ComputeTotals(lines, Delivery{Type: "retirada", Fee: d("15")}, d("20"), ClampDiscount)
	assert.True(t, d("250").Equal(got.Products))
	assert.True(t, d("250").Equal(got.WithDelivery), "taxa só entra em entrega")
	assert.True(t, d("230").Equal(got.Final))
}

func TestComputeTotalsDelivery(t *testing.T) {
	lines := New(catalog(1, 10, 100)).Lines()

	got := ComputeTotals(lines, Delivery{Type: "entrega", Fee: d("12.50")}, decimal.Zero, ClampDiscount)
	assert.True(t, d("112.50").Equal(got.WithDelivery))
	assert.True(t, d("112.50").Equal(got.Final))
}

func TestComputeTotalsDiscountPolicy(t *testing.T) {
	lines := New(catalog(1, 10, 100)).Lines()
	pickup := Delivery{Type: "retirada"}

	clamped := ComputeTotals(lines, pickup, d("150"), ClampDiscount)
	assert.True(t, clamped.Final.IsZero())
	assert.True(t, d("100").Equal(clamped.Discount))

	negative := ComputeTotals(lines, pickup, d("-10"), ClampDiscount)
	assert.True(t, d("100").Equal(negative.Final))

	raw := ComputeTotals(lines, pickup, d("150"), RawDiscount)
	assert.True(t, d("-50").Equal(raw.Final))
}

func TestSaleItemsRequiresVariant(t *testing.T) {
	manual, err := NewManualLine("Cinto", d("30"), 1)
	require.NoError(t, err)
	lines := New(catalog(1, 10, 100), manual).Lines()

	_, err = SaleItems(lines)
	var missing *MissingVariantError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Cinto", missing.Product)
}

func TestSaleItems(t *testing.T) {
	items, err := SaleItems(New(catalog(1, 10, 100), catalog(1, 10, 100)).Lines())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(10), items[0].VariantID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestOrderItemsRequiresPrice(t *testing.T) {
	free := catalog(1, 10, 0)
	_, err := OrderItems([]Line{free})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	items, err := OrderItems(New(catalog(1, 10, 40), catalog(1, 10, 40)).Lines())
	require.NoError(t, err)
	assert.True(t, d("80").Equal(items[0].Subtotal))
	assert.True(t, d("40").Equal(items[0].UnitPrice))
}

func TestDeliveryUsesConfiguredTag(t *testing.T) {
	assert.True(t, Delivery{Type: "Entrega"}.IsDelivery())
	assert.True(t, Delivery{Type: "motoboy", Tag: "MotoBoy"}.IsDelivery())
	assert.False(t, Delivery{Type: "entrega", Tag: "MotoBoy"}.IsDelivery())
	assert.Equal(t, "motoboy", Delivery{Tag: " MotoBoy "}.DeliveryTag())

	lines := New(catalog(1, 10, 100)).Lines()
	got := ComputeTotals(lines, Delivery{Type: "Motoboy", Tag: "motoboy", Fee: d("7")}, decimal.Zero, ClampDiscount)
	assert.True(t, d("107").Equal(got.Final))
}
