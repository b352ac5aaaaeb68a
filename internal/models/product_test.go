package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeAcceptsNumberOrText(t *testing.T) {
	var in struct {
		A Size `json:"a"`
		B Size `json:"b"`
		C Size `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 38, "b": " P ", "c": 36.5}`), &in))

	assert.Equal(t, Size("38"), in.A)
	assert.Equal(t, Size("P"), in.B)
	assert.Equal(t, Size("36.5"), in.C)
}

func TestProductJSONContract(t *testing.T) {
	p := Product{
		ID:    1,
		Name:  "Tênis Runner",
		Price: decimal.RequireFromString("199.90"),
		Variants: []Variant{
			{ID: 10, ProductID: 1, Size: "38", Stock: 2},
		},
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "Tênis Runner", raw["nome"])
	assert.Equal(t, 199.9, raw["preco"])

	variants := raw["variacoes"].([]any)
	require.Len(t, variants, 1)
	assert.Equal(t, "38", variants[0].(map[string]any)["numeracao"])
	assert.Equal(t, float64(2), variants[0].(map[string]any)["estoque"])
}

func TestUnitProfitAndStock(t *testing.T) {
	p := Product{
		Price:      decimal.NewFromInt(100),
		UnitCost:   decimal.NewFromInt(40),
		OtherCosts: decimal.NewFromInt(10),
		Variants:   []Variant{{Stock: 3}, {Stock: 0}, {Stock: 2}},
	}
	assert.True(t, decimal.NewFromInt(50).Equal(p.UnitProfit()))
	assert.Equal(t, 5, p.TotalStock())
}

func TestSaleItemResolvedProduct(t *testing.T) {
	var item SaleItem
	assert.Nil(t, item.ResolvedProduct())

	item.Variant = &Variant{Product: &Product{Name: "Sandália"}}
	require.NotNil(t, item.ResolvedProduct())
	assert.Equal(t, "Sandália", item.ResolvedProduct().Name)
}
