package cart

import (
	"errors"
	"testing"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vid(id uint) *uint { return &id }

func catalog(productID, variantID uint, price int64) Line {
	return Line{
		ProductID: productID,
		VariantID: vid(variantID),
		Name:      "Produto",
		Price:     decimal.NewFromInt(price),
		Quantity:  1,
	}
}

func TestAddMergesSameProductAndVariant(t *testing.T) {
	c := Cart{}.
		Add(catalog(1, 10, 100)).
		Add(catalog(1, 11, 100)).
		Add(catalog(1, 10, 100)).
		Add(catalog(2, 10, 50))

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, uint(11), *lines[1].VariantID)
	assert.Equal(t, uint(2), lines[2].ProductID)
	assert.Equal(t, 4, c.Quantity())
}

func TestAddQuantityIsSumOfAdditions(t *testing.T) {
	adds := []struct {
		product, variant uint
		qty              int
	}{
		{1, 1, 1}, {1, 2, 3}, {1, 1, 2}, {3, 1, 1}, {1, 2, 1}, {3, 1, 5},
	}

	c := Cart{}
	sum := 0
	keys := map[[2]uint]bool{}
	for _, a := range adds {
		l := catalog(a.product, a.variant, 10)
		l.Quantity = a.qty
		c = c.Add(l)
		sum += a.qty
		keys[[2]uint{a.product, a.variant}] = true
	}

	assert.Equal(t, sum, c.Quantity())
	assert.Equal(t, len(keys), c.Len())
}

func TestAddDoesNotMutatePreviousCart(t *testing.T) {
	before := Cart{}.Add(catalog(1, 10, 100))
	after := before.Add(catalog(1, 10, 100))

	assert.Equal(t, 1, before.Lines()[0].Quantity)
	assert.Equal(t, 2, after.Lines()[0].Quantity)
}

func TestAddNormalizesQuantity(t *testing.T) {
	l := catalog(1, 10, 100)
	l.Quantity = 0
	c := Cart{}.Add(l)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestRemoveLast(t *testing.T) {
	c := New(catalog(1, 10, 100), catalog(2, 20, 50), catalog(3, 30, 25))
	removed := c.RemoveLast()

	require.Equal(t, 2, removed.Len())
	assert.Equal(t, c.Lines()[:2], removed.Lines())
	assert.Equal(t, 3, c.Len())
}

func TestRemoveLastDropsWholeLine(t *testing.T) {
	c := New(catalog(1, 10, 100), catalog(2, 20, 50), catalog(2, 20, 50))
	require.Equal(t, 2, c.Lines()[1].Quantity)

	removed := c.RemoveLast()
	assert.Equal(t, 1, removed.Len())
	assert.Equal(t, 1, removed.Quantity())
}

func TestRemoveLastOnEmpty(t *testing.T) {
	c := Cart{}.RemoveLast()
	assert.True(t, c.IsEmpty())
}

func TestClear(t *testing.T) {
	c := New(catalog(1, 10, 100)).Clear()
	assert.True(t, c.IsEmpty())
	assert.True(t, c.Total().IsZero())
}

func TestManualLinesNeverMerge(t *testing.T) {
	a, err := NewManualLine("Cinto", decimal.NewFromInt(30), 1)
	require.NoError(t, err)
	b, err := NewManualLine("Cinto", decimal.NewFromInt(30), 2)
	require.NoError(t, err)

	c := Cart{}.Add(a).Add(b)
	assert.Equal(t, 2, c.Len())
	assert.NotEqual(t, a.Key, b.Key)
	assert.Equal(t, ManualCode, a.Code)
	assert.Nil(t, a.VariantID)

	// mesma chave soma a quantidade
	c = c.Add(a)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestNewManualLineValidation(t *testing.T) {
	cases := []struct {
		name  string
		price decimal.Decimal
		qty   int
		field string
	}{
		{"", decimal.NewFromInt(10), 1, "nome"},
		{"   ", decimal.NewFromInt(10), 1, "nome"},
		{"Meia", decimal.Zero, 1, "preco"},
		{"Meia", decimal.NewFromInt(-5), 1, "preco"},
		{"Meia", decimal.NewFromInt(10), 0, "qtd"},
	}
	for _, tc := range cases {
		_, err := NewManualLine(tc.name, tc.price, tc.qty)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "esperava ValidationError para %+v", tc)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestCatalogLine(t *testing.T) {
	p := models.Product{ID: 7, Name: "Bota", Code: "BT01", Price: decimal.NewFromInt(250)}

	line, err := CatalogLine(p, models.Variant{ID: 70, ProductID: 7, Size: "40", Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(7), line.ProductID)
	assert.Equal(t, uint(70), *line.VariantID)
	assert.Equal(t, "40", line.Size)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 3, *line.Stock)

	_, err = CatalogLine(p, models.Variant{ID: 71, Stock: 0})
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestSessionAddManualKeepsCartOnError(t *testing.T) {
	s := NewSession()
	s.Add(catalog(1, 10, 100))

	err := s.AddManual("", decimal.NewFromInt(10), 1)
	assert.Error(t, err)
	assert.Len(t, s.Lines(), 1)

	require.NoError(t, s.AddManual("Palmilha", decimal.NewFromInt(15), 2))
	assert.Len(t, s.Lines(), 2)
	assert.True(t, decimal.NewFromInt(130).Equal(s.Total()))

	s.RemoveLast()
	assert.Len(t, s.Lines(), 1)
	s.Clear()
	assert.True(t, s.Cart().IsEmpty())
}
