package analytics

import (
	"testing"

	"nextpdv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStock(id uint, name string, stocks ...int) models.Product {
	p := models.Product{ID: id, Name: name}
	for _, s := range stocks {
		p.Variants = append(p.Variants, models.Variant{ProductID: id, Stock: s})
	}
	return p
}

func TestIsCritical(t *testing.T) {
	assert.False(t, IsCritical(withStock(1, "sem variação")))
	assert.True(t, IsCritical(withStock(2, "metade", 0, 3)))
	assert.True(t, IsCritical(withStock(3, "tudo zerado", 0, 0)))
	assert.False(t, IsCritical(withStock(4, "um terço", 0, 1, 1)))
}

func TestCriticalAndLowStock(t *testing.T) {
	products := []models.Product{
		withStock(1, "A", 0, 2),    // crítico, total 2
		withStock(2, "B", 0, 0, 9), // crítico, total 9
		withStock(3, "C", 4, 4),    // ok
		withStock(4, "D"),
	}
	sp := NewStockPolicy(0)
	require.Equal(t, DefaultReferenceCapacity, sp.ReferenceCapacity)

	critical := sp.Critical(products)
	require.Len(t, critical, 2)
	assert.Equal(t, "A", critical[0].Name)
	assert.Equal(t, "B", critical[1].Name)

	low := sp.LowStock(products)
	require.Len(t, low, 1)
	assert.Equal(t, "A", low[0].Name)
	assert.Equal(t, 2, low[0].Available)
	assert.Equal(t, 17, low[0].Percent) // round(2/12*100)
	assert.Equal(t, 1, low[0].ZeroStock)
}

func TestLowStockCapacityIsConfigurable(t *testing.T) {
	products := []models.Product{withStock(1, "B", 0, 0, 9)}

	assert.Empty(t, NewStockPolicy(12).LowStock(products))

	low := NewStockPolicy(24).LowStock(products)
	require.Len(t, low, 1)
	assert.Equal(t, 38, low[0].Percent)
}

func TestLowStockOddCapacity(t *testing.T) {
	// metade de 5 é 2,5: total 2 está abaixo, total 3 não
	two := []models.Product{withStock(1, "C", 0, 2)}
	three := []models.Product{withStock(2, "D", 0, 3)}

	require.Len(t, NewStockPolicy(5).LowStock(two), 1)
	assert.Empty(t, NewStockPolicy(5).LowStock(three))
}
