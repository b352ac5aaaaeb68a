package analytics

import (
	"testing"
	"time"

	"nextpdv/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFilterHistory(t *testing.T) {
	runner := product(1, "Tênis Runner", "100", "0", "0")
	bota := product(2, "Bota Couro", "200", "0", "0")

	a := sale(time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC), "100", item(runner, 1))
	a.Customer = &models.Customer{Name: "Maria Souza"}
	b := sale(time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC), "200", item(bota, 1))
	b.PaymentMethod = models.PaymentCash
	sales := []models.Sale{a, b}

	assert.Len(t, FilterHistory(sales, HistoryFilter{}), 2)
	assert.Len(t, FilterHistory(sales, HistoryFilter{Term: "maria"}), 1)
	assert.Len(t, FilterHistory(sales, HistoryFilter{Term: "DINHEIRO"}), 1)
	assert.Len(t, FilterHistory(sales, HistoryFilter{Term: "runner"}), 1)
	assert.Empty(t, FilterHistory(sales, HistoryFilter{Term: "sandália"}))

	start := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	got := FilterHistory(sales, HistoryFilter{Start: &start, End: &end})
	if assert.Len(t, got, 1) {
		assert.True(t, d("200").Equal(got[0].Total))
	}
}
