package report

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nextpdv/internal/analytics"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSales(now time.Time) []models.Sale {
	p := &models.Product{Name: "Tênis Runner", Price: decimal.NewFromInt(100), UnitCost: decimal.NewFromInt(60)}
	return []models.Sale{
		{
			ID:            1,
			Date:          now,
			Total:         decimal.NewFromInt(210),
			PaymentMethod: "pix",
			DeliveryType:  models.DeliveryTypeDelivery,
			DeliveryFee:   decimal.NewNullDecimal(decimal.NewFromInt(10)),
			Customer:      &models.Customer{Name: "Ana"},
			Items: []models.SaleItem{
				{Quantity: 2, Variant: &models.Variant{Size: "38", Product: p}},
			},
		},
		{ID: 2, Date: now.AddDate(0, -3, 0), Total: decimal.NewFromInt(99)},
	}
}

func TestWriteSales(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.Local)
	agg := analytics.NewAggregator(models.DeliveryTypeDelivery)
	agg.Now = func() time.Time { return now }
	sales := sampleSales(now)

	var buf bytes.Buffer
	require.NoError(t, WriteSales(&buf, agg.Filter(sales, analytics.PeriodMonth), agg.Compute(sales, analytics.PeriodMonth, false)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SalesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cliente", rows[0][2])
	assert.Equal(t, "15/03/2024 10:30", rows[1][1])
	assert.Equal(t, "Ana", rows[1][2])
	assert.Equal(t, "2x Tênis Runner 38", rows[1][3])
	assert.Equal(t, "2", rows[1][4])
	assert.Equal(t, "entrega", rows[1][6])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(summary), 4)
	assert.Equal(t, []string{"Período", "mes"}, summary[1])
	assert.Equal(t, []string{"Vendas", "1"}, summary[2])
	assert.Equal(t, "Faturamento", summary[3][0])
}

type fakeSource []models.Sale

func (f fakeSource) Sales(context.Context) ([]models.Sale, error) { return f, nil }

func TestExportSalesHandler(t *testing.T) {
	now := time.Now()
	agg := analytics.NewAggregator(models.DeliveryTypeDelivery)

	app := fiber.New()
	app.Get("/vendas/exportar", ExportSalesHandler(fakeSource(sampleSales(now)), agg))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/vendas/exportar?periodo=todos", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "vendas-todos-")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SalesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/vendas/exportar?periodo=semestre", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
