package catalog

import (
	"bytes"
	"testing"

	"nextpdv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sheet(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestFoldKey(t *testing.T) {
	assert.Equal(t, "tenis cano alto", foldKey("  Tênis   CANO Alto "))
	assert.Equal(t, "sandalia", foldKey("Sandália"))
}

func TestParseStockSheet(t *testing.T) {
	buf := sheet(t, [][]any{
		{"Código", "Numeração", "Estoque"},
		{"TN-01", 38, 5},
		{"", "", ""},
		{"TN-01", 39, "x"},
		{"Sandália", "P", 2},
	})

	rows, invalid, err := ParseStockSheet(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, StockRow{Line: 2, Key: "TN-01", Size: "38", Stock: 5}, rows[0])
	assert.Equal(t, models.Size("P"), rows[1].Size)
	require.Len(t, invalid, 1)
	assert.Contains(t, invalid[0], "linha 4")
}

func TestParseStockSheetRejectsGarbage(t *testing.T) {
	_, _, err := ParseStockSheet(bytes.NewBufferString("não é xlsx"))
	assert.Error(t, err)
}

func TestPlanStockImport(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Tênis Runner", Code: "TN-01", Variants: []models.Variant{
			{ID: 10, ProductID: 1, Size: "38", Stock: 1},
		}},
		{ID: 2, Name: "Sandália", Variants: []models.Variant{}},
	}
	rows := []StockRow{
		{Key: "tn-01", Size: "38", Stock: 7},
		{Key: "sandalia", Size: "35", Stock: 3},
		{Key: "SANDÁLIA", Size: "35", Stock: 4},
		{Key: "Bota", Size: "40", Stock: 1},
	}

	plan := planStockImport(products, rows)
	assert.Equal(t, []variantStock{{ID: 10, Stock: 7}}, plan.updates)
	require.Len(t, plan.creates, 1)
	assert.Equal(t, uint(2), plan.creates[0].ProductID)
	assert.Equal(t, 4, plan.creates[0].Stock)
	assert.Equal(t, []string{"Bota"}, plan.unmatched)
}
