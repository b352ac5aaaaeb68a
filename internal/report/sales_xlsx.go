package report

import (
	"fmt"
	"io"
	"strings"

	"nextpdv/internal/analytics"
	"nextpdv/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	SalesSheet   = "Vendas"
	SummarySheet = "Resumo"
)

var salesHeader = []any{"ID", "Data", "Cliente", "Itens", "Qtd", "Pagamento", "Entrega", "Taxa", "Total"}

// WriteSales grava a planilha com uma linha por venda e a aba de resumo do período.
func WriteSales(w io.Writer, sales []models.Sale, snap analytics.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SalesSheet); err != nil {
		return err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SalesSheet, "A1", &salesHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(SalesSheet, "A1", "I1", header); err != nil {
		return err
	}

	for i, s := range sales {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		fee := 0.0
		if s.DeliveryFee.Valid {
			fee = s.DeliveryFee.Decimal.InexactFloat64()
		}
		values := []any{
			s.ID,
			s.Date.Format("02/01/2006 15:04"),
			customerName(s),
			itemsLabel(s),
			units(s),
			paymentLabel(s.PaymentMethod),
			s.DeliveryType,
			fee,
			s.Total.InexactFloat64(),
		}
		if err := f.SetSheetRow(SalesSheet, cell, &values); err != nil {
			return err
		}
		if err := f.SetCellStyle(SalesSheet, fmt.Sprintf("H%d", row), fmt.Sprintf("I%d", row), money); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(SalesSheet, "B", "B", 17); err != nil {
		return err
	}
	if err := f.SetColWidth(SalesSheet, "C", "D", 32); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Métrica", "Valor"},
		{"Período", string(snap.Period)},
		{"Vendas", snap.SalesCount},
		{"Faturamento", snap.TotalRevenue.InexactFloat64()},
		{"Produtos vendidos", snap.UnitsSold},
		{"Ticket médio", snap.AverageTicket.Round(2).InexactFloat64()},
		{"Lucro estimado", snap.EstimatedProfit.InexactFloat64()},
		{"Clientes atendidos", snap.CustomersServed},
		{"Entregas", snap.DeliveryCount},
		{"Taxas de entrega", snap.DeliveryFeesTotal.InexactFloat64()},
		{"Pagamento mais usado", snap.MostUsedPaymentMethod},
	}
	for i, r := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", header); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "A", "A", 24); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func customerName(s models.Sale) string {
	if s.Customer == nil {
		return ""
	}
	return s.Customer.Name
}

func itemsLabel(s models.Sale) string {
	parts := make([]string, 0, len(s.Items))
	for i := range s.Items {
		it := &s.Items[i]
		name := "?"
		if p := it.ResolvedProduct(); p != nil {
			name = p.Name
		}
		size := ""
		if it.Variant != nil {
			size = " " + string(it.Variant.Size)
		}
		parts = append(parts, fmt.Sprintf("%dx %s%s", it.Quantity, name, size))
	}
	return strings.Join(parts, ", ")
}

func units(s models.Sale) int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

func paymentLabel(m string) string {
	if m == "" {
		return models.PaymentUnset
	}
	return m
}
