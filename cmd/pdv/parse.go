package main

import (
	"fmt"
	"strconv"
	"strings"

	"nextpdv/internal/cart"
	"nextpdv/internal/checkout"
	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

// parseItem lê VARIACAO:QTD. Sem quantidade vale 1.
func parseItem(raw string) (uint, int, error) {
	idPart, qtyPart, hasQty := strings.Cut(strings.TrimSpace(raw), ":")
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil || id == 0 {
		return 0, 0, fmt.Errorf("item inválido %q, use VARIACAO:QTD", raw)
	}
	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(qtyPart)
		if err != nil || qty <= 0 {
			return 0, 0, fmt.Errorf("quantidade inválida em %q", raw)
		}
	}
	return uint(id), qty, nil
}

// parseManual lê NOME:PRECO:QTD; o nome pode conter ':'.
func parseManual(raw string) (string, decimal.Decimal, int, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 {
		return "", decimal.Zero, 0, fmt.Errorf("item manual inválido %q, use NOME:PRECO:QTD", raw)
	}
	n := len(parts)
	price, err := decimal.NewFromString(strings.ReplaceAll(parts[n-2], ",", "."))
	if err != nil {
		return "", decimal.Zero, 0, fmt.Errorf("preço inválido em %q", raw)
	}
	qty, err := strconv.Atoi(parts[n-1])
	if err != nil {
		return "", decimal.Zero, 0, fmt.Errorf("quantidade inválida em %q", raw)
	}
	return strings.Join(parts[:n-2], ":"), price, qty, nil
}

func catalogItem(products []models.Product, raw string) (cart.Line, error) {
	variantID, qty, err := parseItem(raw)
	if err != nil {
		return cart.Line{}, err
	}
	for _, p := range products {
		for _, v := range p.Variants {
			if v.ID != variantID {
				continue
			}
			line, err := cart.CatalogLine(p, v)
			if err != nil {
				return cart.Line{}, fmt.Errorf("%s %s: %w", p.Name, v.Size, err)
			}
			line.Quantity = qty
			return line, nil
		}
	}
	return cart.Line{}, fmt.Errorf("variação %d não encontrada", variantID)
}

// quote calcula os totais sem checkout; aceita itens manuais.
func quote(lines []cart.Line, req checkout.Request) cart.Totals {
	return cart.ComputeTotals(lines, req.Delivery, req.Discount, req.Policy)
}

func brl(d decimal.Decimal) string {
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
