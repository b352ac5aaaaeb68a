package analytics

import (
	"math"

	"nextpdv/internal/models"
)

const (
	DefaultReferenceCapacity = 12
	CriticalRatio            = 0.5
)

type StockPolicy struct {
	ReferenceCapacity int
}

func NewStockPolicy(capacity int) StockPolicy {
	if capacity <= 0 {
		capacity = DefaultReferenceCapacity
	}
	return StockPolicy{ReferenceCapacity: capacity}
}

type StockAlert struct {
	ProductID  uint   `json:"id"`
	Name       string `json:"nome"`
	Code       string `json:"codigo"`
	Variants   int    `json:"variacoes"`
	ZeroStock  int    `json:"variacoesZeradas"`
	Total      int    `json:"estoqueTotal"`
	Available  int    `json:"disponivel"`
	Percent    int    `json:"percentual"`
	IsCritical bool   `json:"critico"`
}

// IsCritical: metade ou mais das variações sem estoque. Produto sem variação nunca é crítico.
func IsCritical(p models.Product) bool {
	if len(p.Variants) == 0 {
		return false
	}
	zero := 0
	for _, v := range p.Variants {
		if v.Stock <= 0 {
			zero++
		}
	}
	return float64(zero)/float64(len(p.Variants)) >= CriticalRatio
}

func (sp StockPolicy) alert(p models.Product) StockAlert {
	a := StockAlert{
		ProductID:  p.ID,
		Name:       p.Name,
		Code:       p.Code,
		Variants:   len(p.Variants),
		Total:      p.TotalStock(),
		IsCritical: IsCritical(p),
	}
	for _, v := range p.Variants {
		if v.Stock <= 0 {
			a.ZeroStock++
			continue
		}
		a.Available += v.Stock
	}
	a.Percent = int(math.Round(float64(a.Available) / float64(sp.capacity()) * 100))
	return a
}

func (sp StockPolicy) capacity() int {
	if sp.ReferenceCapacity <= 0 {
		return DefaultReferenceCapacity
	}
	return sp.ReferenceCapacity
}

// Critical lista os produtos críticos na ordem recebida.
func (sp StockPolicy) Critical(products []models.Product) []StockAlert {
	out := []StockAlert{}
	for _, p := range products {
		if IsCritical(p) {
			out = append(out, sp.alert(p))
		}
	}
	return out
}

// LowStock: críticos cujo estoque total está abaixo de metade da capacidade de referência.
// total*2 < capacidade evita arredondar a metade em capacidades ímpares.
func (sp StockPolicy) LowStock(products []models.Product) []StockAlert {
	capacity := sp.capacity()
	out := []StockAlert{}
	for _, a := range sp.Critical(products) {
		if a.Total*2 < capacity {
			out = append(out, a)
		}
	}
	return out
}
