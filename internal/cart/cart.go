package cart

import (
	"github.com/shopspring/decimal"
)

const ManualCode = "MANUAL"

type Line struct {
	// Key identifica itens manuais (uuid); vazio para itens do catálogo.
	Key       string          `json:"chave,omitempty"`
	ProductID uint            `json:"produtoId"`
	VariantID *uint           `json:"variacaoId"`
	Name      string          `json:"nome"`
	Code      string          `json:"codigo,omitempty"`
	Size      string          `json:"numeracao"`
	Price     decimal.Decimal `json:"preco"`
	Quantity  int             `json:"qtd"`
	// estoque no momento da adição, só para a interface
	Stock  *int `json:"estoque,omitempty"`
	Manual bool `json:"manual,omitempty"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) sameKey(o Line) bool {
	if l.Manual || o.Manual {
		return l.Manual && o.Manual && l.Key == o.Key
	}
	if l.ProductID != o.ProductID {
		return false
	}
	if l.VariantID == nil || o.VariantID == nil {
		return l.VariantID == nil && o.VariantID == nil
	}
	return *l.VariantID == *o.VariantID
}

// Cart é imutável: toda transição devolve um novo valor.
type Cart struct {
	lines []Line
}

func New(lines ...Line) Cart {
	var c Cart
	for _, l := range lines {
		c = c.Add(l)
	}
	return c
}

// Add soma a quantidade na linha de mesma chave (produto, variação) ou anexa uma nova.
func (c Cart) Add(line Line) Cart {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	next := make([]Line, len(c.lines), len(c.lines)+1)
	copy(next, c.lines)

	for i := range next {
		if next[i].sameKey(line) {
			next[i].Quantity += line.Quantity
			return Cart{lines: next}
		}
	}
	return Cart{lines: append(next, line)}
}

// RemoveLast desfaz a última linha anexada por inteiro (não decrementa).
func (c Cart) RemoveLast() Cart {
	if len(c.lines) == 0 {
		return c
	}
	next := make([]Line, len(c.lines)-1)
	copy(next, c.lines[:len(c.lines)-1])
	return Cart{lines: next}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c Cart) Quantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// Total = Σ qtd × preço
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
