package analytics

import (
	"time"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

type Aggregator struct {
	DeliveryTag string
	Now         func() time.Time
}

func NewAggregator(deliveryTag string) *Aggregator {
	return &Aggregator{DeliveryTag: models.NormalizeDeliveryTag(deliveryTag), Now: time.Now}
}

type Snapshot struct {
	Period Period  `json:"periodo"`
	Window *Window `json:"janela,omitempty"`
	Metrics
	Comparison *Comparison `json:"comparacao,omitempty"`
}

type Changes struct {
	Revenue       decimal.Decimal `json:"faturamento"`
	SalesCount    decimal.Decimal `json:"vendas"`
	UnitsSold     decimal.Decimal `json:"produtosVendidos"`
	AverageTicket decimal.Decimal `json:"ticketMedio"`
	Profit        decimal.Decimal `json:"lucroEstimado"`
	Customers     decimal.Decimal `json:"clientesAtendidos"`
}

type Comparison struct {
	Window   Window  `json:"janela"`
	Previous Metrics `json:"anterior"`
	Changes  Changes `json:"variacao"`
}

var hundred = decimal.NewFromInt(100)

// PercentChange devolve 0 quando previous é 0, inclusive para current > 0.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

func (a *Aggregator) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func saleDate(s models.Sale) time.Time { return s.Date }

// Filter aplica a janela do período; "todos" devolve a lista inteira.
func (a *Aggregator) Filter(sales []models.Sale, p Period) []models.Sale {
	w, ok := p.Window(a.now())
	if !ok {
		return sales
	}
	return FilterWindow(sales, w, saleDate)
}

func (a *Aggregator) Compute(sales []models.Sale, p Period, compare bool) Snapshot {
	now := a.now()
	loc := now.Location()

	snap := Snapshot{Period: p}
	current := sales
	if w, ok := p.Window(now); ok {
		snap.Window = &w
		current = FilterWindow(sales, w, saleDate)
	}
	snap.Metrics = Summarize(current, a.DeliveryTag, loc)

	if compare {
		if pw, ok := p.Previous(now); ok {
			prev := Summarize(FilterWindow(sales, pw, saleDate), a.DeliveryTag, loc)
			snap.Comparison = &Comparison{
				Window:   pw,
				Previous: prev,
				Changes:  changes(snap.Metrics, prev),
			}
		}
	}
	return snap
}

func changes(cur, prev Metrics) Changes {
	n := func(i int) decimal.Decimal { return decimal.NewFromInt(int64(i)) }
	return Changes{
		Revenue:       PercentChange(cur.TotalRevenue, prev.TotalRevenue),
		SalesCount:    PercentChange(n(cur.SalesCount), n(prev.SalesCount)),
		UnitsSold:     PercentChange(n(cur.UnitsSold), n(prev.UnitsSold)),
		AverageTicket: PercentChange(cur.AverageTicket, prev.AverageTicket),
		Profit:        PercentChange(cur.EstimatedProfit, prev.EstimatedProfit),
		Customers:     PercentChange(n(cur.CustomersServed), n(prev.CustomersServed)),
	}
}
