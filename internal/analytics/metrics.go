package analytics

import (
	"sort"
	"time"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

const NoPaymentMethod = "N/A"

type DailyPoint struct {
	Date  string          `json:"dia"` // dd/mm/aaaa
	Total decimal.Decimal `json:"total"`
}

type RankEntry struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidadeVendida"`
}

type Metrics struct {
	SalesCount            int             `json:"vendas"`
	TotalRevenue          decimal.Decimal `json:"faturamento"`
	UnitsSold             int             `json:"produtosVendidos"`
	AverageTicket         decimal.Decimal `json:"ticketMedio"`
	EstimatedProfit       decimal.Decimal `json:"lucroEstimado"`
	CustomersServed       int             `json:"clientesAtendidos"`
	DeliveryCount         int             `json:"entregas"`
	DeliveryFeesTotal     decimal.Decimal `json:"taxasEntrega"`
	MostUsedPaymentMethod string          `json:"formaPagamentoMaisUsada"`
	DailySeries           []DailyPoint    `json:"grafico"`
	BestSellers           []RankEntry     `json:"ranking"`
}

// Summarize calcula as métricas sobre as vendas já filtradas.
// deliveryTag é comparado exatamente com tipoEntrega.
func Summarize(sales []models.Sale, deliveryTag string, loc *time.Location) Metrics {
	if loc == nil {
		loc = time.Local
	}
	m := Metrics{
		SalesCount:            len(sales),
		TotalRevenue:          decimal.Zero,
		AverageTicket:         decimal.Zero,
		EstimatedProfit:       decimal.Zero,
		DeliveryFeesTotal:     decimal.Zero,
		MostUsedPaymentMethod: NoPaymentMethod,
		DailySeries:           []DailyPoint{},
		BestSellers:           []RankEntry{},
	}

	customers := make(map[uint]struct{})
	payments := newCounter()
	ranking := newCounter()

	type dayBucket struct {
		day   time.Time
		total decimal.Decimal
	}
	days := make(map[time.Time]*dayBucket)

	for _, s := range sales {
		m.TotalRevenue = m.TotalRevenue.Add(s.Total)

		for _, item := range s.Items {
			m.UnitsSold += item.Quantity

			p := item.ResolvedProduct()
			if p == nil {
				continue
			}
			m.EstimatedProfit = m.EstimatedProfit.Add(p.UnitProfit().Mul(decimal.NewFromInt(int64(item.Quantity))))
			ranking.add(p.Name, item.Quantity)
		}

		if s.CustomerID != nil {
			customers[*s.CustomerID] = struct{}{}
		}

		if s.DeliveryType == deliveryTag {
			m.DeliveryCount++
			if s.DeliveryFee.Valid {
				m.DeliveryFeesTotal = m.DeliveryFeesTotal.Add(s.DeliveryFee.Decimal)
			}
		}

		method := s.PaymentMethod
		if method == "" {
			method = models.PaymentUnset
		}
		payments.add(method, 1)

		day := startOfDay(s.Date.In(loc))
		b, ok := days[day]
		if !ok {
			b = &dayBucket{day: day, total: decimal.Zero}
			days[day] = b
		}
		b.total = b.total.Add(s.Total)
	}

	if m.SalesCount > 0 {
		m.AverageTicket = m.TotalRevenue.Div(decimal.NewFromInt(int64(m.SalesCount)))
	}
	m.CustomersServed = len(customers)

	if top, ok := payments.top(); ok {
		m.MostUsedPaymentMethod = top
	}

	for _, e := range ranking.sorted() {
		m.BestSellers = append(m.BestSellers, RankEntry{Name: e.key, Quantity: e.count})
	}

	ordered := make([]*dayBucket, 0, len(days))
	for _, b := range days {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].day.Before(ordered[j].day) })
	for _, b := range ordered {
		m.DailySeries = append(m.DailySeries, DailyPoint{Date: b.day.Format("02/01/2006"), Total: b.total})
	}

	return m
}

// counter preserva a ordem da primeira ocorrência para desempates.
type counter struct {
	index   map[string]int
	entries []counterEntry
}

type counterEntry struct {
	key   string
	count int
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if i, ok := c.index[key]; ok {
		c.entries[i].count += n
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, counterEntry{key: key, count: n})
}

func (c *counter) top() (string, bool) {
	if len(c.entries) == 0 {
		return "", false
	}
	best := c.entries[0]
	for _, e := range c.entries[1:] {
		if e.count > best.count {
			best = e
		}
	}
	return best.key, true
}

func (c *counter) sorted() []counterEntry {
	out := make([]counterEntry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}
