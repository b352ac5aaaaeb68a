package analytics

import (
	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
)

func goalWindow(p models.GoalPeriod) Period {
	switch p {
	case models.GoalDay:
		return PeriodDay
	case models.GoalWeek:
		return PeriodLast7Days
	}
	return PeriodMonth
}

func goalValue(t models.GoalType, m Metrics) decimal.Decimal {
	switch t {
	case models.GoalRevenue:
		return m.TotalRevenue
	case models.GoalProfit:
		return m.EstimatedProfit
	case models.GoalUnitsSold:
		return decimal.NewFromInt(int64(m.UnitsSold))
	case models.GoalCustomers:
		return decimal.NewFromInt(int64(m.CustomersServed))
	}
	return decimal.Zero
}

// GoalProgress preenche valorAtual e progresso (0-100+, 2 casas) de cada meta.
func (a *Aggregator) GoalProgress(goals []models.Goal, sales []models.Sale) []models.Goal {
	cache := make(map[Period]Metrics)
	out := make([]models.Goal, len(goals))

	for i, g := range goals {
		p := goalWindow(g.Period)
		m, ok := cache[p]
		if !ok {
			m = a.Compute(sales, p, false).Metrics
			cache[p] = m
		}

		g.Current = goalValue(g.Type, m)
		g.Progress = decimal.Zero
		if g.Target.IsPositive() {
			g.Progress = g.Current.Div(g.Target).Mul(hundred).Round(2)
		}
		out[i] = g
	}
	return out
}
