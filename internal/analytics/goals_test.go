package analytics

import (
	"testing"

	"nextpdv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalProgress(t *testing.T) {
	p := product(1, "Tênis", "100", "60", "0")
	today := sale(fixedNow, "200", item(p, 2))
	today.CustomerID = uid(1)
	lastWeek := sale(fixedNow.AddDate(0, 0, -3), "100", item(p, 1))
	lastWeek.CustomerID = uid(2)

	goals := []models.Goal{
		{Title: "faturamento do dia", Type: models.GoalRevenue, Period: models.GoalDay, Target: d("400")},
		{Title: "lucro da semana", Type: models.GoalProfit, Period: models.GoalWeek, Target: d("100")},
		{Title: "pares no mês", Type: models.GoalUnitsSold, Period: models.GoalMonth, Target: d("6")},
		{Title: "clientes", Type: models.GoalCustomers, Period: models.GoalWeek, Target: d("2")},
		{Title: "sem alvo", Type: models.GoalRevenue, Period: models.GoalDay, Target: decimal.Zero},
	}

	out := newTestAggregator().GoalProgress(goals, []models.Sale{today, lastWeek})
	require.Len(t, out, len(goals))

	assert.True(t, d("200").Equal(out[0].Current))
	assert.True(t, d("50").Equal(out[0].Progress))

	assert.True(t, d("120").Equal(out[1].Current))
	assert.True(t, d("120").Equal(out[1].Progress))

	assert.True(t, d("3").Equal(out[2].Current))
	assert.True(t, d("50").Equal(out[2].Progress))

	assert.True(t, d("2").Equal(out[3].Current))
	assert.True(t, d("100").Equal(out[3].Progress))

	assert.True(t, out[4].Progress.IsZero())

	// entrada intacta
	assert.True(t, goals[0].Current.IsZero())
}
