package analytics

import (
	"strings"
	"time"

	"nextpdv/internal/models"
)

type HistoryFilter struct {
	Term  string
	Start *time.Time
	End   *time.Time // inclusivo: o dia inteiro conta
}

// FilterHistory busca o termo (sem diferenciar maiúsculas) no nome do cliente,
// na forma de pagamento e nos nomes dos produtos vendidos.
func FilterHistory(sales []models.Sale, f HistoryFilter) []models.Sale {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	out := []models.Sale{}

	for _, s := range sales {
		if f.Start != nil && s.Date.Before(startOfDay(*f.Start)) {
			continue
		}
		if f.End != nil && !s.Date.Before(startOfDay(*f.End).AddDate(0, 0, 1)) {
			continue
		}
		if term != "" && !matchesTerm(s, term) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesTerm(s models.Sale, term string) bool {
	if s.Customer != nil && strings.Contains(strings.ToLower(s.Customer.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(s.PaymentMethod), term) {
		return true
	}
	for i := range s.Items {
		p := s.Items[i].ResolvedProduct()
		if p != nil && strings.Contains(strings.ToLower(p.Name), term) {
			return true
		}
	}
	return false
}
