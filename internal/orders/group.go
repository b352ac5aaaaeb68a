package orders

import (
	"sort"
	"time"

	"nextpdv/internal/models"
)

type Groups struct {
	Today    []models.Order `json:"hoje"`
	Upcoming []models.Order `json:"futuros"`
	Undated  []models.Order `json:"semData"`
	Overdue  []models.Order `json:"atrasados"`
}

// Group separa os pedidos pela data de entrega no dia de calendário de now.
// Futuros e atrasados saem ordenados pela data.
func Group(list []models.Order, now time.Time) Groups {
	g := Groups{
		Today:    []models.Order{},
		Upcoming: []models.Order{},
		Undated:  []models.Order{},
		Overdue:  []models.Order{},
	}
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	for _, o := range list {
		switch {
		case o.DeliveryDate == nil:
			g.Undated = append(g.Undated, o)
		case o.DeliveryDate.Before(today):
			g.Overdue = append(g.Overdue, o)
		case o.DeliveryDate.Before(tomorrow):
			g.Today = append(g.Today, o)
		default:
			g.Upcoming = append(g.Upcoming, o)
		}
	}

	byDate := func(s []models.Order) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].DeliveryDate.Before(*s[j].DeliveryDate) })
	}
	byDate(g.Upcoming)
	byDate(g.Overdue)
	return g
}
