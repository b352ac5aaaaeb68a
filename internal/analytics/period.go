package analytics

import (
	"fmt"
	"strings"
	"time"
)

type Period string

const (
	PeriodDay       Period = "dia"
	PeriodLast7Days Period = "7dias"
	PeriodMonth     Period = "mes"
	PeriodAll       Period = "todos"
)

func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dia", "day", "hoje":
		return PeriodDay, nil
	case "7dias", "last7days", "semana":
		return PeriodLast7Days, nil
	case "mes", "month":
		return PeriodMonth, nil
	case "todos", "all", "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("período inválido: %q (dia|7dias|mes|todos)", s)
}

// Window é o intervalo [Start, End).
type Window struct {
	Start time.Time `json:"inicio"`
	End   time.Time `json:"fim"`
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Window devolve a janela do período em dias de calendário do fuso de now.
// O segundo retorno é false para "todos" (sem filtro).
func (p Period) Window(now time.Time) (Window, bool) {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch p {
	case PeriodDay:
		return Window{Start: today, End: tomorrow}, true
	case PeriodLast7Days:
		return Window{Start: today.AddDate(0, 0, -6), End: tomorrow}, true
	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: first, End: tomorrow}, true
	}
	return Window{}, false
}

// Previous: ontem, o bloco de 7 dias anterior ou o mês de calendário anterior.
func (p Period) Previous(now time.Time) (Window, bool) {
	today := startOfDay(now)

	switch p {
	case PeriodDay:
		return Window{Start: today.AddDate(0, 0, -1), End: today}, true
	case PeriodLast7Days:
		start := today.AddDate(0, 0, -6)
		return Window{Start: start.AddDate(0, 0, -7), End: start}, true
	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: first.AddDate(0, -1, 0), End: first}, true
	}
	return Window{}, false
}

func FilterWindow[T any](items []T, w Window, at func(T) time.Time) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if w.Contains(at(it)) {
			out = append(out, it)
		}
	}
	return out
}
