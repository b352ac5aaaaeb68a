package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type GoalType string

const (
	GoalRevenue   GoalType = "vendas"
	GoalProfit    GoalType = "lucro"
	GoalUnitsSold GoalType = "produtosVendidos"
	GoalCustomers GoalType = "clientes"
)

type GoalPeriod string

const (
	GoalDay   GoalPeriod = "dia"
	GoalWeek  GoalPeriod = "semana"
	GoalMonth GoalPeriod = "mes"
)

type Goal struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Title     string          `gorm:"size:150;not null" json:"titulo"`
	Target    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valorMeta"`
	Type      GoalType        `gorm:"size:30;not null" json:"tipo"`
	Period    GoalPeriod      `gorm:"size:10;not null" json:"periodo"`
	CreatedAt time.Time       `json:"criadoEm"`
	UpdatedAt time.Time       `json:"-"`

	// calculados a partir das vendas, não persistidos
	Current  decimal.Decimal `gorm:"-" json:"valorAtual"`
	Progress decimal.Decimal `gorm:"-" json:"progresso"`
}

func (Goal) TableName() string {
	return "metas"
}

func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalRevenue, GoalProfit, GoalUnitsSold, GoalCustomers:
		return true
	}
	return false
}

func ValidGoalPeriod(p GoalPeriod) bool {
	switch p {
	case GoalDay, GoalWeek, GoalMonth:
		return true
	}
	return false
}
