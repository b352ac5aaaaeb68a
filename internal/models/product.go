package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// o front-end espera números em "preco", "total" etc., não strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Size é a numeração da variação. Aceita número ou texto no JSON de entrada.
type Size string

func (s *Size) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Size(strings.TrimSpace(v))
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*s = Size(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:150;not null;index" json:"nome"`
	Code         string          `gorm:"size:50;index" json:"codigo"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"preco"`
	UnitCost     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"custoUnitario"`
	OtherCosts   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"outrosCustos"`
	ImageURL     string          `gorm:"size:255" json:"imagemUrl"`
	FullImageURL string          `gorm:"-" json:"imagemUrlCompleta,omitempty"`
	CreatedAt    time.Time       `json:"criadoEm"`
	UpdatedAt    time.Time       `json:"atualizadoEm"`

	Variants []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variacoes"`
}

func (Product) TableName() string {
	return "produtos"
}

// UnitProfit = preco - custoUnitario - outrosCustos
func (p *Product) UnitProfit() decimal.Decimal {
	return p.Price.Sub(p.UnitCost).Sub(p.OtherCosts)
}

func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// Variant: uma numeração do produto com estoque próprio
type Variant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"index;not null" json:"produtoId"`
	Product   *Product  `json:"produto,omitempty"`
	Size      Size      `gorm:"size:20;not null" json:"numeracao"`
	Stock     int       `gorm:"not null;default:0" json:"estoque"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Variant) TableName() string {
	return "variacoes_produto"
}
