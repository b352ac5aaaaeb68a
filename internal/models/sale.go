package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DeliveryTypeDelivery = "entrega"
	DeliveryTypePickup   = "retirada"
)

// NormalizeDeliveryTag deixa a etiqueta de entrega em minúsculas; vazia vira "entrega".
func NormalizeDeliveryTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return DeliveryTypeDelivery
	}
	return tag
}

const (
	PaymentPix   = "pix"
	PaymentCash  = "dinheiro"
	PaymentCard  = "cartao"
	PaymentUnset = "Indefinido"
)

type Sale struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	Date          time.Time           `gorm:"index;not null" json:"data"`
	Total         decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"total"`
	PaymentMethod string              `gorm:"size:30" json:"formaPagamento"`
	DeliveryType  string              `gorm:"size:20;not null;default:'retirada'" json:"tipoEntrega"`
	DeliveryFee   decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"taxaEntrega"`
	Courier       *string             `gorm:"size:100" json:"entregador"`
	CustomerID    *uint               `gorm:"index" json:"clienteId"`
	Customer      *Customer           `json:"cliente,omitempty"`
	CreatedAt     time.Time           `json:"-"`
	UpdatedAt     time.Time           `json:"-"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"itens"`
}

func (Sale) TableName() string {
	return "vendas"
}

type SaleItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	SaleID    uint     `gorm:"index;not null" json:"vendaId"`
	VariantID uint     `gorm:"index;not null" json:"variacaoProdutoId"`
	Variant   *Variant `gorm:"constraint:OnDelete:RESTRICT" json:"variacaoProduto"`
	Quantity  int      `gorm:"not null" json:"quantidade"`
}

func (SaleItem) TableName() string {
	return "itens_venda"
}

// ResolvedProduct segue item -> variação -> produto. nil se não carregado.
func (i *SaleItem) ResolvedProduct() *Product {
	if i.Variant == nil {
		return nil
	}
	return i.Variant.Product
}
