package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderScheduled OrderStatus = "agendado"
	OrderConfirmed OrderStatus = "confirmado"
	OrderDelivered OrderStatus = "entregue"
	OrderCanceled  OrderStatus = "cancelado"
)

// Pedido agendado. Ao ser confirmado vira uma venda (SaleID).
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    *uint           `gorm:"index" json:"clienteId"`
	Customer      *Customer       `json:"cliente,omitempty"`
	DeliveryType  string          `gorm:"size:20;not null;default:'retirada'" json:"tipoEntrega"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"taxaEntrega"`
	Courier       *string         `gorm:"size:100" json:"entregador"`
	PaymentMethod string          `gorm:"size:30" json:"formaPagamento"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Status        OrderStatus     `gorm:"size:20;not null;index" json:"status"`
	DeliveryDate  *time.Time      `gorm:"index" json:"dataEntrega"`
	SaleID        *uint           `json:"vendaId"`
	CreatedAt     time.Time       `json:"criadoEm"`
	UpdatedAt     time.Time       `json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"itens"`
}

func (Order) TableName() string {
	return "pedidos"
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"pedidoId"`
	VariantID uint            `gorm:"index;not null" json:"variacaoProdutoId"`
	Variant   *Variant        `json:"variacaoProduto,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantidade"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precoUnitario"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
}

func (OrderItem) TableName() string {
	return "itens_pedido"
}
