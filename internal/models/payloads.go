package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Corpos de requisição/resposta do contrato REST, usados pelo servidor e pelo cliente.

type VariantInput struct {
	Size  Size `json:"numeracao"`
	Stock *int `json:"estoque"`
}

type ProductInput struct {
	Name       *string             `json:"nome"`
	Code       *string             `json:"codigo"`
	Price      decimal.NullDecimal `json:"preco"`
	UnitCost   decimal.NullDecimal `json:"custoUnitario"`
	OtherCosts decimal.NullDecimal `json:"outrosCustos"`
	ImageURL   *string             `json:"imagemUrl"`
	Variants   []VariantInput      `json:"variacoes,omitempty"`
}

type StockUpdate struct {
	Stock *int `json:"estoque"`
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type CustomerInput struct {
	Name         *string `json:"nome,omitempty"`
	Phone        *string `json:"telefone,omitempty"`
	Address      *string `json:"endereco,omitempty"`
	Neighborhood *string `json:"bairro,omitempty"`
	City         *string `json:"cidade,omitempty"`
	State        *string `json:"estado,omitempty"`
	ZipCode      *string `json:"cep,omitempty"`
	Notes        *string `json:"observacoes,omitempty"`
}

type SaleItemInput struct {
	VariantID uint `json:"variacaoProdutoId"`
	Quantity  int  `json:"quantidade"`
}

// Total é uma proposta do cliente; vazio faz o servidor calcular.
type CreateSaleRequest struct {
	Items         []SaleItemInput     `json:"produtos"`
	Total         decimal.NullDecimal `json:"total"`
	PaymentMethod string              `json:"formaPagamento"`
	DeliveryType  string              `json:"tipoEntrega"`
	DeliveryFee   decimal.NullDecimal `json:"taxaEntrega"`
	Courier       *string             `json:"entregador"`
	CustomerID    *uint               `json:"clienteId"`
}

const (
	ExchangeSameProduct  = "mesmo"
	ExchangeOtherProduct = "outro"
)

type ExchangeRequest struct {
	SaleID       uint   `json:"vendaId"`
	ItemID       uint   `json:"itemId"`
	Mode         string `json:"modoTroca"`
	NewProductID uint   `json:"novoProdutoId"`
	NewVariantID uint   `json:"novaVariacaoId"`
}

type ExchangeResponse struct {
	Sale Sale `json:"venda"`
}

type OrderItemInput struct {
	VariantID uint            `json:"variacaoProdutoId"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"precoUnitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CreateOrderRequest struct {
	CustomerID    *uint            `json:"clienteId"`
	DeliveryType  string           `json:"tipoEntrega"`
	DeliveryFee   decimal.Decimal  `json:"taxaEntrega"`
	Courier       *string          `json:"entregador"`
	PaymentMethod string           `json:"formaPagamento"`
	Total         decimal.Decimal  `json:"total"`
	Status        OrderStatus      `json:"status"`
	DeliveryDate  *time.Time       `json:"dataEntrega"`
	Items         []OrderItemInput `json:"itens"`
}

type OrderCreated struct {
	Order Order `json:"pedido"`
}

type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

type GoalInput struct {
	Title  string          `json:"titulo"`
	Target decimal.Decimal `json:"valorMeta"`
	Type   GoalType        `json:"tipo"`
	Period GoalPeriod      `json:"periodo"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// StockImportResult é a resposta de POST /produtos/estoque/importar.
type StockImportResult struct {
	Updated   int      `json:"atualizadas"`
	Created   int      `json:"criadas"`
	Unmatched []string `json:"naoEncontrados"`
	Invalid   []string `json:"linhasInvalidas"`
}
