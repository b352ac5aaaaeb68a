package checkout

import (
	"context"
	"strings"
	"time"

	"nextpdv/internal/cart"
	"nextpdv/internal/models"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// API é o subconjunto do pdvclient usado no fechamento.
type API interface {
	CreateCustomer(ctx context.Context, in models.CustomerInput) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, in models.CustomerInput) (models.Customer, error)
	CreateSale(ctx context.Context, in models.CreateSaleRequest) (models.Sale, error)
	CreateOrder(ctx context.Context, in models.CreateOrderRequest) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (models.Order, error)
}

// NewCustomer é usado quando nenhum cliente existente foi selecionado.
type NewCustomer struct {
	Name  string
	Phone string
}

type Request struct {
	PaymentMethod string
	Delivery      cart.Delivery
	Discount      decimal.Decimal
	Policy        cart.DiscountPolicy

	CustomerID  *uint
	NewCustomer *NewCustomer
	Address     string
}

type Result struct {
	Sale       models.Sale
	Totals     cart.Totals
	CustomerID *uint
}

type OrderResult struct {
	Order      models.Order
	Totals     cart.Totals
	CustomerID *uint
	Confirmed  bool
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Finalize valida o carrinho localmente, resolve o cliente e envia POST /vendas.
// O carrinho não é alterado; quem chama limpa após sucesso.
func (s *Service) Finalize(ctx context.Context, c cart.Cart, req Request) (Result, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return Result{}, &cart.ValidationError{Field: "produtos", Message: "Carrinho vazio."}
	}
	items, err := cart.SaleItems(lines)
	if err != nil {
		return Result{}, err
	}
	totals := cart.ComputeTotals(lines, req.Delivery, req.Discount, req.Policy)

	customerID, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return Result{}, err
	}

	body := models.CreateSaleRequest{
		Items:         items,
		Total:         decimal.NewNullDecimal(totals.Final),
		PaymentMethod: req.PaymentMethod,
		DeliveryType:  deliveryType(req.Delivery),
		CustomerID:    customerID,
	}
	if req.Delivery.IsDelivery() {
		body.DeliveryFee = decimal.NewNullDecimal(req.Delivery.Fee)
		body.Courier = optional(req.Delivery.Courier)
	}

	sale, err := s.api.CreateSale(ctx, body)
	if err != nil {
		return Result{}, errors.Wrap(err, "finalizar venda")
	}
	return Result{Sale: sale, Totals: totals, CustomerID: customerID}, nil
}

// ScheduleOrder cria um pedido agendado. Com confirmNow o servidor já o converte em venda.
func (s *Service) ScheduleOrder(ctx context.Context, c cart.Cart, req Request, deliveryDate *time.Time, confirmNow bool) (OrderResult, error) {
	lines := c.Lines()
	if len(lines) == 0 {
		return OrderResult{}, &cart.ValidationError{Field: "itens", Message: "Carrinho vazio."}
	}
	items, err := cart.OrderItems(lines)
	if err != nil {
		return OrderResult{}, err
	}
	totals := cart.ComputeTotals(lines, req.Delivery, req.Discount, req.Policy)

	customerID, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return OrderResult{}, err
	}

	body := models.CreateOrderRequest{
		CustomerID:    customerID,
		DeliveryType:  deliveryType(req.Delivery),
		DeliveryFee:   decimal.Zero,
		PaymentMethod: req.PaymentMethod,
		Total:         totals.Final,
		Status:        models.OrderScheduled,
		DeliveryDate:  deliveryDate,
		Items:         items,
	}
	if req.Delivery.IsDelivery() {
		body.DeliveryFee = req.Delivery.Fee
		body.Courier = optional(req.Delivery.Courier)
	}

	order, err := s.api.CreateOrder(ctx, body)
	if err != nil {
		return OrderResult{}, errors.Wrap(err, "salvar pedido")
	}
	res := OrderResult{Order: order, Totals: totals, CustomerID: customerID}

	if confirmNow {
		confirmed, err := s.api.UpdateOrderStatus(ctx, order.ID, models.OrderConfirmed)
		if err != nil {
			return res, errors.Wrapf(err, "confirmar pedido %d", order.ID)
		}
		res.Order = confirmed
		res.Confirmed = true
	}
	return res, nil
}

// resolveCustomer: cliente selecionado (atualizando o endereço se informado),
// senão cria um novo quando há nome. Sem nenhum dos dois a venda fica sem cliente.
func (s *Service) resolveCustomer(ctx context.Context, req Request) (*uint, error) {
	address := strings.TrimSpace(req.Address)

	if req.CustomerID != nil {
		if address != "" {
			if _, err := s.api.UpdateCustomer(ctx, *req.CustomerID, models.CustomerInput{Address: &address}); err != nil {
				return nil, errors.Wrap(err, "atualizar endereço do cliente")
			}
		}
		id := *req.CustomerID
		return &id, nil
	}

	if req.NewCustomer == nil || strings.TrimSpace(req.NewCustomer.Name) == "" {
		return nil, nil
	}

	in := models.CustomerInput{Name: optional(req.NewCustomer.Name)}
	in.Phone = optional(req.NewCustomer.Phone)
	in.Address = optional(address)

	created, err := s.api.CreateCustomer(ctx, in)
	if err != nil {
		return nil, errors.Wrap(err, "cadastrar cliente")
	}
	return &created.ID, nil
}

func deliveryType(d cart.Delivery) string {
	if d.IsDelivery() {
		return d.DeliveryTag()
	}
	return models.DeliveryTypePickup
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
