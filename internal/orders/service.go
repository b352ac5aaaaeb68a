package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nextpdv/internal/audit"
	"nextpdv/internal/models"
	"nextpdv/internal/sales"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = errors.New("pedido não encontrado")
	ErrInvalidTransition = errors.New("mudança de status não permitida")
)

type Service struct {
	DB    *gorm.DB
	Sales *sales.Service
}

func NewService(db *gorm.DB, salesSvc *sales.Service) *Service {
	return &Service{DB: db, Sales: salesSvc}
}

func preloadOrders(db *gorm.DB) *gorm.DB {
	return db.Preload("Items.Variant.Product").Preload("Customer")
}

func (s *Service) List(ctx context.Context) ([]models.Order, error) {
	var list []models.Order
	err := preloadOrders(s.DB.WithContext(ctx)).Order("delivery_date asc nulls last, id desc").Find(&list).Error
	return list, err
}

func (s *Service) Get(ctx context.Context, id uint) (models.Order, error) {
	return loadOrder(s.DB.WithContext(ctx), id)
}

func loadOrder(db *gorm.DB, id uint) (models.Order, error) {
	var o models.Order
	err := preloadOrders(db).First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return o, ErrOrderNotFound
	}
	return o, err
}

// build valida o pedido recebido. O estoque só é baixado na confirmação.
func build(req models.CreateOrderRequest, deliveryTag string) (models.Order, error) {
	deliveryTag = models.NormalizeDeliveryTag(deliveryTag)
	if len(req.Items) == 0 {
		return models.Order{}, fmt.Errorf("%w: o pedido precisa de ao menos um item", sales.ErrInvalid)
	}
	if req.Status != "" && req.Status != models.OrderScheduled {
		return models.Order{}, fmt.Errorf("%w: pedido novo deve estar agendado", sales.ErrInvalid)
	}

	o := models.Order{
		CustomerID:    req.CustomerID,
		DeliveryType:  models.DeliveryTypePickup,
		DeliveryFee:   decimal.Zero,
		PaymentMethod: strings.ToLower(strings.TrimSpace(req.PaymentMethod)),
		Status:        models.OrderScheduled,
		DeliveryDate:  req.DeliveryDate,
	}

	kind := strings.ToLower(strings.TrimSpace(req.DeliveryType))
	switch kind {
	case "", models.DeliveryTypePickup:
	case deliveryTag:
		o.DeliveryType = deliveryTag
		if req.DeliveryFee.IsNegative() {
			return models.Order{}, fmt.Errorf("%w: taxa de entrega não pode ser negativa", sales.ErrInvalid)
		}
		o.DeliveryFee = req.DeliveryFee
		if req.Courier != nil {
			if c := strings.TrimSpace(*req.Courier); c != "" {
				o.Courier = &c
			}
		}
	default:
		return models.Order{}, fmt.Errorf("%w: tipo de entrega deve ser %s ou %s", sales.ErrInvalid, deliveryTag, models.DeliveryTypePickup)
	}

	sum := decimal.Zero
	for _, it := range req.Items {
		if it.VariantID == 0 || it.Quantity < 1 {
			return models.Order{}, fmt.Errorf("%w: item sem variação ou quantidade", sales.ErrInvalid)
		}
		if !it.UnitPrice.IsPositive() {
			return models.Order{}, fmt.Errorf("%w: item sem preço definido", sales.ErrInvalid)
		}
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(subtotal)
		o.Items = append(o.Items, models.OrderItem{
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  subtotal,
		})
	}

	o.Total = req.Total
	if o.Total.IsZero() {
		o.Total = sum.Add(o.DeliveryFee)
	}
	if o.Total.IsNegative() {
		return models.Order{}, fmt.Errorf("%w: total não pode ser negativo", sales.ErrInvalid)
	}
	return o, nil
}

func (s *Service) Create(ctx context.Context, req models.CreateOrderRequest, actor sales.Actor) (models.Order, error) {
	o, err := build(req, s.Sales.DeliveryTag)
	if err != nil {
		return models.Order{}, err
	}

	var out models.Order
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uint, 0, len(o.Items))
		for _, it := range o.Items {
			ids = append(ids, it.VariantID)
		}
		var found int64
		if err := tx.Model(&models.Variant{}).Where("id IN ?", uniq(ids)).Count(&found).Error; err != nil {
			return err
		}
		if int(found) != len(uniq(ids)) {
			return sales.ErrVariantNotFound
		}

		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		if err := audit.WriteLog(tx, audit.LogOptions{
			UserID:      actor.UserID,
			UserName:    actor.UserName,
			EntityType:  "pedido",
			EntityID:    o.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Pedido agendado: %s", o.Total.StringFixed(2)),
			After:       o,
		}); err != nil {
			return err
		}

		var err error
		out, err = loadOrder(tx, o.ID)
		return err
	})
	return out, err
}

// UpdateStatus aplica a transição. Ao confirmar, o pedido vira venda uma única vez.
func (s *Service) UpdateStatus(ctx context.Context, id uint, to models.OrderStatus, actor sales.Actor) (models.Order, error) {
	if !ValidStatus(to) {
		return models.Order{}, fmt.Errorf("%w: status %q desconhecido", sales.ErrInvalid, to)
	}

	var out models.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o, err := loadOrder(tx, id)
		if err != nil {
			return err
		}
		if !CanTransition(o.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
		}
		before := o

		updates := map[string]any{"status": to}
		if to == models.OrderConfirmed && o.SaleID == nil {
			sale, err := s.Sales.CreateTx(tx, SaleRequest(o), actor)
			if err != nil {
				return err
			}
			updates["sale_id"] = sale.ID
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", o.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := audit.WriteLog(tx, audit.LogOptions{
			UserID:      actor.UserID,
			UserName:    actor.UserName,
			EntityType:  "pedido",
			EntityID:    o.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Pedido #%d: %s -> %s", o.ID, before.Status, to),
			Before:      map[string]any{"status": before.Status},
			After:       updates,
		}); err != nil {
			return err
		}

		out, err = loadOrder(tx, o.ID)
		return err
	})
	return out, err
}

// SaleRequest converte o pedido no corpo de POST /vendas.
func SaleRequest(o models.Order) models.CreateSaleRequest {
	req := models.CreateSaleRequest{
		Total:         decimal.NewNullDecimal(o.Total),
		PaymentMethod: o.PaymentMethod,
		DeliveryType:  o.DeliveryType,
		Courier:       o.Courier,
		CustomerID:    o.CustomerID,
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentCash
	}
	if req.DeliveryType == "" {
		req.DeliveryType = models.DeliveryTypePickup
	}
	if o.DeliveryFee.IsPositive() {
		req.DeliveryFee = decimal.NewNullDecimal(o.DeliveryFee)
	}
	for _, it := range o.Items {
		req.Items = append(req.Items, models.SaleItemInput{VariantID: it.VariantID, Quantity: it.Quantity})
	}
	return req
}

func uniq(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
