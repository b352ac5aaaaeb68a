package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nextpdv/internal/audit"
	"nextpdv/internal/database"
	"nextpdv/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Actor struct {
	UserID   *uint
	UserName string
}

type Service struct {
	DB          *gorm.DB
	DeliveryTag string
	Now         func() time.Time
}

func NewService(db *gorm.DB, deliveryTag string) *Service {
	return &Service{DB: db, DeliveryTag: models.NormalizeDeliveryTag(deliveryTag), Now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]models.Sale, error) {
	return database.Store{DB: s.DB}.Sales(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (models.Sale, error) {
	return loadSale(s.DB.WithContext(ctx), id)
}

func (s *Service) Create(ctx context.Context, req models.CreateSaleRequest, actor Actor) (models.Sale, error) {
	var sale models.Sale
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		sale, err = s.CreateTx(tx, req, actor)
		return err
	})
	return sale, err
}

// CreateTx baixa o estoque e grava a venda dentro de tx. Usado também na confirmação de pedidos.
func (s *Service) CreateTx(tx *gorm.DB, req models.CreateSaleRequest, actor Actor) (models.Sale, error) {
	d, err := normalize(req, s.DeliveryTag)
	if err != nil {
		return models.Sale{}, err
	}

	if d.customerID != nil {
		var n int64
		if err := tx.Model(&models.Customer{}).Where("id = ?", *d.customerID).Count(&n).Error; err != nil {
			return models.Sale{}, err
		}
		if n == 0 {
			return models.Sale{}, ErrCustomerNotFound
		}
	}

	variants := make(map[uint]models.Variant, len(d.order))
	for _, id := range d.order {
		v, err := lockVariant(tx, id)
		if err != nil {
			return models.Sale{}, err
		}
		want := d.quantities[id]
		if v.Stock < want {
			return models.Sale{}, fmt.Errorf("%w: %s numeração %s tem %d, pedido %d",
				ErrInsufficientStock, productName(v), v.Size, v.Stock, want)
		}
		if err := tx.Model(&models.Variant{}).Where("id = ?", id).
			Update("stock", gorm.Expr("stock - ?", want)).Error; err != nil {
			return models.Sale{}, err
		}
		variants[id] = v
	}

	sale := models.Sale{
		Date:          s.now(),
		Total:         d.resolveTotal(variants),
		PaymentMethod: d.paymentMethod,
		DeliveryType:  d.deliveryType,
		DeliveryFee:   d.deliveryFee,
		Courier:       d.courier,
		CustomerID:    d.customerID,
	}
	for _, id := range d.order {
		sale.Items = append(sale.Items, models.SaleItem{VariantID: id, Quantity: d.quantities[id]})
	}

	if err := tx.Create(&sale).Error; err != nil {
		return models.Sale{}, err
	}

	if err := audit.WriteLog(tx, audit.LogOptions{
		UserID:      actor.UserID,
		UserName:    actor.UserName,
		EntityType:  "venda",
		EntityID:    sale.ID,
		Action:      models.AuditActionCreate,
		Description: fmt.Sprintf("Venda registrada: %s (%d itens)", sale.Total.StringFixed(2), len(sale.Items)),
		After:       sale,
	}); err != nil {
		return models.Sale{}, err
	}

	return loadSale(tx, sale.ID)
}

// Exchange troca a variação de um item: devolve o estoque da antiga e baixa da nova.
// O total da venda não muda.
func (s *Service) Exchange(ctx context.Context, req models.ExchangeRequest, actor Actor) (models.Sale, error) {
	var out models.Sale
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := loadSale(tx, req.SaleID)
		if err != nil {
			return err
		}

		var item *models.SaleItem
		for i := range sale.Items {
			if sale.Items[i].ID == req.ItemID {
				item = &sale.Items[i]
				break
			}
		}
		if item == nil {
			return ErrItemNotFound
		}
		before := *item

		current, err := lockVariant(tx, item.VariantID)
		if err != nil {
			return err
		}
		if req.NewVariantID == item.VariantID {
			return ErrSameVariant
		}
		next, err := lockVariant(tx, req.NewVariantID)
		if err != nil {
			return err
		}
		if err := checkExchange(req, *item, current, next); err != nil {
			return err
		}

		if err := tx.Model(&models.Variant{}).Where("id = ?", current.ID).
			Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Variant{}).Where("id = ?", next.ID).
			Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SaleItem{}).Where("id = ?", item.ID).
			Update("variant_id", next.ID).Error; err != nil {
			return err
		}

		if err := audit.WriteLog(tx, audit.LogOptions{
			UserID:     actor.UserID,
			UserName:   actor.UserName,
			EntityType: "venda",
			EntityID:   sale.ID,
			Action:     models.AuditActionExchange,
			Description: fmt.Sprintf("Troca no item %d: %s %s -> %s %s",
				item.ID, productName(current), current.Size, productName(next), next.Size),
			Before: before,
			After:  map[string]any{"itemId": item.ID, "variacaoProdutoId": next.ID, "quantidade": item.Quantity},
		}); err != nil {
			return err
		}

		out, err = loadSale(tx, sale.ID)
		return err
	})
	return out, err
}

// Delete remove a venda e devolve as quantidades ao estoque.
func (s *Service) Delete(ctx context.Context, id uint, actor Actor) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := loadSale(tx, id)
		if err != nil {
			return err
		}

		for _, it := range sale.Items {
			if err := tx.Model(&models.Variant{}).Where("id = ?", it.VariantID).
				Update("stock", gorm.Expr("stock + ?", it.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Order{}).Where("sale_id = ?", sale.ID).
			Update("sale_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Sale{}, sale.ID).Error; err != nil {
			return err
		}

		return audit.WriteLog(tx, audit.LogOptions{
			UserID:      actor.UserID,
			UserName:    actor.UserName,
			EntityType:  "venda",
			EntityID:    sale.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Venda excluída: %s, estoque devolvido", sale.Total.StringFixed(2)),
			Before:      sale,
		})
	})
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func loadSale(db *gorm.DB, id uint) (models.Sale, error) {
	var sale models.Sale
	err := database.PreloadSales(db).First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sale, ErrSaleNotFound
	}
	return sale, err
}

func lockVariant(tx *gorm.DB, id uint) (models.Variant, error) {
	var v models.Variant
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Product").First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return v, fmt.Errorf("%w: id %d", ErrVariantNotFound, id)
	}
	return v, err
}

func productName(v models.Variant) string {
	if v.Product == nil {
		return fmt.Sprintf("variação %d", v.ID)
	}
	return v.Product.Name
}
