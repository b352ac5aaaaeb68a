package database

import (
	"context"

	"nextpdv/internal/models"

	"gorm.io/gorm"
)

// PreloadSales carrega itens -> variação -> produto e o cliente, como GET /vendas devolve.
func PreloadSales(db *gorm.DB) *gorm.DB {
	return db.Preload("Items.Variant.Product").Preload("Customer")
}

func PreloadProducts(db *gorm.DB) *gorm.DB {
	return db.Preload("Variants", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id asc")
	})
}

// Store lê vendas e produtos completos para o dashboard e metas.
type Store struct {
	DB *gorm.DB
}

func (s Store) Sales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	err := PreloadSales(s.DB.WithContext(ctx)).Order("date desc").Find(&sales).Error
	return sales, err
}

func (s Store) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := PreloadProducts(s.DB.WithContext(ctx)).Order("name asc").Find(&products).Error
	return products, err
}

func (s Store) Goals(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.DB.WithContext(ctx).Order("id asc").Find(&goals).Error
	return goals, err
}

func (s Store) CreateGoal(ctx context.Context, g *models.Goal) error {
	return s.DB.WithContext(ctx).Create(g).Error
}

// DeleteGoal devolve gorm.ErrRecordNotFound quando nada foi removido.
func (s Store) DeleteGoal(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Goal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
