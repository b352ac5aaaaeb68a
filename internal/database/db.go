package database

import (
	"fmt"

	"nextpdv/internal/config"
	"nextpdv/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(cfg *config.Config, log *zap.Logger) error {
	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return fmt.Errorf("não foi possível conectar ao banco: %w", err)
	}
	DB = db
	log.Info("banco conectado")
	return nil
}

func Migrate(log *zap.Logger) error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Variant{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Goal{},
		&models.AuditLog{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate falhou: %w", err)
	}

	// busca por nome/código no PDV
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_produtos_nome_lower ON produtos (lower(name))")

	log.Info("migração concluída")
	return nil
}
