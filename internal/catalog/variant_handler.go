package catalog

import (
	"errors"
	"fmt"

	"nextpdv/internal/audit"
	"nextpdv/internal/auth"
	"nextpdv/internal/database"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /produtos/:id/variacoes
func AddVariantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de produto inválido")
		}

		var p models.Product
		if err := database.DB.First(&p, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}

		var body models.VariantInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		v, err := validateVariant(body)
		if err != nil {
			return err
		}
		v.ProductID = p.ID

		taken, err := sizeTaken(database.DB, p.ID, v.Size)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível verificar a numeração")
		}
		if taken {
			return fiber.NewError(fiber.StatusConflict, fmt.Sprintf("Numeração %s já cadastrada para este produto", v.Size))
		}

		if err := database.DB.Create(&v).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível adicionar a variação")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "variacao",
			EntityID:    v.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Variação %s adicionada a %s", v.Size, p.Name),
			After:       v,
		})

		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

func sizeTaken(db *gorm.DB, productID uint, size models.Size) (bool, error) {
	var n int64
	err := db.Model(&models.Variant{}).
		Where("product_id = ? AND size = ?", productID, size).
		Count(&n).Error
	return n > 0, err
}

// PATCH /produtos/variacoes/:id
func UpdateVariantStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de variação inválido")
		}

		var body models.StockUpdate
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if body.Stock == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Estoque é obrigatório")
		}
		if *body.Stock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Estoque não pode ser negativo")
		}

		var v models.Variant
		if err := database.DB.First(&v, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Variação não encontrada")
		}
		before := v

		if err := database.DB.Model(&v).Update("stock", *body.Stock).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o estoque")
		}
		v.Stock = *body.Stock

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "variacao",
			EntityID:    v.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Estoque da numeração %s: %d -> %d", v.Size, before.Stock, v.Stock),
			Before:      before,
			After:       v,
		})

		return c.JSON(v)
	}
}

// DELETE /produtos/variacoes/:id
func DeleteVariantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de variação inválido")
		}

		var v models.Variant
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&v, id).Error; err != nil {
				return err
			}
			if err := ensureUnused(tx, []uint{v.ID}); err != nil {
				return err
			}
			return tx.Delete(&v).Error
		})
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Variação não encontrada")
		case errors.Is(err, errInUse):
			return fiber.NewError(fiber.StatusConflict, "Variação possui vendas ou pedidos registrados e não pode ser excluída")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível excluir a variação")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "variacao",
			EntityID:    v.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Variação %s excluída", v.Size),
			Before:      v,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
