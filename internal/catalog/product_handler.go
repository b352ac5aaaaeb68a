package catalog

import (
	"errors"
	"fmt"
	"strings"

	"nextpdv/internal/audit"
	"nextpdv/internal/auth"
	"nextpdv/internal/config"
	"nextpdv/internal/database"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errInUse = errors.New("variação usada em vendas ou pedidos")

// GET /produtos?busca=runner
func ListProductsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.PreloadProducts(database.DB.WithContext(c.UserContext()))

		if term := strings.ToLower(strings.TrimSpace(c.Query("busca"))); term != "" {
			like := "%" + term + "%"
			dbq = dbq.Where("lower(name) LIKE ? OR lower(code) LIKE ?", like, like)
		}

		var products []models.Product
		if err := dbq.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os produtos")
		}
		withImageURLs(cfg.PublicBaseURL, products)
		return c.JSON(products)
	}
}

// POST /produtos
func CreateProductHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.ProductInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		var p models.Product
		if err := applyProductInput(&p, body, true); err != nil {
			return err
		}
		for _, in := range body.Variants {
			v, err := validateVariant(in)
			if err != nil {
				return err
			}
			p.Variants = append(p.Variants, v)
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o produto")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "produto",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Produto cadastrado: %s (%d variações)", p.Name, len(p.Variants)),
			After:       p,
		})

		p.FullImageURL = FullImageURL(cfg.PublicBaseURL, p.ImageURL)
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /produtos/:id
func UpdateProductHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de produto inválido")
		}

		var p models.Product
		if err := database.PreloadProducts(database.DB).First(&p, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		}
		before := p

		var body models.ProductInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if err := applyProductInput(&p, body, false); err != nil {
			return err
		}

		if err := database.DB.Model(&p).Select("Name", "Code", "Price", "UnitCost", "OtherCosts", "ImageURL").Updates(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o produto")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "produto",
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Produto atualizado: %s", p.Name),
			Before:      before,
			After:       p,
		})

		p.FullImageURL = FullImageURL(cfg.PublicBaseURL, p.ImageURL)
		return c.JSON(p)
	}
}

// DELETE /produtos/:id
// Recusa com 409 se alguma variação já foi vendida ou está em pedido.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de produto inválido")
		}

		var p models.Product
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := database.PreloadProducts(tx).First(&p, id).Error; err != nil {
				return err
			}

			ids := make([]uint, 0, len(p.Variants))
			for _, v := range p.Variants {
				ids = append(ids, v.ID)
			}
			if err := ensureUnused(tx, ids); err != nil {
				return err
			}

			if err := tx.Where("product_id = ?", p.ID).Delete(&models.Variant{}).Error; err != nil {
				return err
			}
			return tx.Delete(&p).Error
		})
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Produto não encontrado")
		case errors.Is(err, errInUse):
			return fiber.NewError(fiber.StatusConflict, "Produto possui vendas ou pedidos registrados e não pode ser excluído")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível excluir o produto")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "produto",
			EntityID:    p.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Produto excluído: %s", p.Name),
			Before:      p,
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ensureUnused(tx *gorm.DB, variantIDs []uint) error {
	if len(variantIDs) == 0 {
		return nil
	}

	var n int64
	if err := tx.Model(&models.SaleItem{}).Where("variant_id IN ?", variantIDs).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errInUse
	}
	if err := tx.Model(&models.OrderItem{}).Where("variant_id IN ?", variantIDs).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return errInUse
	}
	return nil
}
