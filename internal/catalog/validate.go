package catalog

import (
	"path/filepath"
	"strings"

	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

func imageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", fiber.NewError(fiber.StatusBadRequest, "Formato de imagem não suportado (jpg, png, webp, gif)")
	}
	return ext, nil
}

// FullImageURL monta imagemUrlCompleta; URLs absolutas passam direto.
func FullImageURL(publicBaseURL, imageURL string) string {
	if imageURL == "" {
		return ""
	}
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	if !strings.HasPrefix(imageURL, "/") {
		imageURL = "/" + imageURL
	}
	return publicBaseURL + imageURL
}

func withImageURLs(publicBaseURL string, products []models.Product) {
	for i := range products {
		products[i].FullImageURL = FullImageURL(publicBaseURL, products[i].ImageURL)
	}
}

func validateVariant(in models.VariantInput) (models.Variant, error) {
	size := models.Size(strings.TrimSpace(string(in.Size)))
	if size == "" {
		return models.Variant{}, fiber.NewError(fiber.StatusBadRequest, "Numeração é obrigatória")
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return models.Variant{}, fiber.NewError(fiber.StatusBadRequest, "Estoque não pode ser negativo")
	}
	return models.Variant{Size: size, Stock: stock}, nil
}

// applyProductInput copia os campos presentes. Em criação o nome é obrigatório.
func applyProductInput(p *models.Product, in models.ProductInput, creating bool) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
		}
		p.Name = name
	} else if creating {
		return fiber.NewError(fiber.StatusBadRequest, "Nome é obrigatório")
	}

	if in.Code != nil {
		p.Code = strings.TrimSpace(*in.Code)
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}

	if in.Price.Valid {
		if in.Price.Decimal.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Preço não pode ser negativo")
		}
		p.Price = in.Price.Decimal
	}
	if in.UnitCost.Valid {
		if in.UnitCost.Decimal.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Custo unitário não pode ser negativo")
		}
		p.UnitCost = in.UnitCost.Decimal
	}
	if in.OtherCosts.Valid {
		if in.OtherCosts.Decimal.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Outros custos não podem ser negativos")
		}
		p.OtherCosts = in.OtherCosts.Decimal
	}
	return nil
}
