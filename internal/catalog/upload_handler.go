package catalog

import (
	"os"
	"path/filepath"

	"nextpdv/internal/config"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

// POST /produtos/upload (multipart, campo "imagem"). Servido depois em /uploads.
func UploadImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("imagem")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Arquivo de imagem não enviado")
		}
		if fileHeader.Size > maxImageSize {
			return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Imagem maior que 5 MB")
		}

		ext, err := imageExt(fileHeader.Filename)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.UploadPath, 0755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Pasta de uploads indisponível")
		}

		name := uuid.NewString() + ext
		if err := c.SaveFile(fileHeader, filepath.Join(cfg.UploadPath, name)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível salvar a imagem")
		}

		return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{ImageURL: "/uploads/" + name})
	}
}
