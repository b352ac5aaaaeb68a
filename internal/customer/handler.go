package customer

import (
	"fmt"
	"strings"
	"unicode"

	"nextpdv/internal/audit"
	"nextpdv/internal/auth"
	"nextpdv/internal/database"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /clientes?busca=ana
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Customer{})

		if term := strings.ToLower(strings.TrimSpace(c.Query("busca"))); term != "" {
			like := "%" + term + "%"
			dbq = dbq.Where("lower(name) LIKE ? OR phone LIKE ?", like, like)
		}

		var customers []models.Customer
		if err := dbq.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os clientes")
		}
		return c.JSON(customers)
	}
}

// POST /clientes
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.CustomerInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		var cu models.Customer
		if err := Apply(&cu, body, true); err != nil {
			return err
		}

		if err := database.DB.Create(&cu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível cadastrar o cliente")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "cliente",
			EntityID:    cu.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Cliente cadastrado: %s", cu.Name),
			After:       cu,
		})

		return c.Status(fiber.StatusCreated).JSON(cu)
	}
}

// PUT /clientes/:id (parcial: só os campos enviados mudam)
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de cliente inválido")
		}

		var cu models.Customer
		if err := database.DB.First(&cu, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Cliente não encontrado")
		}
		before := cu

		var body models.CustomerInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if err := Apply(&cu, body, false); err != nil {
			return err
		}

		if err := database.DB.Save(&cu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o cliente")
		}

		userID, userName := auth.CurrentUser(c)
		_ = audit.WriteLog(database.DB, audit.LogOptions{
			UserID:      userID,
			UserName:    userName,
			EntityType:  "cliente",
			EntityID:    cu.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Cliente atualizado: %s", cu.Name),
			Before:      before,
			After:       cu,
		})

		return c.JSON(cu)
	}
}

// Apply copia os campos presentes em in. Nome é obrigatório na criação.
func Apply(cu *models.Customer, in models.CustomerInput, creating bool) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome não pode ser vazio")
		}
		cu.Name = name
	} else if creating {
		return fiber.NewError(fiber.StatusBadRequest, "Nome é obrigatório")
	}

	if in.Phone != nil {
		cu.Phone = digits(*in.Phone)
	}
	set(&cu.Address, in.Address)
	set(&cu.Neighborhood, in.Neighborhood)
	set(&cu.City, in.City)
	if in.State != nil {
		state := strings.ToUpper(strings.TrimSpace(*in.State))
		if len(state) > 2 {
			return fiber.NewError(fiber.StatusBadRequest, "Estado deve ser a sigla (ex: SP)")
		}
		cu.State = state
	}
	if in.ZipCode != nil {
		cu.ZipCode = digits(*in.ZipCode)
	}
	set(&cu.Notes, in.Notes)
	return nil
}

// telefone e CEP são guardados só com dígitos
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
