package goals

import (
	"context"
	"errors"
	"strings"

	"nextpdv/internal/analytics"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Store interface {
	Goals(ctx context.Context) ([]models.Goal, error)
	Sales(ctx context.Context) ([]models.Sale, error)
	CreateGoal(ctx context.Context, g *models.Goal) error
	DeleteGoal(ctx context.Context, id uint) error
}

func Validate(in models.GoalInput) (models.Goal, error) {
	g := models.Goal{
		Title:  strings.TrimSpace(in.Title),
		Target: in.Target,
		Type:   in.Type,
		Period: in.Period,
	}
	if g.Period == "" {
		g.Period = models.GoalMonth
	}

	switch {
	case g.Title == "":
		return g, fiber.NewError(fiber.StatusBadRequest, "Título é obrigatório")
	case !g.Target.IsPositive():
		return g, fiber.NewError(fiber.StatusBadRequest, "Valor da meta deve ser maior que zero")
	case !models.ValidGoalType(g.Type):
		return g, fiber.NewError(fiber.StatusBadRequest, "Tipo deve ser vendas, lucro, produtosVendidos ou clientes")
	case !models.ValidGoalPeriod(g.Period):
		return g, fiber.NewError(fiber.StatusBadRequest, "Período deve ser dia, semana ou mes")
	}
	return g, nil
}

// GET /metas (com valorAtual e progresso calculados das vendas)
func ListGoalsHandler(store Store, agg *analytics.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		list, err := store.Goals(ctx)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as metas")
		}
		if len(list) == 0 {
			return c.JSON([]models.Goal{})
		}

		sales, err := store.Sales(ctx)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as vendas")
		}
		return c.JSON(agg.GoalProgress(list, sales))
	}
}

// POST /metas
func CreateGoalHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.GoalInput
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		g, err := Validate(body)
		if err != nil {
			return err
		}
		if err := store.CreateGoal(c.UserContext(), &g); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar a meta")
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	}
}

// DELETE /metas/:id
func DeleteGoalHandler(store Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de meta inválido")
		}

		err = store.DeleteGoal(c.UserContext(), uint(id))
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Meta não encontrada")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível excluir a meta")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
