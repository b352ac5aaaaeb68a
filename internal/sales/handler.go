package sales

import (
	"time"

	"nextpdv/internal/analytics"
	"nextpdv/internal/auth"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func actorFrom(c *fiber.Ctx) Actor {
	id, name := auth.CurrentUser(c)
	return Actor{UserID: id, UserName: name}
}

// GET /vendas?periodo=mes&busca=pix&inicio=2024-03-01&fim=2024-03-31
func ListSalesHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar as vendas")
		}

		if p := c.Query("periodo"); p != "" {
			period, err := analytics.ParsePeriod(p)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			agg := analytics.NewAggregator(svc.DeliveryTag)
			agg.Now = svc.now
			list = agg.Filter(list, period)
		}

		filter := analytics.HistoryFilter{Term: c.Query("busca")}
		if filter.Start, err = parseDate(c.Query("inicio")); err != nil {
			return err
		}
		if filter.End, err = parseDate(c.Query("fim")); err != nil {
			return err
		}
		if filter.Term != "" || filter.Start != nil || filter.End != nil {
			list = analytics.FilterHistory(list, filter)
		}

		if list == nil {
			list = []models.Sale{}
		}
		return c.JSON(list)
	}
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Data deve estar no formato AAAA-MM-DD")
	}
	return &t, nil
}

// POST /vendas
func CreateSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		sale, err := svc.Create(c.UserContext(), body, actorFrom(c))
		if err != nil {
			return HTTPError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(sale)
	}
}

// POST /vendas/troca
func ExchangeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.ExchangeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}
		if body.SaleID == 0 || body.ItemID == 0 || body.NewVariantID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "vendaId, itemId e novaVariacaoId são obrigatórios")
		}

		sale, err := svc.Exchange(c.UserContext(), body, actorFrom(c))
		if err != nil {
			return HTTPError(err)
		}
		return c.JSON(models.ExchangeResponse{Sale: sale})
	}
}

// DELETE /vendas/:id
func DeleteSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de venda inválido")
		}

		if err := svc.Delete(c.UserContext(), uint(id), actorFrom(c)); err != nil {
			return HTTPError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
