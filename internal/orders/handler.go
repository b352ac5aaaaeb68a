package orders

import (
	"errors"
	"time"

	"nextpdv/internal/auth"
	"nextpdv/internal/models"
	"nextpdv/internal/sales"

	"github.com/gofiber/fiber/v2"
)

func actorFrom(c *fiber.Ctx) sales.Actor {
	id, name := auth.CurrentUser(c)
	return sales.Actor{UserID: id, UserName: name}
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidTransition):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}
	return sales.HTTPError(err)
}

// GET /pedidos (?agrupar=1 devolve hoje/futuros/semData/atrasados)
func ListOrdersHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os pedidos")
		}
		if c.QueryBool("agrupar") {
			return c.JSON(Group(list, time.Now()))
		}
		if list == nil {
			list = []models.Order{}
		}
		return c.JSON(list)
	}
}

// GET /pedidos/:id
func GetOrderHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de pedido inválido")
		}
		o, err := svc.Get(c.UserContext(), uint(id))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(o)
	}
}

// POST /pedidos
func CreateOrderHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		o, err := svc.Create(c.UserContext(), body, actorFrom(c))
		if err != nil {
			return httpError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(models.OrderCreated{Order: o})
	}
}

// PUT /pedidos/:id/status
func UpdateStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ID de pedido inválido")
		}

		var body models.OrderStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados inválidos")
		}

		o, err := svc.UpdateStatus(c.UserContext(), uint(id), body.Status, actorFrom(c))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(o)
	}
}
