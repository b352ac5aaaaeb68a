package dashboard

import (
	"context"

	"nextpdv/internal/analytics"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type Store interface {
	Sales(ctx context.Context) ([]models.Sale, error)
	Products(ctx context.Context) ([]models.Product, error)
}

type Response struct {
	analytics.Snapshot
	Critical []analytics.StockAlert `json:"produtosCriticos"`
	LowStock []analytics.StockAlert `json:"estoqueBaixo"`
}

// GET /dashboard?periodo=7dias&comparar=true
func Handler(store Store, agg *analytics.Aggregator, stock analytics.StockPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period, err := analytics.ParsePeriod(c.Query("periodo", string(analytics.PeriodDay)))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		compare := c.QueryBool("comparar")

		var (
			sales    []models.Sale
			products []models.Product
		)
		g, ctx := errgroup.WithContext(c.UserContext())
		g.Go(func() error {
			var err error
			sales, err = store.Sales(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			products, err = store.Products(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar os dados do dashboard")
		}

		return c.JSON(Response{
			Snapshot: agg.Compute(sales, period, compare),
			Critical: stock.Critical(products),
			LowStock: stock.LowStock(products),
		})
	}
}
