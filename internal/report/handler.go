package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"nextpdv/internal/analytics"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SalesSource interface {
	Sales(ctx context.Context) ([]models.Sale, error)
}

// GET /vendas/exportar?periodo=mes
func ExportSalesHandler(src SalesSource, agg *analytics.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period, err := analytics.ParsePeriod(c.Query("periodo", string(analytics.PeriodMonth)))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		all, err := src.Sales(c.UserContext())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar as vendas")
		}
		filtered := agg.Filter(all, period)
		snap := agg.Compute(all, period, false)

		var buf bytes.Buffer
		if err := WriteSales(&buf, filtered, snap); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar a planilha")
		}

		name := fmt.Sprintf("vendas-%s-%s.xlsx", period, time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
		return c.Send(buf.Bytes())
	}
}
