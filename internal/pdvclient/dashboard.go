package pdvclient

import (
	"context"

	"nextpdv/internal/models"

	"golang.org/x/sync/errgroup"
)

type DashboardData struct {
	Sales    []models.Sale
	Products []models.Product
}

// LoadDashboardData busca /vendas e /produtos em paralelo. Qualquer falha cancela a outra.
func (c *Client) LoadDashboardData(ctx context.Context) (DashboardData, error) {
	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.Sales, err = c.ListSales(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Products, err = c.ListProducts(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}
	return data, nil
}
