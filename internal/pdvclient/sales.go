package pdvclient

import (
	"context"
	"fmt"
	"net/http"

	"nextpdv/internal/models"
)

func (c *Client) ListSales(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	err := c.do(ctx, http.MethodGet, "/vendas", nil, &out)
	return out, err
}

func (c *Client) CreateSale(ctx context.Context, in models.CreateSaleRequest) (models.Sale, error) {
	var out models.Sale
	err := c.do(ctx, http.MethodPost, "/vendas", in, &out)
	return out, err
}

func (c *Client) ExchangeItem(ctx context.Context, in models.ExchangeRequest) (models.Sale, error) {
	var out models.ExchangeResponse
	err := c.do(ctx, http.MethodPost, "/vendas/troca", in, &out)
	return out.Sale, err
}

func (c *Client) DeleteSale(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/vendas/%d", id), nil, nil)
}
