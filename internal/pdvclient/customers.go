package pdvclient

import (
	"context"
	"fmt"
	"net/http"

	"nextpdv/internal/models"
)

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	err := c.do(ctx, http.MethodGet, "/clientes", nil, &out)
	return out, err
}

func (c *Client) CreateCustomer(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	var out models.Customer
	err := c.do(ctx, http.MethodPost, "/clientes", in, &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id uint, in models.CustomerInput) (models.Customer, error) {
	var out models.Customer
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d", id), in, &out)
	return out, err
}
