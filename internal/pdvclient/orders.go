package pdvclient

import (
	"context"
	"fmt"
	"net/http"

	"nextpdv/internal/models"
)

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := c.do(ctx, http.MethodGet, "/pedidos", nil, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pedidos/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, in models.CreateOrderRequest) (models.Order, error) {
	var out models.OrderCreated
	err := c.do(ctx, http.MethodPost, "/pedidos", in, &out)
	return out.Order, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (models.Order, error) {
	var out models.Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pedidos/%d/status", id), models.OrderStatusRequest{Status: status}, &out)
	return out, err
}
