package pdvclient

import (
	"context"
	"net/http"

	"nextpdv/internal/models"
)

func (c *Client) ListGoals(ctx context.Context) ([]models.Goal, error) {
	var out []models.Goal
	err := c.do(ctx, http.MethodGet, "/metas", nil, &out)
	return out, err
}

func (c *Client) CreateGoal(ctx context.Context, in models.GoalInput) (models.Goal, error) {
	var out models.Goal
	err := c.do(ctx, http.MethodPost, "/metas", in, &out)
	return out, err
}
