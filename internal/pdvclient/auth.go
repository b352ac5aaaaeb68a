package pdvclient

import (
	"context"
	"net/http"

	"nextpdv/internal/models"
)

// Login guarda o token no cliente para as chamadas seguintes.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}
