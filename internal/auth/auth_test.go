package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nextpdv/internal/config"
	"nextpdv/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Name: "Ana", Email: "ana@loja.com", Role: models.RoleSeller}

	tok, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, models.RoleSeller, claims.Role)

	_, err = ParseToken("outro-segredo-outro-segredo-outro", tok)
	assert.Error(t, err)
}

func newApp(cfg *config.Config, roles ...models.UserRole) *fiber.App {
	app := fiber.New()
	app.Use(JWTMiddleware(cfg))
	app.Get("/x", RequireRole(cfg, roles...), func(c *fiber.Ctx) error {
		id, name := CurrentUser(c)
		if id == nil {
			return c.SendString("anon")
		}
		return c.SendString(name)
	})
	return app
}

func TestMiddlewareDisabledPassesThrough(t *testing.T) {
	app := newApp(&config.Config{AuthEnabled: false}, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareEnabled(t *testing.T) {
	cfg := &config.Config{AuthEnabled: true, JWTSecret: testSecret}
	app := newApp(cfg, models.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer lixo")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	seller, err := GenerateToken(testSecret, &models.User{ID: 2, Name: "Bia", Role: models.RoleSeller})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+seller)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin, err := GenerateToken(testSecret, &models.User{ID: 1, Name: "Dono", Role: models.RoleAdmin})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
