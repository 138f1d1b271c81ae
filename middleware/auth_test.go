package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-bot/models"
)

func okHandler(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func TestRequireAuthMissingCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", RequireAuth, okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleMissingCookie(t *testing.T) {
	app := fiber.New()
	app.Post("/admin", RequireRole(models.RoleAdmin), okHandler)

	resp, err := app.Test(httptest.NewRequest("POST", "/admin", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
