package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"realty-bot/models"
	"realty-bot/services"
)

// authenticate validates the session cookie and loads the session's
// identity into locals for downstream handlers. Returns nil when the
// request carries no valid session.
func authenticate(c *fiber.Ctx) *models.Session {
	sessionID := c.Cookies(services.SessionCookieName)
	if sessionID == "" {
		return nil
	}

	session, err := services.GetSessionByID(c.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to get session", "error", err)
		return nil
	}
	if session == nil {
		return nil
	}

	c.Locals("user_id", session.UserID)
	c.Locals("email", session.Email)
	c.Locals("role", session.Role)
	c.Locals("username", session.Username)

	// Extend session expiration on activity
	services.ExtendSession(c.Context(), sessionID)

	return session
}

// RequireAuth gates a route to any authenticated dashboard user.
func RequireAuth(c *fiber.Ctx) error {
	if authenticate(c) == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}
	return c.Next()
}

// RequireRole gates a route to specific dashboard roles.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := authenticate(c)
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		currentRole := models.UserRole(session.Role)
		for _, allowedRole := range roles {
			if currentRole == allowedRole {
				return c.Next()
			}
		}

		slog.Info("Access denied", "user_role", currentRole, "required_roles", roles)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}
