package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"realty-bot/models"
	"realty-bot/services"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	user, err := services.GetUserByUsername(c.Context(), req.Username)
	if err != nil {
		slog.Error("Failed to get user", "error", err, "username", req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	if user == nil || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if !services.CheckPasswordHash(req.Password, user.PasswordHash) {
		slog.Info("Invalid password attempt", "username", req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	session, err := services.CreateSession(
		c.Context(),
		user.UserID,
		user.Username,
		user.Email,
		string(user.Role),
		c.IP(),
		c.Get("User-Agent"),
	)
	if err != nil {
		slog.Error("Failed to create session", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	sameSite, secure := cookiePolicy(c)
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    session.SessionID,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/",
	})

	if err := services.UpdateLastLogin(c.Context(), user.UserID); err != nil {
		slog.Error("Failed to update last login", "error", err)
	}

	slog.Info("User logged in", "userID", user.UserID, "username", user.Username)

	return c.Status(fiber.StatusOK).JSON(LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}

func Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(services.SessionCookieName)
	if sessionID == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Logged out successfully",
		})
	}

	session, _ := services.GetSessionByID(c.Context(), sessionID)

	if err := services.DestroySession(c.Context(), sessionID); err != nil {
		slog.Error("Failed to destroy session", "error", err)
	}

	sameSite, secure := cookiePolicy(c)
	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Path:     "/",
	})

	if session != nil {
		slog.Info("User logged out", "userID", session.UserID)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user backing the session
// cookie. The auth middleware has already validated the session.
func GetCurrentUser(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	if username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	user, err := services.GetUserByUsername(c.Context(), username)
	if err != nil {
		slog.Error("Failed to get current user", "error", err, "username", username)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load user",
		})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}

// cookiePolicy picks SameSite and Secure for the session cookie. Tunnel
// and cross-origin setups need SameSite=None, which requires Secure.
func cookiePolicy(c *fiber.Ctx) (sameSite string, secure bool) {
	origin := c.Get("Origin", "")
	isTunnel := strings.Contains(origin, "ngrok") || strings.Contains(c.Hostname(), "ngrok")
	isCrossOrigin := origin != "" &&
		!strings.HasPrefix(origin, "http://"+c.Hostname()) &&
		!strings.HasPrefix(origin, "https://"+c.Hostname())

	if isTunnel || isCrossOrigin {
		return "None", true
	}
	return "Lax", false
}
