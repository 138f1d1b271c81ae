package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"realty-bot/models"
	"realty-bot/services"
)

type CreateUserRequest struct {
	Username string          `json:"username" validate:"required"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role"`
}

// CreateUser registers a new dashboard agent. Admin only; the role
// gate sits in the route group.
func CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username and password are required",
		})
	}

	existing, err := services.GetUserByUsername(c.Context(), req.Username)
	if err != nil {
		slog.Error("Failed to check username", "error", err, "username", req.Username)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already taken",
		})
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
	}
	if err := services.CreateUser(c.Context(), user, req.Password); err != nil {
		slog.Error("Failed to create user", "error", err, "username", req.Username)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	slog.Info("User created", "userID", user.UserID, "username", user.Username, "role", user.Role)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}
