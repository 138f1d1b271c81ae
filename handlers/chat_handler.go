package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"realty-bot/config"
	"realty-bot/services"
)

type ChatRequest struct {
	LeadID  string `json:"lead_id"`
	Message string `json:"message" validate:"required"`
}

// HandleChat runs one inbound message through the qualification
// pipeline and returns the normalized reply. A missing lead_id starts
// a fresh conversation.
func HandleChat(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ChatRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		}

		if req.LeadID == "" {
			req.LeadID = uuid.New().String()
		}

		result, err := services.ProcessIncomingMessage(c.Context(), cfg, req.LeadID, req.Message)
		if err != nil {
			slog.Error("Failed to process chat message", "error", err, "leadID", req.LeadID)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to process message",
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"lead_id":  req.LeadID,
			"reply":    result.Reply,
			"language": result.Language,
			"intent":   result.Intent,
			"ending":   result.Ending,
		})
	}
}
