package webhooks

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"realty-bot/config"
	"realty-bot/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook event handler
	webhook.Post("/", handleWebhookEvent(cfg))
}

// verifyWebhook handles the platform's webhook verification handshake
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent processes incoming webhook events
func handleWebhookEvent(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body WebhookEvent
		if err := c.BodyParser(&body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Only process page events
		if body.Object != "page" {
			return c.SendStatus(fiber.StatusNotFound)
		}

		// Process webhook asynchronously; the platform expects an
		// immediate acknowledgement.
		go processWebhookEvent(cfg, body)

		return c.SendString("EVENT_RECEIVED")
	}
}

// processWebhookEvent runs each inbound message through the
// qualification pipeline in a separate goroutine.
func processWebhookEvent(cfg *config.Config, body WebhookEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	for _, entry := range body.Entry {
		for _, messaging := range entry.Messaging {
			msg := messaging.Message
			if msg == nil || msg.IsEcho {
				continue
			}

			text := strings.TrimSpace(msg.Text)
			if text == "" && msg.QuickReply != nil {
				text = strings.TrimSpace(msg.QuickReply.Payload)
			}
			if text == "" {
				slog.Info("Skipping webhook message without text",
					"senderID", messaging.Sender.ID,
					"attachments", len(msg.Attachments))
				continue
			}

			if _, err := services.ProcessIncomingMessage(ctx, cfg, messaging.Sender.ID, text); err != nil {
				slog.Error("Failed to process webhook message",
					"error", err,
					"senderID", messaging.Sender.ID,
					"pageID", entry.ID)
			}
		}
	}
}
