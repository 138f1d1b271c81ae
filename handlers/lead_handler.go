package handlers

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"realty-bot/services"
)

// GetLeads lists leads for the dashboard, optionally filtered by
// qualification status.
func GetLeads(c *fiber.Ctx) error {
	status := c.Query("status")
	limit := queryInt64(c, "limit", 50)
	offset := queryInt64(c, "offset", 0)

	leads, err := services.GetLeads(c.Context(), status, limit, offset)
	if err != nil {
		slog.Error("Failed to list leads", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list leads",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"leads": leads,
		"count": len(leads),
	})
}

// SearchLeads matches the dashboard search box term against lead
// names, locations and property types.
func SearchLeads(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter 'q' is required",
		})
	}

	leads, err := services.SearchLeads(c.Context(), term, queryInt64(c, "limit", 50))
	if err != nil {
		slog.Error("Failed to search leads", "error", err, "term", term)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to search leads",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"leads": leads,
		"count": len(leads),
	})
}

// GetLead returns one lead with its conversation history.
func GetLead(c *fiber.Ctx) error {
	leadID := c.Params("leadID")
	if leadID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Lead ID is required",
		})
	}

	lead, err := services.GetLead(c.Context(), leadID)
	if err != nil {
		slog.Error("Failed to get lead", "error", err, "leadID", leadID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get lead",
		})
	}
	if lead == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}

	messages, err := services.GetConversation(c.Context(), leadID, queryInt64(c, "limit", 200))
	if err != nil {
		slog.Error("Failed to get conversation", "error", err, "leadID", leadID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get conversation",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"lead":     lead,
		"messages": messages,
	})
}

// GetLeadStats aggregates per-status lead counts for the dashboard
// header.
func GetLeadStats(c *fiber.Ctx) error {
	stats, err := services.GetLeadStats(c.Context())
	if err != nil {
		slog.Error("Failed to get lead stats", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get lead stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func queryInt64(c *fiber.Ctx, key string, def int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return def
	}
	return n
}
