package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realty-bot/models"
	"realty-bot/nlp"
)

// conversationWindow is how many trailing turns are loaded for history
// mining and for the chat-completion context.
const conversationWindow = 10

// GetRecentTurns loads the most recent conversation turns for a lead
// in chronological order.
func GetRecentTurns(ctx context.Context, leadID string) ([]nlp.Turn, error) {
	messages, err := GetRecentMessages(ctx, leadID, conversationWindow)
	if err != nil {
		return nil, err
	}

	turns := make([]nlp.Turn, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.IsBot {
			role = "assistant"
		}
		turns = append(turns, nlp.Turn{Role: role, Text: msg.Text})
	}
	return turns, nil
}

// GetRecentMessages returns the last n stored messages for a lead,
// oldest first.
func GetRecentMessages(ctx context.Context, leadID string, n int64) ([]models.Message, error) {
	collection := database.Collection("messages")

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(n)

	cursor, err := collection.Find(ctx, bson.M{"lead_id": leadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	// Cursor returned newest first; flip to chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// GetConversation returns the full message history for a lead, oldest
// first, for the dashboard conversation view.
func GetConversation(ctx context.Context, leadID string, limit int64) ([]models.Message, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	return GetRecentMessages(ctx, leadID, limit)
}
