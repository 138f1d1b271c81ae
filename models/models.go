package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message represents one chat turn, user or bot.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID    string             `bson:"lead_id" json:"lead_id"`
	Role      string             `bson:"role" json:"role"` // "user" or "assistant"
	Text      string             `bson:"text" json:"text"`
	Language  string             `bson:"language,omitempty" json:"language,omitempty"`
	IsBot     bool               `bson:"is_bot" json:"is_bot"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Reply is the assistant's processed answer for one inbound message,
// kept for auditing what the pipeline produced.
type Reply struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID    string             `bson:"lead_id" json:"lead_id"`
	Original  string             `bson:"original" json:"original"` // Raw model output
	Response  string             `bson:"response" json:"response"` // Normalized text sent to the lead
	Language  string             `bson:"language" json:"language"`
	Query     string             `bson:"query,omitempty" json:"query,omitempty"` // Enhanced search query, if any
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
