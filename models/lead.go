package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"realty-bot/nlp"
)

// Lead qualification statuses.
const (
	LeadStatusNew       = "new"
	LeadStatusEngaged   = "engaged"
	LeadStatusQualified = "qualified"
	LeadStatusClosed    = "closed"
)

// Lead is a prospect talking to the assistant. Info carries the intent
// slots confirmed so far; slots already stored here always win over
// fresh extraction from the next message.
type Lead struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LeadID       string             `bson:"lead_id" json:"lead_id"` // External chat/channel ID
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Language     string             `bson:"language" json:"language"` // Last detected language tag
	Info         nlp.Intent         `bson:"info" json:"info"`
	Status       string             `bson:"status" json:"status"`
	MessageCount int                `bson:"message_count" json:"message_count"`
	LastMessage  string             `bson:"last_message,omitempty" json:"last_message,omitempty"`
	FirstSeen    time.Time          `bson:"first_seen" json:"first_seen"`
	LastSeen     time.Time          `bson:"last_seen" json:"last_seen"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsQualified reports whether the minimum qualification slots are
// filled: where, what and for how much.
func (l *Lead) IsQualified() bool {
	return l.Info.Location != "" && l.Info.PropertyType != "" && l.Info.Budget != ""
}
