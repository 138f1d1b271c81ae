package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realty-bot/models"
	"realty-bot/nlp"
)

// GetLead fetches a lead by its external chat ID. A missing lead is
// not an error; callers get nil.
func GetLead(ctx context.Context, leadID string) (*models.Lead, error) {
	collection := database.Collection("leads")

	var lead models.Lead
	err := collection.FindOne(ctx, bson.M{"lead_id": leadID}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}

// UpsertLead records an inbound message against a lead, creating the
// record on first contact.
func UpsertLead(ctx context.Context, leadID, lastMessage, language string) (*models.Lead, error) {
	collection := database.Collection("leads")
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"last_message": lastMessage,
			"language":     language,
			"last_seen":    now,
			"updated_at":   now,
		},
		"$inc": bson.M{"message_count": 1},
		"$setOnInsert": bson.M{
			"lead_id":    leadID,
			"status":     models.LeadStatusNew,
			"first_seen": now,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var lead models.Lead
	err := collection.FindOneAndUpdate(ctx, bson.M{"lead_id": leadID}, update, opts).Decode(&lead)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert lead: %w", err)
	}

	return &lead, nil
}

// UpdateLeadInfo persists freshly extracted intent slots and any name
// mined from history, and advances the qualification status.
func UpdateLeadInfo(ctx context.Context, lead *models.Lead, info nlp.Intent, name string) error {
	collection := database.Collection("leads")

	lead.Info = info
	if name != "" && lead.Name == "" {
		lead.Name = name
	}

	status := lead.Status
	switch {
	case lead.IsQualified():
		status = models.LeadStatusQualified
	case status == models.LeadStatusNew && !info.IsEmpty():
		status = models.LeadStatusEngaged
	}
	lead.Status = status

	_, err := collection.UpdateOne(ctx,
		bson.M{"lead_id": lead.LeadID},
		bson.M{"$set": bson.M{
			"info":       lead.Info,
			"name":       lead.Name,
			"status":     lead.Status,
			"updated_at": time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update lead info: %w", err)
	}

	return nil
}

// GetLeads lists leads for the dashboard, newest activity first.
func GetLeads(ctx context.Context, status string, limit, offset int64) ([]models.Lead, error) {
	collection := database.Collection("leads")

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.M{"last_seen": -1}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}

	return leads, nil
}

// SearchLeads matches name, location or property type against a free
// text term for the dashboard search box.
func SearchLeads(ctx context.Context, term string, limit int64) ([]models.Lead, error) {
	collection := database.Collection("leads")

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	pattern := primitiveRegex(term)
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"info.location": pattern},
		{"info.propertytype": pattern},
		{"lead_id": pattern},
	}}

	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(bson.M{"last_seen": -1}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}

	return leads, nil
}

// GetLeadStats aggregates lead counts per status for the dashboard.
func GetLeadStats(ctx context.Context) (map[string]int64, error) {
	collection := database.Collection("leads")

	stats := make(map[string]int64)
	for _, status := range []string{
		models.LeadStatusNew, models.LeadStatusEngaged,
		models.LeadStatusQualified, models.LeadStatusClosed,
	} {
		count, err := collection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return nil, fmt.Errorf("failed to count leads: %w", err)
		}
		stats[status] = count
	}

	total, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	stats["total"] = total

	return stats, nil
}

func primitiveRegex(term string) bson.M {
	return bson.M{"$regex": term, "$options": "i"}
}
