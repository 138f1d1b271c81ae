// Pipeline phases for one inbound message:
//
//	1. Upsert lead         – record contact, detect language
//	2. History window      – load recent turns, mine asked/provided state
//	3. Intent extraction   – stored lead slots win over fresh extraction
//	4. Query enhancement   – slots + trusted portals into one search query
//	5. Web search + rank   – score hits, keep the top few
//	6. Completion          – Claude reply conditioned on all of the above
//	7. Normalization       – strip questions, append listings digest
//	8. Persist + broadcast – messages, reply audit, dashboard event
package services

import (
	"context"
	"log/slog"
	"time"

	"realty-bot/config"
	"realty-bot/models"
	"realty-bot/nlp"
)

// PipelineResult is what the chat handler returns to the caller.
type PipelineResult struct {
	Reply    string     `json:"reply"`
	Language string     `json:"language"`
	Intent   nlp.Intent `json:"intent"`
	Ending   bool       `json:"ending"`
}

// ProcessIncomingMessage runs the full qualification pipeline for one
// user message and returns the normalized reply. Collaborator
// failures (search, completion) degrade to fallbacks; only persistence
// errors surface.
func ProcessIncomingMessage(ctx context.Context, cfg *config.Config, leadID, text string) (*PipelineResult, error) {
	started := time.Now()

	language := nlp.DetectLanguage(text)

	lead, err := UpsertLead(ctx, leadID, text, string(language))
	if err != nil {
		return nil, err
	}

	turns, err := GetRecentTurns(ctx, leadID)
	if err != nil {
		slog.Error("Failed to load history, mining empty window", "error", err, "leadID", leadID)
		turns = nil
	}
	digest := nlp.MineHistory(turns)

	intent := nlp.ExtractIntent(text, lead.Info)

	enhanced := nlp.BuildEnhancedQuery(text, intent)
	hits := SearchListings(ctx, cfg, enhanced)
	ranked := nlp.RankResults(hits, text, intent)

	systemPrompt := BuildSystemPrompt(language, intent, digest, ranked)

	history := make([]ChatHistory, 0, len(turns))
	for _, turn := range turns {
		history = append(history, ChatHistory{Role: turn.Role, Content: turn.Text})
	}

	raw, err := GetClaudeResponse(ctx, cfg, systemPrompt, text, history)
	if err != nil {
		slog.Error("Completion failed, using fallback reply", "error", err, "leadID", leadID)
		raw = FallbackReply(language)
	}

	ending := nlp.IsConversationEnding(text)
	reply := nlp.NormalizeResponse(raw, ending)
	if reply == "" {
		reply = FallbackReply(language)
	}
	if len(ranked) > 0 && !ending {
		reply += "\n\n" + nlp.FormatResultsDigest(ranked)
	}

	if err := persistExchange(ctx, lead, text, raw, reply, enhanced, string(language)); err != nil {
		return nil, err
	}

	if err := UpdateLeadInfo(ctx, lead, intent, digest.Provided.Name); err != nil {
		slog.Error("Failed to update lead info", "error", err, "leadID", leadID)
	}

	GetWebSocketManager().BroadcastLeadActivity(lead, reply)

	slog.Info("Message processed",
		"leadID", leadID,
		"language", language,
		"results", len(ranked),
		"ending", ending,
		"durationMs", time.Since(started).Milliseconds(),
	)

	return &PipelineResult{
		Reply:    reply,
		Language: string(language),
		Intent:   intent,
		Ending:   ending,
	}, nil
}

func persistExchange(ctx context.Context, lead *models.Lead, text, raw, reply, enhanced, language string) error {
	now := time.Now()

	if err := SaveMessage(ctx, &models.Message{
		LeadID:    lead.LeadID,
		Role:      "user",
		Text:      text,
		Language:  language,
		Timestamp: now,
	}); err != nil {
		return err
	}

	if err := SaveMessage(ctx, &models.Message{
		LeadID:    lead.LeadID,
		Role:      "assistant",
		Text:      reply,
		Language:  language,
		IsBot:     true,
		Timestamp: now.Add(time.Millisecond),
	}); err != nil {
		return err
	}

	return SaveReply(ctx, &models.Reply{
		LeadID:    lead.LeadID,
		Original:  raw,
		Response:  reply,
		Language:  language,
		Query:     enhanced,
		Timestamp: now,
	})
}
