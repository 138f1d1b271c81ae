package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"realty-bot/config"
)

const claudeAPIURL = "https://api.anthropic.com/v1/messages"

// ClaudeRequest represents the request to Claude API
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
	System    string    `json:"system,omitempty"`
}

// Message represents a message in the conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ContentBlock represents a content block in Claude's response
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ClaudeResponse represents the response from Claude API
type ClaudeResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Role       string         `json:"role"`
	Content    []ContentBlock `json:"content"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// ChatHistory is one prior turn passed to the completion provider.
type ChatHistory struct {
	Role    string
	Content string
}

// GetClaudeResponse gets a completion for the lead's message given the
// assembled system prompt and recent history.
func GetClaudeResponse(ctx context.Context, cfg *config.Config, systemPrompt, input string, history []ChatHistory) (string, error) {
	// Test mode: if API key is "TEST_MODE", return a mock response
	if cfg.ClaudeAPIKey == "TEST_MODE" {
		slog.Info("Running in TEST_MODE - returning mock response")
		return fmt.Sprintf("TEST RESPONSE: I received your message: '%s'. This is a test response.", input), nil
	}

	if cfg.ClaudeAPIKey == "" {
		return "", fmt.Errorf("Claude API key not configured")
	}

	maxTokens := cfg.ClaudeMaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	messages := make([]Message, 0, len(history)+1)
	for _, h := range history {
		role := h.Role
		if role != "user" && role != "assistant" {
			role = "user"
		}
		messages = append(messages, Message{Role: role, Content: h.Content})
	}
	messages = append(messages, Message{Role: "user", Content: input})

	requestBody := ClaudeRequest{
		Model:     cfg.ClaudeModel,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages:  messages,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", claudeAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", cfg.ClaudeAPIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	// Create client with longer timeout
	client := &http.Client{
		Timeout: 45 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		// Check if it's a timeout error
		if os.IsTimeout(err) || strings.Contains(err.Error(), "deadline exceeded") {
			slog.Error("Claude API timeout",
				"error", err,
				"messageLength", len(input),
			)
			return "", fmt.Errorf("Claude API timeout - request took too long")
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("Claude API error", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("Claude API error: %s", resp.Status)
	}

	var claudeResp ClaudeResponse
	if err := json.Unmarshal(body, &claudeResp); err != nil {
		return "", err
	}

	if len(claudeResp.Content) > 0 {
		response := claudeResp.Content[0].Text
		slog.Info("Claude response generated",
			"inputTokens", claudeResp.Usage.InputTokens,
			"outputTokens", claudeResp.Usage.OutputTokens,
		)
		return response, nil
	}

	return "", fmt.Errorf("no response content from Claude")
}
