package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	// MongoDB configuration
	MongoURI     string
	DatabaseName string

	// Anthropic chat-completion configuration
	ClaudeAPIKey    string
	ClaudeModel     string
	ClaudeMaxTokens int

	// Google Programmable Search configuration
	SearchAPIKey   string
	SearchEngineID string

	// Webhook configuration
	VerifyToken string

	// Server configuration
	Port string
}

func LoadConfig() *Config {
	cfg := &Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:    getEnv("MONGO_DB_NAME", "realty_bot"),
		ClaudeAPIKey:    getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
		ClaudeMaxTokens: getEnvInt("CLAUDE_MAX_TOKENS", 1024),
		SearchAPIKey:    getEnv("SEARCH_API_KEY", ""),
		SearchEngineID:  getEnv("SEARCH_ENGINE_ID", ""),
		VerifyToken:     getEnv("WEBHOOK_VERIFY_TOKEN", "webhook_verify_token"),
		Port:            getEnv("PORT", "8080"),
	}

	if cfg.ClaudeAPIKey == "" {
		slog.Warn("CLAUDE_API_KEY not set, replies will use the fallback template")
	}
	if cfg.SearchAPIKey == "" || cfg.SearchEngineID == "" {
		slog.Warn("search API not configured, listing search is disabled")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
