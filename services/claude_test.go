package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-bot/config"
)

func TestGetClaudeResponseTestMode(t *testing.T) {
	cfg := &config.Config{ClaudeAPIKey: "TEST_MODE"}

	got, err := GetClaudeResponse(context.Background(), cfg, "system", "hello", nil)

	require.NoError(t, err)
	assert.Contains(t, got, "hello")
	assert.Contains(t, got, "TEST RESPONSE")
}

func TestGetClaudeResponseMissingKey(t *testing.T) {
	cfg := &config.Config{}

	_, err := GetClaudeResponse(context.Background(), cfg, "system", "hello", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
