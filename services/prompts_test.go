package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"realty-bot/nlp"
)

func TestBuildSystemPromptEmptyState(t *testing.T) {
	prompt := BuildSystemPrompt(nlp.LangEnglish, nlp.Intent{}, nlp.HistoryDigest{}, nil)

	assert.Contains(t, prompt, "real estate consultant")
	assert.Contains(t, prompt, "Respond in English")
	assert.Contains(t, prompt, "Nothing confirmed yet")
	assert.Contains(t, prompt, "No matching listings were found")
}

func TestBuildSystemPromptKnownSlots(t *testing.T) {
	intent := nlp.Intent{
		Location:     "Pune",
		Budget:       "5000000",
		PropertyType: "flat",
	}

	prompt := BuildSystemPrompt(nlp.LangEnglish, intent, nlp.HistoryDigest{}, nil)

	assert.Contains(t, prompt, "Location: Pune")
	assert.Contains(t, prompt, "Budget: 5000000")
	assert.Contains(t, prompt, "Property type: flat")
	assert.NotContains(t, prompt, "Nothing confirmed yet")
	assert.NotContains(t, prompt, "Bedrooms:")
}

func TestBuildSystemPromptAskedFlags(t *testing.T) {
	digest := nlp.HistoryDigest{AskedBudget: true, AskedName: true}

	prompt := BuildSystemPrompt(nlp.LangEnglish, nlp.Intent{}, digest, nil)

	assert.Contains(t, prompt, "already asked for the customer's budget")
	assert.Contains(t, prompt, "already asked for the customer's name")
	assert.NotContains(t, prompt, "already asked for the customer's location")
}

func TestBuildSystemPromptProvidedInfo(t *testing.T) {
	digest := nlp.HistoryDigest{}
	digest.Provided.Name = "Rahul"
	digest.Provided.Budget = "5000000"

	prompt := BuildSystemPrompt(nlp.LangEnglish, nlp.Intent{}, digest, nil)

	assert.Contains(t, prompt, `gave their name: "Rahul"`)
	assert.Contains(t, prompt, `gave their budget: "5000000"`)
}

func TestBuildSystemPromptListings(t *testing.T) {
	hits := []nlp.SearchHit{
		{Title: "3 BHK Flat in Pune", Snippet: "Near metro, ₹75 lakh."},
		{Title: "2 BHK in Baner"},
	}

	prompt := BuildSystemPrompt(nlp.LangEnglish, nlp.Intent{}, nlp.HistoryDigest{}, hits)

	assert.Contains(t, prompt, "MATCHING LISTINGS")
	assert.Contains(t, prompt, "1. 3 BHK Flat in Pune")
	assert.Contains(t, prompt, "Near metro, ₹75 lakh.")
	assert.Contains(t, prompt, "2. 2 BHK in Baner")
	assert.NotContains(t, prompt, "No matching listings were found")
}

func TestBuildSystemPromptLanguageRule(t *testing.T) {
	prompt := BuildSystemPrompt(nlp.LangHindi, nlp.Intent{}, nlp.HistoryDigest{}, nil)

	assert.Contains(t, prompt, "Respond in Hindi")
	assert.Contains(t, prompt, "हिन्दी")
}

func TestFallbackReply(t *testing.T) {
	assert.True(t, strings.HasPrefix(FallbackReply(nlp.LangEnglish), "Hello!"))
	assert.NotEmpty(t, FallbackReply(nlp.LangTamil))

	// Unknown tags fall back to the English greeting.
	assert.Equal(t, FallbackReply(nlp.LangEnglish), FallbackReply(nlp.Language("xx")))
}
