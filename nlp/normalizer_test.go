package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResponseStripsTrailingQuestion(t *testing.T) {
	got := NormalizeResponse("Here are two good options in Baner. What is your budget?", false)

	assert.NotContains(t, got, "?")
	assert.Contains(t, got, "Here are two good options in Baner.")
	assert.NotContains(t, got, "budget")
}

func TestNormalizeResponseNeverContainsQuestionMark(t *testing.T) {
	inputs := []string{
		"Would you like a villa? Or a flat? Either works.",
		"1. Is parking needed?\n2. Any floor preference?\nWe have options.",
		"Quote from the listing: \"best deal?\" they said.",
	}

	for _, input := range inputs {
		got := NormalizeResponse(input, false)
		assert.NotContains(t, got, "?", "input: %s", input)
	}
}

func TestNormalizeResponseStripsMidTextQuestion(t *testing.T) {
	got := NormalizeResponse("Here are two options. What is your budget? Both are near the metro.", false)

	assert.Contains(t, got, "Here are two options.")
	assert.Contains(t, got, "Both are near the metro.")
	assert.NotContains(t, got, "budget")
	assert.NotContains(t, got, "?")
}

func TestNormalizeResponseConvertsQuotedQuestion(t *testing.T) {
	// Question marks outside a sentence-shaped question become
	// periods instead of taking their sentence with them.
	got := NormalizeResponse(`The listing says "ready to move?" in its headline. Visit this weekend.`, false)

	assert.Contains(t, got, `"ready to move."`)
	assert.Contains(t, got, "Visit this weekend.")
	assert.NotContains(t, got, "?")
}

func TestNormalizeResponseIdempotent(t *testing.T) {
	inputs := []string{
		"Here are two good options in Baner. What is your budget?",
		"I found 3 listings matching your needs. Let me know if you have questions.",
		"Glad I could help you today.",
	}

	for _, input := range inputs {
		once := NormalizeResponse(input, false)
		twice := NormalizeResponse(once, false)
		assert.Equal(t, once, twice, "input: %s", input)
	}
}

func TestNormalizeResponseRemovesOfferPhrases(t *testing.T) {
	got := NormalizeResponse("I found 3 listings for you. Is there anything else I can help you with?", false)

	assert.Contains(t, got, "I found 3 listings for you.")
	assert.NotContains(t, got, "anything else")
}

func TestNormalizeResponseEndingAppendsCourtesy(t *testing.T) {
	got := NormalizeResponse("Glad I could help you today.", true)

	assert.Contains(t, got, "Thank you for chatting with us")
}

func TestNormalizeResponseEndingNoDoubleCourtesy(t *testing.T) {
	got := NormalizeResponse("Thank you for choosing us. Have a great day.", true)

	assert.Equal(t, 1, strings.Count(got, "Thank"))
}

func TestNormalizeResponseDropsFragments(t *testing.T) {
	got := NormalizeResponse("We shortlisted these properties for you.\nor maybe\nVisit them this weekend.", false)

	assert.NotContains(t, got, "or maybe")
	assert.Contains(t, got, "We shortlisted these properties for you.")
	assert.Contains(t, got, "Visit them this weekend.")
}

func TestNormalizeResponseCollapsesWhitespace(t *testing.T) {
	got := NormalizeResponse("First line.\n\n\n\nSecond line.   With  extra   spaces.", false)

	assert.NotContains(t, got, "\n\n\n")
	assert.NotContains(t, got, "  ")
}

func TestNormalizeResponseEmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeResponse("", false))
	assert.Equal(t, "", NormalizeResponse("   \n  ", false))
}

func TestIsConversationEnding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"thanks", "thanks", true},
		{"thanks punctuated", "Thanks!", true},
		{"thank you", "Thank you so much", true},
		{"bye", "bye", true},
		{"ok thanks", "ok thanks", true},
		{"hindi thanks", "धन्यवाद", true},
		{"long question", "What is the price of 2 BHK in Pune?", false},
		{"short no question", "Pune", true},
		{"short question", "price?", false},
		{"long statement", "I am still comparing the two shortlisted flats", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConversationEnding(tt.text))
		})
	}
}

func TestFormatResultsDigest(t *testing.T) {
	hits := []SearchHit{
		{Title: "3 BHK Flat in Pune", Snippet: "Spacious flat near metro.", Link: "https://www.99acres.com/1"},
		{Title: "2 BHK in Baner", Link: "https://housing.com/2"},
	}

	got := FormatResultsDigest(hits)

	assert.Contains(t, got, "1. 3 BHK Flat in Pune")
	assert.Contains(t, got, "Spacious flat near metro.")
	assert.Contains(t, got, "2. 2 BHK in Baner")
	assert.Contains(t, got, "https://housing.com/2")
}

func TestFormatResultsDigestEmpty(t *testing.T) {
	got := FormatResultsDigest(nil)
	assert.Contains(t, got, "No matching listings found")
}
