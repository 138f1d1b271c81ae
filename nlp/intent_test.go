package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractIntentFullQuery(t *testing.T) {
	got := ExtractIntent("Looking for a 3 bhk flat in Pune under 80 lakhs", Intent{})

	assert.Equal(t, "Pune", got.Location)
	assert.Equal(t, "80", got.Budget)
	assert.Equal(t, "flat", got.PropertyType)
	assert.Equal(t, "3", got.BedroomCount)
}

func TestExtractIntentKnownSlotsWin(t *testing.T) {
	got := ExtractIntent("2 bhk in Pune", Intent{Location: "Mumbai"})

	assert.Equal(t, "Mumbai", got.Location)
	assert.Equal(t, "2", got.BedroomCount)
}

func TestExtractIntentIdempotent(t *testing.T) {
	query := "2 bhk apartment for rent in Thane within 30000"

	first := ExtractIntent(query, Intent{})
	second := ExtractIntent(query, first)

	assert.Equal(t, first, second)
}

func TestExtractIntentEmptyQuery(t *testing.T) {
	known := Intent{Location: "Pune", Budget: "5000000"}

	assert.Equal(t, known, ExtractIntent("", known))
	assert.Equal(t, known, ExtractIntent("   ", known))
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"preposition", "show me flats in Baner", "Baner"},
		{"preposition with budget terminator", "villa near Whitefield under 2 crores", "Whitefield"},
		{"preposition with comma", "flat for rent in Andheri, close to the station", "Andheri"},
		{"within preposition", "house within Kharadi", "Kharadi"},
		{"within amount is not a location", "flat within 30000", ""},
		{"area suffix", "Koramangala area preferred", "Koramangala"},
		{"gazetteer fallback", "mumbai listings please", "mumbai"},
		{"multi word city", "property navi mumbai side", "navi mumbai"},
		{"no location", "I need a big house fast", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIntent(tt.query, Intent{}).Location)
		})
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"rupee symbol", "my budget is ₹50,00,000", "5000000"},
		{"rs prefix", "around Rs. 35,000 per month", "35000"},
		{"unit lakhs", "I can spend 80 lakhs", "80"},
		{"unit crore", "up to 2 cr", "2"},
		{"comparator", "anything under 75000", "75000"},
		{"between keeps first amount", "between 40,00,000 and 60,00,000", "4000000"},
		{"no budget", "a flat in Pune", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIntent(tt.query, Intent{}).Budget)
		})
	}
}

func TestExtractPropertyType(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"a 2 bhk apartment in Pune", "apartment"},
		{"flats near the metro", "flat"},
		{"independent villa with garden", "villa"},
		{"plot for investment", "plot"},
		{"office space in BKC", "office"},
		{"just looking around", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIntent(tt.query, Intent{}).PropertyType)
		})
	}
}

func TestExtractTransactionType(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"I want to buy a flat", "buy"},
		{"flat for sale in Pune", "buy"},
		{"looking to invest in property", "buy"},
		{"2 bhk for rent", "rent"},
		{"house on lease", "rent"},
		{"a nice place in town", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIntent(tt.query, Intent{}).TransactionType)
		})
	}
}

func TestExtractBedroomCount(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"3 bhk in Pune", "3"},
		{"2BHK preferred", "2"},
		{"four bedroom house", "4"},
		{"double bedroom flat", "2"},
		{"1 RK near station", "1"},
		{"spacious place", ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIntent(tt.query, Intent{}).BedroomCount)
		})
	}
}
