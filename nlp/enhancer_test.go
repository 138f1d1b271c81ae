package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEnhancedQueryAppendsSlots(t *testing.T) {
	intent := Intent{
		Location:        "Pune",
		PropertyType:    "flat",
		TransactionType: "buy",
		Budget:          "5000000",
	}

	got := BuildEnhancedQuery("need a place", intent)

	assert.Contains(t, got, "need a place")
	assert.Contains(t, got, "in Pune")
	assert.Contains(t, got, "flat")
	assert.Contains(t, got, "for buy")
	assert.Contains(t, got, "5000000")
	assert.Contains(t, got, "site:99acres.com")
	assert.Contains(t, got, " OR ")
}

func TestBuildEnhancedQueryIdempotent(t *testing.T) {
	intent := Intent{
		Location:        "Pune",
		PropertyType:    "flat",
		TransactionType: "rent",
		Budget:          "30000",
	}

	first := BuildEnhancedQuery("2 bhk flat in Pune", intent)
	second := BuildEnhancedQuery(first, intent)

	assert.Equal(t, first, second)
}

func TestBuildEnhancedQueryQualifier(t *testing.T) {
	// A query with no property vocabulary gets the generic qualifier.
	got := BuildEnhancedQuery("something nice in Goa", Intent{})
	assert.Contains(t, got, "real estate property")

	// A query that already reads like a property search does not.
	got = BuildEnhancedQuery("2 bhk flat in Goa", Intent{})
	assert.NotContains(t, got, "real estate property")
}

func TestBuildEnhancedQuerySkipsPresentFragments(t *testing.T) {
	intent := Intent{Location: "Pune", PropertyType: "flat"}

	got := BuildEnhancedQuery("flat in Pune", intent)

	assert.Equal(t, 1, strings.Count(strings.ToLower(got), "in pune"))
	assert.Equal(t, 1, strings.Count(strings.ToLower(got), "flat"))
}

func TestBuildEnhancedQuerySiteClauseOnce(t *testing.T) {
	got := BuildEnhancedQuery("flat in Pune", Intent{})
	again := BuildEnhancedQuery(got, Intent{})

	assert.Equal(t, 1, strings.Count(again, "site:99acres.com"))
}

func TestBuildEnhancedQueryEmptyIntent(t *testing.T) {
	got := BuildEnhancedQuery("apartment in Mumbai", Intent{})

	assert.True(t, strings.HasPrefix(got, "apartment in Mumbai"))
	assert.Contains(t, got, "site:commonfloor.com")
}
