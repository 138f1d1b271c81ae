package nlp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMineHistoryBudgetExchange(t *testing.T) {
	turns := []Turn{
		{Role: "assistant", Text: "What is your budget?"},
		{Role: "user", Text: "My budget is 5000000"},
	}

	digest := MineHistory(turns)

	assert.True(t, digest.AskedBudget)
	assert.Equal(t, "5000000", digest.Provided.Budget)
	assert.False(t, digest.AskedName)
	assert.False(t, digest.AskedLocation)
}

func TestMineHistoryAskedFlags(t *testing.T) {
	turns := []Turn{
		{Role: "assistant", Text: "May I know your name?"},
		{Role: "assistant", Text: "Which area are you looking in?"},
		{Role: "assistant", Text: "What type of property do you prefer?"},
	}

	digest := MineHistory(turns)

	assert.True(t, digest.AskedName)
	assert.True(t, digest.AskedLocation)
	assert.True(t, digest.AskedPropertyType)
	assert.False(t, digest.AskedBudget)
}

func TestMineHistoryAskedFlagsAreMonotone(t *testing.T) {
	turns := []Turn{
		{Role: "assistant", Text: "What is your budget?"},
		{Role: "user", Text: "Around 50 lakhs"},
		{Role: "assistant", Text: "Great, noted."},
	}

	digest := MineHistory(turns)
	assert.True(t, digest.AskedBudget)
}

func TestMineHistoryProvidedLastWins(t *testing.T) {
	turns := []Turn{
		{Role: "user", Text: "My budget is 5000000"},
		{Role: "assistant", Text: "Noted."},
		{Role: "user", Text: "Actually, budget is 7500000"},
	}

	digest := MineHistory(turns)
	assert.Equal(t, "7500000", digest.Provided.Budget)
}

func TestMineHistoryWindow(t *testing.T) {
	turns := []Turn{
		{Role: "assistant", Text: "What is your budget?"},
		{Role: "user", Text: "My name is Rahul"},
	}
	for i := 0; i < 10; i++ {
		turns = append(turns, Turn{Role: "user", Text: fmt.Sprintf("filler message number %d", i)})
	}

	digest := MineHistory(turns)

	// Both informative turns fell outside the trailing window.
	assert.False(t, digest.AskedBudget)
	assert.Empty(t, digest.Provided.Name)
}

func TestMineHistoryProvidedName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"my name is", "My name is Rahul", "Rahul"},
		{"i am", "I am Priya and I need a flat", "Priya"},
		{"this is", "Hi, this is Amit", "Amit"},
		{"not a name", "I am looking for a flat", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := MineHistory([]Turn{{Role: "user", Text: tt.text}})
			assert.Equal(t, tt.want, digest.Provided.Name)
		})
	}
}

func TestMineHistoryProvidedLocation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"interested in", "I am interested in Baner", "Baner"},
		{"gazetteer fallback", "Pune", "pune"},
		{"no location", "I want something big", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := MineHistory([]Turn{{Role: "user", Text: tt.text}})
			assert.Equal(t, tt.want, digest.Provided.Location)
		})
	}
}

func TestMineHistoryProvidedPropertyType(t *testing.T) {
	digest := MineHistory([]Turn{{Role: "user", Text: "I want an apartment with parking"}})
	assert.Equal(t, "apartment", digest.Provided.PropertyType)
}

func TestMineHistoryIgnoresAssistantSlots(t *testing.T) {
	// Assistant turns only set asked flags, never provided values.
	digest := MineHistory([]Turn{{Role: "assistant", Text: "We have a flat in Pune for 5000000"}})

	assert.Empty(t, digest.Provided.PropertyType)
	assert.Empty(t, digest.Provided.Location)
	assert.Empty(t, digest.Provided.Budget)
}

func TestMineHistoryEmpty(t *testing.T) {
	assert.Equal(t, HistoryDigest{}, MineHistory(nil))
}
