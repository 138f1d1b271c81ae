package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLanguage(t *testing.T) {
	hi := GetLanguage("hi")
	assert.Equal(t, "Hindi", hi.Name)
	assert.Equal(t, "हिन्दी", hi.NativeName)
	assert.NotEmpty(t, hi.Greeting)

	// Unknown tags fall back to English.
	assert.Equal(t, "English", GetLanguage("xx").Name)
	assert.Equal(t, "English", GetLanguage("").Name)
}

func TestSupportedLanguages(t *testing.T) {
	tags := SupportedLanguages()

	assert.Len(t, tags, 11)
	assert.Contains(t, tags, "en")
	assert.Contains(t, tags, "mr")
	assert.Contains(t, tags, "ur")
}

func TestEveryLanguageHasGreeting(t *testing.T) {
	for _, tag := range SupportedLanguages() {
		info := GetLanguage(tag)
		assert.Equal(t, tag, info.Tag)
		assert.NotEmpty(t, info.Greeting, "tag %s", tag)
	}
}
