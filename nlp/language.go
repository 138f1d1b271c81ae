package nlp

import (
	"regexp"
	"strings"
)

// languageRule matches a language when the script-run pattern matches
// and, if present, the keyword pattern also matches. Keywords
// disambiguate languages that share a script block (Hindi and Marathi
// both write in Devanagari).
type languageRule struct {
	script   *regexp.Regexp
	keywords *regexp.Regexp
}

// languagePatterns is evaluated in order; the first matching entry
// wins. Marathi precedes Hindi so its function words get a chance
// before the plain Devanagari fallback.
var languagePatterns = []struct {
	lang  Language
	rules []languageRule
}{
	{LangMarathi, []languageRule{
		{
			script:   regexp.MustCompile(`[\x{0900}-\x{097F}]{3,}`),
			keywords: regexp.MustCompile(`आहे|आहेत|मला|तुम्ही|काय|कुठे|पाहिजे|मराठी|घर आहे`),
		},
	}},
	{LangHindi, []languageRule{
		{script: regexp.MustCompile(`[\x{0900}-\x{097F}]{3,}`)},
	}},
	{LangGujarati, []languageRule{
		{script: regexp.MustCompile(`[\x{0A80}-\x{0AFF}]{3,}`)},
	}},
	{LangBengali, []languageRule{
		{script: regexp.MustCompile(`[\x{0980}-\x{09FF}]{3,}`)},
	}},
	{LangTamil, []languageRule{
		{script: regexp.MustCompile(`[\x{0B80}-\x{0BFF}]{3,}`)},
	}},
	{LangTelugu, []languageRule{
		{script: regexp.MustCompile(`[\x{0C00}-\x{0C7F}]{3,}`)},
	}},
	{LangKannada, []languageRule{
		{script: regexp.MustCompile(`[\x{0C80}-\x{0CFF}]{3,}`)},
	}},
	{LangMalayalam, []languageRule{
		{script: regexp.MustCompile(`[\x{0D00}-\x{0D7F}]{3,}`)},
	}},
	{LangPunjabi, []languageRule{
		{script: regexp.MustCompile(`[\x{0A00}-\x{0A7F}]{3,}`)},
	}},
	{LangUrdu, []languageRule{
		{script: regexp.MustCompile(`[\x{0600}-\x{06FF}]{3,}`)},
	}},
}

// DetectLanguage maps free-form text to a language tag using script
// runs (at least three contiguous script-specific code points) plus
// keyword disambiguation. Empty or whitespace-only input, and text
// matching no pattern, returns LangEnglish.
func DetectLanguage(text string) Language {
	text = strings.TrimSpace(text)
	if text == "" {
		return LangEnglish
	}

	for _, entry := range languagePatterns {
		for _, rule := range entry.rules {
			if !rule.script.MatchString(text) {
				continue
			}
			if rule.keywords != nil && !rule.keywords.MatchString(text) {
				continue
			}
			return entry.lang
		}
	}

	return LangEnglish
}
