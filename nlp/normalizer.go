package nlp

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// The assistant must never answer with a question of its own: follow-up
// questions are generated ahead of time by the prompt builder, so
// anything interrogative left in the model output is stripped here.
// Converting residual '?' to '.' is blunt and can mangle quoted
// snippets, but it is deterministic and keeps the guarantee absolute.
var (
	trailingQuestionRE = regexp.MustCompile(`(?:[^.!?\n]*\?\s*)+$`)
	listQuestionRE     = regexp.MustCompile(`(?m)^\s*(?:[0-9]+[.)]|[-*•])\s*[^\n]*\?\s*$`)

	// Only sentence-shaped questions (an interrogative opener at a
	// sentence boundary) are excised outright; question marks inside
	// other sentences, such as quoted snippet text, are left for the
	// '?' to '.' conversion below.
	inlineQuestionRE = regexp.MustCompile(`(?i)(^|[.!?\n])\s*(?:who|whose|whom|what|where|when|why|how|which|is|are|am|was|were|do|does|did|can|could|would|will|shall|should|may|might|have|has|had)\b[^.!?\n]*\?`)

	offerPhraseREs = []*regexp.Regexp{
		regexp.MustCompile(`(?i)is there anything else (?:i|we) can help(?: you)? with[.?]?`),
		regexp.MustCompile(`(?i)(?:how|what)(?: else)? can (?:i|we) (?:help|assist)(?: you)?(?: today)?[.?]?`),
		regexp.MustCompile(`(?i)can (?:i|we) help you with anything else[.?]?`),
		regexp.MustCompile(`(?i)would you like (?:to know more|more (?:details|information))[^.!?\n]*[.?]?`),
		regexp.MustCompile(`(?i)do you (?:have any other questions|need anything else)[.?]?`),
		regexp.MustCompile(`(?i)let me know if (?:you|there)[^.!?\n]*[.?]?`),
		regexp.MustCompile(`(?i)feel free to ask[^.!?\n]*[.?]?`),
		regexp.MustCompile(`क्या मैं आपकी (?:और |कोई और )?(?:मदद|सहायता) कर (?:सकता|सकती) हूँ`),
		regexp.MustCompile(`और कुछ (?:जानना|पूछना) (?:चाहेंगे|चाहते हैं)`),
		regexp.MustCompile(`आणखी काही (?:मदत|माहिती) हवी आहे का`),
	}

	tripleNewlineRE = regexp.MustCompile(`\n{3,}`)
	multiSpaceRE    = regexp.MustCompile(`[ \t]{2,}`)
)

// minFragmentLength is the shortest unpunctuated line that survives
// cleanup; anything shorter is treated as debris left by the removals.
const minFragmentLength = 20

// maxClosingLength bounds how long a message can be and still count as
// a closing-phrase match by containment.
const maxClosingLength = 30

// NormalizeResponse cleans generated text for delivery: questions are
// stripped or converted to statements, canned offer-to-help lines are
// removed, whitespace is collapsed and stray fragments dropped. When
// isEnding is set a closing courtesy line is appended unless the text
// already thanks the user. Running the function on its own output is a
// no-op.
func NormalizeResponse(text string, isEnding bool) string {
	text = trailingQuestionRE.ReplaceAllString(text, "")
	text = listQuestionRE.ReplaceAllString(text, "")
	text = inlineQuestionRE.ReplaceAllString(text, "$1")

	text = removeOfferPhrases(text)

	text = strings.ReplaceAll(text, "?", ".")

	if isEnding {
		text = removeOfferPhrases(text)
		if !containsAny(strings.ToLower(text), thanksMarkers) {
			text = strings.TrimRight(text, " \t\n") + "\n\n" + closingCourtesy
		}
	}

	text = tripleNewlineRE.ReplaceAllString(text, "\n\n")
	text = multiSpaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	return dropFragments(text)
}

func removeOfferPhrases(text string) string {
	for _, pattern := range offerPhraseREs {
		text = pattern.ReplaceAllString(text, "")
	}
	return text
}

// dropFragments removes short unterminated lines produced by the
// question removals. Lines ending in sentence punctuation are kept
// regardless of length so legitimate short sentences survive.
func dropFragments(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" &&
			utf8.RuneCountInString(trimmed) < minFragmentLength &&
			!strings.HasSuffix(trimmed, ".") &&
			!strings.HasSuffix(trimmed, "!") &&
			!strings.HasSuffix(trimmed, ":") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// IsConversationEnding reports whether a user message reads like a
// wrap-up. It matches the closing-phrase list on short messages and,
// as a permissive fallback, treats any non-empty message under 15
// characters without a question mark as an ending signal, so short
// factual replies can misclassify.
func IsConversationEnding(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	lower := strings.ToLower(strings.Trim(trimmed, " .!,"))
	for _, phrase := range closingPhrases {
		if lower == phrase {
			return true
		}
		// Containment only for longer phrases; "ty" would otherwise
		// match inside words like "city".
		if utf8.RuneCountInString(phrase) >= 4 &&
			utf8.RuneCountInString(lower) < maxClosingLength &&
			strings.Contains(lower, phrase) {
			return true
		}
	}

	return utf8.RuneCountInString(trimmed) < 15 && !strings.Contains(trimmed, "?")
}

// FormatResultsDigest renders the ranked hits as a short plain-text
// digest appended under the assistant's reply. An empty list degrades
// to a friendly placeholder instead of an error.
func FormatResultsDigest(hits []SearchHit) string {
	if len(hits) == 0 {
		return "No matching listings found right now. I will keep looking as more details come in."
	}

	var b strings.Builder
	b.WriteString("Top matching listings:\n")
	for i, hit := range hits {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, strings.TrimSpace(hit.Title)))
		if snippet := strings.TrimSpace(hit.Snippet); snippet != "" {
			b.WriteString("   " + snippet + "\n")
		}
		if hit.Link != "" {
			b.WriteString("   " + hit.Link + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
