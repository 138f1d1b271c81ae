package nlp

import (
	"regexp"
	"strings"
)

// historyWindow bounds how many trailing turns are scanned.
const historyWindow = 10

// Patterns that recognize an assistant turn asking about a slot. A
// boolean only ever flips false→true while scanning the window.
var (
	askedNameRE = regexp.MustCompile(`(?i)(?:your\s+(?:good\s+)?name|may\s+i\s+know\s+your\s+name|who\s+am\s+i\s+(?:speaking|chatting)\s+with|what\s+should\s+i\s+call\s+you|आपका\s+नाम)`)

	askedBudgetRE = regexp.MustCompile(`(?i)(?:your\s+budget|price\s+range|budget\s+range|how\s+much\s+(?:are\s+you\s+)?(?:looking|willing|planning)\s+to\s+spend|what\s+is\s+your\s+budget|आपका\s+बजट)`)

	askedLocationRE = regexp.MustCompile(`(?i)(?:which\s+(?:area|city|location|locality)|preferred\s+(?:area|city|location)|where\s+are\s+you\s+looking|location\s+(?:do\s+you\s+)?prefer|किस\s+(?:इलाके|शहर))`)

	askedPropertyTypeRE = regexp.MustCompile(`(?i)(?:what\s+(?:type|kind)\s+of\s+property|property\s+type|flat\s+or\s+villa|apartment\s+or\s+house|looking\s+for\s+a\s+flat|किस\s+तरह\s+की\s+संपत्ति)`)
)

// Patterns that recognize a user turn supplying a slot. Within the
// window a later match overwrites an earlier one.
var (
	// Capitalized capture keeps "I am looking for..." from being read
	// as a name.
	providedNameRE = regexp.MustCompile(`(?:[Mm]y\s+name\s+is|I\s+am|I'm|[Tt]his\s+is)\s+([A-Z][a-zA-Z]+)`)

	// Bare amounts after a budget mention; the extractor cascades only
	// catch currency- or unit-tagged numbers.
	providedBudgetRE = regexp.MustCompile(`(?i)budget\s*(?:is|:)?\s*(?:₹|rs\.?|inr)?\s*([0-9][0-9,]*)`)

	providedLocationRE = regexp.MustCompile(`(?i)(?:interested\s+in|looking\s+(?:in|at|around)|prefer|location\s+is|area\s+is|place\s+is)\s+([A-Za-z][A-Za-z ]*?)(?:[,.!?;]|$)`)
)

// MineHistory scans the most recent turns (bounded window, oldest
// first) and reports which slots the assistant already asked about and
// which facts the user already gave. Pure function over the supplied
// turns; nothing is persisted.
func MineHistory(turns []Turn) HistoryDigest {
	var digest HistoryDigest

	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}

	for _, turn := range turns {
		switch turn.Role {
		case "assistant":
			mineAssistantTurn(turn.Text, &digest)
		case "user":
			mineUserTurn(turn.Text, &digest)
		}
	}

	return digest
}

func mineAssistantTurn(text string, digest *HistoryDigest) {
	if askedNameRE.MatchString(text) {
		digest.AskedName = true
	}
	if askedBudgetRE.MatchString(text) {
		digest.AskedBudget = true
	}
	if askedLocationRE.MatchString(text) {
		digest.AskedLocation = true
	}
	if askedPropertyTypeRE.MatchString(text) {
		digest.AskedPropertyType = true
	}
}

func mineUserTurn(text string, digest *HistoryDigest) {
	if m := providedNameRE.FindStringSubmatch(text); m != nil {
		digest.Provided.Name = m[1]
	}

	if budget := extractBudget(text); budget != "" {
		digest.Provided.Budget = budget
	} else if m := providedBudgetRE.FindStringSubmatch(text); m != nil {
		digest.Provided.Budget = stripSeparators(m[1])
	}

	if propType := extractPropertyType(text); propType != "" {
		digest.Provided.PropertyType = propType
	}

	if m := providedLocationRE.FindStringSubmatch(text); m != nil {
		digest.Provided.Location = trimSlot(m[1])
	} else if loc := gazetteerLocation(text); loc != "" {
		digest.Provided.Location = loc
	}
}

// gazetteerLocation reuses the city gazetteer for loose location
// mentions that lack a preposition.
func gazetteerLocation(text string) string {
	lower := strings.ToLower(text)
	for i, pattern := range cityPatterns {
		if pattern.MatchString(lower) {
			return knownCities[i]
		}
	}
	return ""
}
