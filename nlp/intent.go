package nlp

import (
	"regexp"
	"strings"
)

// Slot extraction cascades. Each slot has an ordered list of patterns;
// the first match wins and unmatched slots stay empty.
var (
	// "within <digits>" is a budget comparator, not a location; the
	// capture's leading letter keeps the two apart.
	locationPrepositionRE = regexp.MustCompile(`(?i)\b(?:in|at|near|around|within)\s+([a-zA-Z][a-zA-Z '.]*?)(?:\s+(?:for|under|below|above|over|with|within)\b|[,.!?;]|$)`)
	locationSuffixRE      = regexp.MustCompile(`(?i)\b([a-zA-Z][a-zA-Z ]{2,40}?)\s+(?:area|locality|neighbourhood|neighborhood|sector|colony)\b`)

	budgetCurrencyRE   = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s*([0-9][0-9,]*)`)
	budgetUnitRE       = regexp.MustCompile(`(?i)\b([0-9][0-9,]*)\s*(?:lakhs?|lacs?|crores?|cr|k|l)\b`)
	budgetComparatorRE = regexp.MustCompile(`(?i)\b(?:under|below|above|over|upto|up to|within)\s*(?:₹|rs\.?|inr)?\s*([0-9][0-9,]*)`)
	budgetBetweenRE    = regexp.MustCompile(`(?i)\bbetween\s*(?:₹|rs\.?|inr)?\s*([0-9][0-9,]*)\s*(?:and|to|-)\s*(?:₹|rs\.?|inr)?\s*[0-9][0-9,]*`)

	bedroomNumericRE = regexp.MustCompile(`(?i)\b([0-9]+)\s*(?:bhk|bedrooms?|beds?|rk)\b`)
	bedroomWordRE    = regexp.MustCompile(`(?i)\b(one|two|three|four|five|six|seven|eight|nine|ten|single|double|triple)[\s-]*(?:bhk|bedrooms?|beds?)\b`)
)

// cityPatterns gives each gazetteer city a word-boundary pattern so
// short names don't match inside longer words.
var cityPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(knownCities))
	for _, city := range knownCities {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(city)+`\b`))
	}
	return patterns
}()

// ExtractIntent pulls the structured slots out of a free-form query.
// Slots already filled in known are copied verbatim and never
// re-derived; everything else runs through its extraction cascade.
// The function is total: unmatched slots stay empty, no errors.
func ExtractIntent(query string, known Intent) Intent {
	intent := Intent{
		Location:        known.Location,
		Budget:          known.Budget,
		PropertyType:    known.PropertyType,
		TransactionType: known.TransactionType,
		BedroomCount:    known.BedroomCount,
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return intent
	}

	if intent.Location == "" {
		intent.Location = extractLocation(query)
	}
	if intent.Budget == "" {
		intent.Budget = extractBudget(query)
	}
	if intent.PropertyType == "" {
		intent.PropertyType = extractPropertyType(query)
	}
	if intent.TransactionType == "" {
		intent.TransactionType = extractTransactionType(query)
	}
	if intent.BedroomCount == "" {
		intent.BedroomCount = extractBedroomCount(query)
	}

	return intent
}

func extractLocation(query string) string {
	if m := locationPrepositionRE.FindStringSubmatch(query); m != nil {
		return trimSlot(m[1])
	}
	if m := locationSuffixRE.FindStringSubmatch(query); m != nil {
		return trimSlot(m[1])
	}
	for i, pattern := range cityPatterns {
		if pattern.MatchString(query) {
			return knownCities[i]
		}
	}
	return ""
}

func extractBudget(query string) string {
	for _, pattern := range []*regexp.Regexp{budgetCurrencyRE, budgetUnitRE, budgetComparatorRE, budgetBetweenRE} {
		if m := pattern.FindStringSubmatch(query); m != nil {
			return stripSeparators(m[1])
		}
	}
	return ""
}

func extractPropertyType(query string) string {
	lower := strings.ToLower(query)
	for _, propType := range propertyTypes {
		if strings.Contains(lower, propType) {
			return propType
		}
	}
	return ""
}

func extractTransactionType(query string) string {
	lower := strings.ToLower(query)
	for _, term := range buyTerms {
		if strings.Contains(lower, term) {
			return "buy"
		}
	}
	for _, term := range rentTerms {
		if strings.Contains(lower, term) {
			return "rent"
		}
	}
	return ""
}

func extractBedroomCount(query string) string {
	if m := bedroomNumericRE.FindStringSubmatch(query); m != nil {
		return m[1]
	}
	if m := bedroomWordRE.FindStringSubmatch(query); m != nil {
		return wordNumbers[strings.ToLower(m[1])]
	}
	return ""
}

// trimSlot strips surrounding whitespace and punctuation from a
// captured slot value.
func trimSlot(s string) string {
	return strings.Trim(s, " \t\n,.!?;:'\"")
}

// stripSeparators drops thousands separators from a captured amount.
func stripSeparators(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
