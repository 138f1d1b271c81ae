package nlp

import "strings"

// realEstateQualifier is appended when the query doesn't already look
// like a property search.
const realEstateQualifier = "real estate property"

// BuildEnhancedQuery composes the search expression sent to the web
// search provider: the original query, any extracted slots not already
// present, and a site: disjunction over the trusted portals. Every
// append is presence-checked, so running the function on its own
// output changes nothing.
func BuildEnhancedQuery(query string, intent Intent) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(query))

	appendIfMissing := func(fragment string) {
		if fragment == "" {
			return
		}
		if !strings.Contains(strings.ToLower(b.String()), strings.ToLower(fragment)) {
			b.WriteString(" ")
			b.WriteString(fragment)
		}
	}

	if !containsAny(strings.ToLower(b.String()), realEstateKeywords) {
		b.WriteString(" ")
		b.WriteString(realEstateQualifier)
	}

	if intent.Location != "" {
		appendIfMissing("in " + intent.Location)
	}
	appendIfMissing(intent.PropertyType)
	if intent.TransactionType != "" {
		appendIfMissing("for " + intent.TransactionType)
	}
	appendIfMissing(intent.Budget)

	// Bias the provider toward the authoritative portals. The first
	// domain doubles as the presence check for the whole clause.
	if !strings.Contains(b.String(), trustedPortals[0]) {
		sites := make([]string, 0, len(trustedPortals))
		for _, domain := range trustedPortals {
			sites = append(sites, "site:"+domain)
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(sites, " OR "))
		b.WriteString(")")
	}

	return b.String()
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
