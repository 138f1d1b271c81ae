package nlp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxResults caps the ranked list returned to the prompt builder.
const maxResults = 5

// Scoring weights. The rubric is additive except the transaction
// mismatch penalty and the off-topic penalty, which can push a hit's
// total negative.
const (
	scorePremiumPortal  = 20
	scoreStandardPortal = 15
	scoreOtherPortal    = 5

	scoreTypeInTitle   = 12
	scoreTypeInSnippet = 8
	scoreTypeSynonym   = 6

	scoreLocationInTitle   = 15
	scoreLocationInSnippet = 10
	scoreLocationToken     = 5

	scorePricePresent = 8

	scoreBedroomExact    = 15
	scoreBedroomSpacious = 3

	scoreRecency = 5

	scoreTransactionMatch    = 10
	scoreTransactionMismatch = -15

	scoreOffTopic = -20

	scoreMetatags = 5
	scoreProduct  = 8
	scoreOffer    = 5
	scoreImage    = 5

	scoreCompleteness = 5
)

var (
	pricePatterns = []*regexp.Regexp{
		regexp.MustCompile(`₹\s*[0-9][0-9,]*`),
		regexp.MustCompile(`(?i)\b[0-9][0-9,]*(?:\.[0-9]+)?\s*(?:lakhs?|lacs?|crores?|cr)\b`),
		regexp.MustCompile(`(?i)\brs\.?\s*[0-9][0-9,]*`),
		regexp.MustCompile(`(?i)\bprice[sd]?\b`),
		regexp.MustCompile(`(?i)\bemi\b`),
	}

	detailPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b[0-9][0-9,]*\s*(?:sq\.?\s?ft|sqft|sq\.?\s?m|square\s+feet)\b`),
		regexp.MustCompile(`(?i)\b(?:semi[\s-]?furnished|unfurnished|furnished)\b`),
		regexp.MustCompile(`(?i)\bamenit(?:y|ies)\b`),
		regexp.MustCompile(`(?i)\bparking\b`),
		regexp.MustCompile(`(?i)\b(?:floor|storey)\b`),
		regexp.MustCompile(`(?i)\bfacing\b`),
		regexp.MustCompile(`(?i)\bpossession\b`),
		regexp.MustCompile(`(?i)\bcarpet\s+area\b`),
		regexp.MustCompile(`(?i)\bgated\b`),
		regexp.MustCompile(`(?i)\b(?:lift|elevator)\b`),
	}

	recencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bnew\s+launch\b`),
		regexp.MustCompile(`(?i)\bready\s+to\s+move\b`),
		regexp.MustCompile(`(?i)\b(?:just|newly)\s+listed\b`),
		regexp.MustCompile(`(?i)\b[0-9]+\s*(?:minutes?|hours?|days?)\s+ago\b`),
		regexp.MustCompile(`(?i)\bunder\s+construction\b`),
		regexp.MustCompile(`(?i)\bpossession\s+soon\b`),
	}

	realEstateVocabRE = regexp.MustCompile(`(?i)\b(?:property|properties|real\s+estate|realty|flat|apartment|house|home|villa|bungalow|bhk|plot|land|rent|rental|sale|resale|housing|residential|commercial|builder|project|township)\b`)

	spaciousRE = regexp.MustCompile(`(?i)\b(?:spacious|large|big|roomy|expansive)\b`)
)

// ScoreResult applies the weighted relevance rubric to one hit.
// Tiers and graduated bands inside a component are mutually exclusive;
// components themselves are additive.
func ScoreResult(hit SearchHit, query string, intent Intent) int {
	title := strings.ToLower(hit.Title)
	snippet := strings.ToLower(hit.Snippet)
	combined := title + " " + snippet

	score := scoreSourceDomain(strings.ToLower(hit.Link))
	score += scorePropertyType(title, snippet, intent.PropertyType)
	score += scoreLocation(title, snippet, intent.Location)

	for _, pattern := range pricePatterns {
		if pattern.MatchString(combined) {
			score += scorePricePresent
			break
		}
	}

	score += scoreBedrooms(combined, intent.BedroomCount)
	score += scoreDetailRichness(combined)

	for _, pattern := range recencyPatterns {
		if pattern.MatchString(combined) {
			score += scoreRecency
			break
		}
	}

	score += scoreTransaction(combined, intent.TransactionType)

	if !realEstateVocabRE.MatchString(combined) {
		score += scoreOffTopic
	}

	score += scoreDetailTerms(combined)
	score += scoreMetadata(hit.Metadata)

	if len(hit.Title) > 20 && len(hit.Snippet) > 50 && len(hit.Link) > 15 {
		score += scoreCompleteness
	}

	return score
}

// RankResults scores every hit against the query's intent, sorts
// descending (stable, so equal scores keep their provider order) and
// returns at most maxResults hits with scores attached.
func RankResults(hits []SearchHit, query string, intent Intent) []SearchHit {
	ranked := make([]SearchHit, len(hits))
	copy(ranked, hits)

	for i := range ranked {
		ranked[i].Score = ScoreResult(ranked[i], query, intent)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

func scoreSourceDomain(link string) int {
	for _, domain := range premiumPortals {
		if strings.Contains(link, domain) {
			return scorePremiumPortal
		}
	}
	for _, domain := range standardPortals {
		if strings.Contains(link, domain) {
			return scoreStandardPortal
		}
	}
	for _, domain := range otherPortals {
		if strings.Contains(link, domain) {
			return scoreOtherPortal
		}
	}
	return 0
}

func scorePropertyType(title, snippet, propType string) int {
	if propType == "" {
		return 0
	}
	propType = strings.ToLower(propType)
	if strings.Contains(title, propType) {
		return scoreTypeInTitle
	}
	if strings.Contains(snippet, propType) {
		return scoreTypeInSnippet
	}
	for _, synonym := range propertyTypeSynonyms[propType] {
		if strings.Contains(title, synonym) || strings.Contains(snippet, synonym) {
			return scoreTypeSynonym
		}
	}
	return 0
}

func scoreLocation(title, snippet, location string) int {
	if location == "" {
		return 0
	}
	location = strings.ToLower(location)
	if strings.Contains(title, location) {
		return scoreLocationInTitle
	}
	if strings.Contains(snippet, location) {
		return scoreLocationInSnippet
	}
	for _, token := range strings.Fields(location) {
		if len(token) <= 3 {
			continue
		}
		if strings.Contains(title, token) || strings.Contains(snippet, token) {
			return scoreLocationToken
		}
	}
	return 0
}

func scoreBedrooms(combined, count string) int {
	if count == "" {
		return 0
	}
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(count) + `\s*(?:bhk|bedrooms?|beds?)\b`)
	if err == nil && pattern.MatchString(combined) {
		return scoreBedroomExact
	}
	if n, convErr := strconv.Atoi(count); convErr == nil && n >= 3 && spaciousRE.MatchString(combined) {
		return scoreBedroomSpacious
	}
	return 0
}

func scoreDetailRichness(combined string) int {
	matched := 0
	for _, pattern := range detailPatterns {
		if pattern.MatchString(combined) {
			matched++
		}
	}
	switch {
	case matched >= 5:
		return 12
	case matched >= 3:
		return 8
	case matched >= 1:
		return 4
	}
	return 0
}

func scoreDetailTerms(combined string) int {
	matched := 0
	for _, term := range detailTerms {
		if strings.Contains(combined, term) {
			matched++
		}
	}
	switch {
	case matched >= 5:
		return 10
	case matched >= 3:
		return 6
	case matched >= 1:
		return 3
	}
	return 0
}

func scoreTransaction(combined, transaction string) int {
	if transaction == "" {
		return 0
	}

	buyHit := containsAny(combined, buyTerms)
	rentHit := containsAny(combined, rentTerms)

	score := 0
	switch transaction {
	case "buy":
		if buyHit {
			score += scoreTransactionMatch
		}
		if rentHit {
			score += scoreTransactionMismatch
		}
	case "rent":
		if rentHit {
			score += scoreTransactionMatch
		}
		if buyHit {
			score += scoreTransactionMismatch
		}
	}
	return score
}

func scoreMetadata(meta *StructuredMetadata) int {
	if meta == nil {
		return 0
	}
	score := 0
	if meta.HasMetatags {
		score += scoreMetatags
	}
	if meta.HasProduct {
		score += scoreProduct
	}
	if meta.HasOffer {
		score += scoreOffer
	}
	if meta.Image != "" {
		score += scoreImage
	}
	return score
}
