// Package nlp implements the heuristic language-understanding pipeline
// behind the assistant: language detection, intent extraction, search
// query enhancement, result ranking, conversation-history mining and
// response cleanup. Everything in this package is a pure function over
// its inputs; no I/O, no shared state, no randomness.
package nlp

// Language is a detected language tag from the closed set below.
type Language string

const (
	LangEnglish   Language = "en"
	LangHindi     Language = "hi"
	LangMarathi   Language = "mr"
	LangGujarati  Language = "gu"
	LangBengali   Language = "bn"
	LangTamil     Language = "ta"
	LangTelugu    Language = "te"
	LangKannada   Language = "kn"
	LangMalayalam Language = "ml"
	LangPunjabi   Language = "pa"
	LangUrdu      Language = "ur"
)

// Intent holds the structured slots extracted from a property query.
// An empty string means the slot was not found. Budget and
// BedroomCount are normalized digit strings (separators stripped).
type Intent struct {
	Location        string `json:"location,omitempty"`
	Budget          string `json:"budget,omitempty"`
	PropertyType    string `json:"property_type,omitempty"`
	TransactionType string `json:"transaction_type,omitempty"` // "buy", "rent" or ""
	BedroomCount    string `json:"bedroom_count,omitempty"`
}

// IsEmpty reports whether no slot was filled.
func (in Intent) IsEmpty() bool {
	return in.Location == "" && in.Budget == "" && in.PropertyType == "" &&
		in.TransactionType == "" && in.BedroomCount == ""
}

// StructuredMetadata carries the structured fields a search provider
// attaches to a hit (Google CSE pagemap style).
type StructuredMetadata struct {
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price,omitempty"`
	Name        string `json:"name,omitempty"`
	HasMetatags bool   `json:"has_metatags,omitempty"`
	HasProduct  bool   `json:"has_product,omitempty"`
	HasOffer    bool   `json:"has_offer,omitempty"`
}

// SearchHit is one raw web-search result. Score is assigned during
// ranking and is not part of the hit's identity.
type SearchHit struct {
	Title    string              `json:"title"`
	Snippet  string              `json:"snippet"`
	Link     string              `json:"link"`
	Metadata *StructuredMetadata `json:"metadata,omitempty"`
	Score    int                 `json:"score,omitempty"`
}

// Turn is one prior conversation message, tagged by role.
type Turn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// ProvidedInfo mirrors the intent slots a user already supplied in
// earlier turns.
type ProvidedInfo struct {
	Name         string `json:"name,omitempty"`
	Budget       string `json:"budget,omitempty"`
	PropertyType string `json:"property_type,omitempty"`
	Location     string `json:"location,omitempty"`
}

// HistoryDigest summarizes the recent conversation window: which slots
// the assistant already asked about and which facts the user already
// gave. Derived fresh per request, never persisted.
type HistoryDigest struct {
	AskedName         bool         `json:"asked_name"`
	AskedBudget       bool         `json:"asked_budget"`
	AskedLocation     bool         `json:"asked_location"`
	AskedPropertyType bool         `json:"asked_property_type"`
	Provided          ProvidedInfo `json:"provided"`
}
