package nlp

// Fixed keyword and domain tables used across the pipeline. Tables are
// ordered where order matters (first match wins); treat them as
// configuration data and keep algorithm code free of literals.

// propertyTypes is the closed vocabulary for the property-type slot,
// tested in order by substring containment.
var propertyTypes = []string{
	"apartment",
	"flat",
	"villa",
	"bungalow",
	"penthouse",
	"duplex",
	"studio",
	"house",
	"plot",
	"land",
	"office",
	"shop",
	"commercial",
	"warehouse",
	"pg",
}

// propertyTypeSynonyms maps a property type to related terms that count
// as a weaker match during ranking.
var propertyTypeSynonyms = map[string][]string{
	"apartment":  {"flat", "condo", "unit"},
	"flat":       {"apartment", "condo", "unit"},
	"villa":      {"bungalow", "independent house", "row house"},
	"bungalow":   {"villa", "independent house"},
	"house":      {"home", "independent house", "villa"},
	"plot":       {"land", "site"},
	"land":       {"plot", "site"},
	"office":     {"commercial", "workspace"},
	"shop":       {"commercial", "retail", "showroom"},
	"commercial": {"office", "shop", "retail"},
	"studio":     {"1 rk", "single room"},
	"penthouse":  {"duplex", "apartment"},
	"pg":         {"paying guest", "hostel", "shared room"},
}

// buyTerms and rentTerms determine the transaction-type slot. Buy terms
// are checked first.
var buyTerms = []string{"buy", "purchase", "buying", "sale", "sell", "invest", "own"}

var rentTerms = []string{"rent", "rental", "renting", "lease", "tenant", "to let", "to-let"}

// knownCities is the gazetteer for location fallback, matched
// case-insensitively as whole words. Compound names precede the city
// they contain so first match picks the longer form.
var knownCities = []string{
	"navi mumbai", "mumbai", "new delhi", "delhi", "bangalore", "bengaluru",
	"hyderabad", "chennai", "kolkata", "pune", "ahmedabad", "surat",
	"jaipur", "lucknow", "nagpur", "indore", "thane", "bhopal",
	"visakhapatnam", "patna", "vadodara", "ghaziabad", "greater noida",
	"noida", "gurgaon", "gurugram", "faridabad", "chandigarh",
	"kochi", "coimbatore", "mysore", "nashik", "rajkot", "goa",
}

// Portal domain tiers for source scoring. Tiers are mutually
// exclusive; premium is checked first.
var (
	premiumPortals = []string{"99acres.com", "magicbricks.com", "housing.com", "nobroker.in"}

	standardPortals = []string{
		"squareyards.com", "commonfloor.com", "makaan.com", "proptiger.com",
		"nestaway.com", "homes247.in",
	}

	otherPortals = []string{
		"olx.in", "quikr.com", "sulekha.com", "realestateindia.com",
		"indiaproperty.com", "zricks.com",
	}
)

// trustedPortals is the allow-list appended to enhanced queries as a
// site: disjunction to bias external search.
var trustedPortals = []string{
	"99acres.com", "magicbricks.com", "housing.com",
	"nobroker.in", "squareyards.com", "commonfloor.com",
}

// realEstateKeywords decide whether a query already looks like a
// property search; the enhancer appends a qualifier when none appear.
var realEstateKeywords = []string{
	"property", "real estate", "flat", "apartment", "house", "villa",
	"bhk", "plot", "realty", "listing",
}

// wordNumbers maps spelled-out counts to digit strings for the bedroom
// slot.
var wordNumbers = map[string]string{
	"one": "1", "two": "2", "three": "3", "four": "4", "five": "5",
	"six": "6", "seven": "7", "eight": "8", "nine": "9", "ten": "10",
	"single": "1", "double": "2", "triple": "3",
}

// detailTerms is the broad vocabulary used for the detail-term bonus
// during ranking (distinct from the detail regexes).
var detailTerms = []string{
	"bhk", "sq ft", "sqft", "sq.ft", "carpet area", "built-up",
	"amenities", "furnished", "semi-furnished", "unfurnished",
	"parking", "lift", "security", "garden", "gym", "pool",
	"clubhouse", "balcony", "school", "hospital", "metro", "market",
	"park", "vastu", "power backup", "gated",
}

// closingPhrases signal that the user is wrapping up the conversation.
// Matched case-insensitively against short whole messages.
var closingPhrases = []string{
	"thanks", "thank you", "thankyou", "thx", "ty",
	"bye", "goodbye", "good bye", "see you", "ok thanks", "okay thanks",
	"great, thanks", "got it", "that's all", "thats all", "no thanks",
	"धन्यवाद", "शुक्रिया", "ठीक है",
	"ధన్యవాదాలు", "நன்றி", "ধন্যবাদ", "આભાર",
}

// thanksMarkers detect an existing courtesy line so the normalizer does
// not append a second one.
var thanksMarkers = []string{
	"thank", "धन्यवाद", "शुक्रिया", "நன்றி", "ధన్యవాదాలు", "ধন্যবাদ", "આભાર",
}

// closingCourtesy is appended when a conversation ends without one.
const closingCourtesy = "Thank you for chatting with us. Feel free to reach out anytime!"
