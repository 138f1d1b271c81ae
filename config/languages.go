package config

// LanguageInfo describes one supported language for prompt building
// and reply templating.
type LanguageInfo struct {
	Tag        string
	Name       string
	NativeName string

	// Greeting is the canned first-contact line in this language.
	Greeting string
}

// languageCatalog is the single immutable lookup for language names and
// message templates. It is constructed once at process start; callers
// receive it by reference and must not mutate it.
var languageCatalog = map[string]LanguageInfo{
	"en": {Tag: "en", Name: "English", NativeName: "English",
		Greeting: "Hello! I can help you find the right property. What are you looking for?"},
	"hi": {Tag: "hi", Name: "Hindi", NativeName: "हिन्दी",
		Greeting: "नमस्ते! मैं आपको सही प्रॉपर्टी खोजने में मदद कर सकता हूँ।"},
	"mr": {Tag: "mr", Name: "Marathi", NativeName: "मराठी",
		Greeting: "नमस्कार! मी तुम्हाला योग्य मालमत्ता शोधण्यात मदत करू शकतो."},
	"gu": {Tag: "gu", Name: "Gujarati", NativeName: "ગુજરાતી",
		Greeting: "નમસ્તે! હું તમને યોગ્ય મિલકત શોધવામાં મદદ કરી શકું છું."},
	"bn": {Tag: "bn", Name: "Bengali", NativeName: "বাংলা",
		Greeting: "নমস্কার! আমি আপনাকে সঠিক সম্পত্তি খুঁজে পেতে সাহায্য করতে পারি।"},
	"ta": {Tag: "ta", Name: "Tamil", NativeName: "தமிழ்",
		Greeting: "வணக்கம்! சரியான சொத்தை கண்டுபிடிக்க நான் உதவ முடியும்."},
	"te": {Tag: "te", Name: "Telugu", NativeName: "తెలుగు",
		Greeting: "నమస్కారం! సరైన ఆస్తిని కనుగొనడంలో నేను సహాయం చేయగలను."},
	"kn": {Tag: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ",
		Greeting: "ನಮಸ್ಕಾರ! ಸರಿಯಾದ ಆಸ್ತಿಯನ್ನು ಹುಡುಕಲು ನಾನು ಸಹಾಯ ಮಾಡಬಲ್ಲೆ."},
	"ml": {Tag: "ml", Name: "Malayalam", NativeName: "മലയാളം",
		Greeting: "നമസ്കാരം! ശരിയായ പ്രോപ്പർട്ടി കണ്ടെത്താൻ എനിക്ക് സഹായിക്കാനാകും."},
	"pa": {Tag: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ",
		Greeting: "ਸਤ ਸ੍ਰੀ ਅਕਾਲ! ਮੈਂ ਤੁਹਾਨੂੰ ਸਹੀ ਜਾਇਦਾਦ ਲੱਭਣ ਵਿੱਚ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ।"},
	"ur": {Tag: "ur", Name: "Urdu", NativeName: "اردو",
		Greeting: "السلام علیکم! میں آپ کو صحیح پراپرٹی تلاش کرنے میں مدد کر سکتا ہوں۔"},
}

// GetLanguage returns the catalog entry for a tag, falling back to
// English for anything unknown.
func GetLanguage(tag string) LanguageInfo {
	if info, ok := languageCatalog[tag]; ok {
		return info
	}
	return languageCatalog["en"]
}

// SupportedLanguages lists every catalog tag.
func SupportedLanguages() []string {
	tags := make([]string, 0, len(languageCatalog))
	for tag := range languageCatalog {
		tags = append(tags, tag)
	}
	return tags
}
