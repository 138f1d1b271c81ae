package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"english", "I am looking for a 2 BHK flat in Pune", LangEnglish},
		{"hindi", "मुझे पुणे में घर चाहिए", LangHindi},
		{"marathi keyword", "मला पुण्यात घर पाहिजे", LangMarathi},
		{"marathi aahe", "तुमच्याकडे कोणते फ्लॅट आहेत", LangMarathi},
		{"gujarati", "મને ઘર જોઈએ છે", LangGujarati},
		{"bengali", "আমি একটি বাড়ি খুঁজছি", LangBengali},
		{"tamil", "எனக்கு வீடு வேண்டும்", LangTamil},
		{"telugu", "నాకు ఇల్లు కావాలి", LangTelugu},
		{"kannada", "ನನಗೆ ಮನೆ ಬೇಕು", LangKannada},
		{"malayalam", "എനിക്ക് വീട് വേണം", LangMalayalam},
		{"punjabi", "ਮੈਨੂੰ ਘਰ ਚਾਹੀਦਾ ਹੈ", LangPunjabi},
		{"urdu", "مجھے گھر چاہیے", LangUrdu},
		{"empty", "", LangEnglish},
		{"whitespace only", "   \t\n  ", LangEnglish},
		{"numbers and punctuation", "2 + 2 = 4 !!!", LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestDetectLanguageShortScriptRun(t *testing.T) {
	// A run of fewer than three script code points is not enough
	// evidence; mixed text stays English.
	assert.Equal(t, LangEnglish, DetectLanguage("the word घर means house"))
}

func TestDetectLanguageHindiWithoutMarathiKeywords(t *testing.T) {
	// Devanagari without Marathi function words falls through to Hindi.
	assert.Equal(t, LangHindi, DetectLanguage("नमस्ते आपका स्वागत है"))
}
