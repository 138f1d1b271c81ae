package services

import (
	"fmt"
	"strings"

	"realty-bot/config"
	"realty-bot/nlp"
)

// BuildSystemPrompt assembles the completion provider's system prompt
// from the detected language, the lead's known requirements, the mined
// history and the ranked listings. The history digest is what keeps
// the model from re-asking answered questions.
func BuildSystemPrompt(language nlp.Language, intent nlp.Intent, digest nlp.HistoryDigest, hits []nlp.SearchHit) string {
	lang := config.GetLanguage(string(language))

	var b strings.Builder

	b.WriteString(`You are a professional real estate consultant helping a prospective buyer or tenant.

CORE RESPONSIBILITIES:
1. Understand the customer's property requirements and match them with the listings provided
2. Quote exact prices and details from the listings, never invented ones
3. Collect missing qualification details naturally, one at a time
4. Guide the customer toward a shortlist and a site visit

KEY BEHAVIORS:
- Always be specific with property details (never generic)
- Address concerns proactively and keep replies short
- Build trust through transparency and accuracy`)

	fmt.Fprintf(&b, "\n\nLANGUAGE RULE:\nRespond in %s (%s). Match the customer's language at all times.\n", lang.Name, lang.NativeName)

	b.WriteString("\nKNOWN REQUIREMENTS:\n")
	if intent.IsEmpty() {
		b.WriteString("- Nothing confirmed yet\n")
	} else {
		writeSlot(&b, "Location", intent.Location)
		writeSlot(&b, "Budget", intent.Budget)
		writeSlot(&b, "Property type", intent.PropertyType)
		writeSlot(&b, "Transaction", intent.TransactionType)
		writeSlot(&b, "Bedrooms", intent.BedroomCount)
	}

	b.WriteString("\nCONVERSATION STATE:\n")
	for _, asked := range []struct {
		done bool
		slot string
	}{
		{digest.AskedName, "name"},
		{digest.AskedBudget, "budget"},
		{digest.AskedLocation, "location"},
		{digest.AskedPropertyType, "property type"},
	} {
		if asked.done {
			fmt.Fprintf(&b, "- You already asked for the customer's %s. DO NOT ask again.\n", asked.slot)
		}
	}
	writeProvided(&b, "name", digest.Provided.Name)
	writeProvided(&b, "budget", digest.Provided.Budget)
	writeProvided(&b, "property type", digest.Provided.PropertyType)
	writeProvided(&b, "location", digest.Provided.Location)

	if len(hits) > 0 {
		b.WriteString("\nMATCHING LISTINGS (use only these, do not invent others):\n")
		for i, hit := range hits {
			fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(hit.Title))
			if snippet := strings.TrimSpace(hit.Snippet); snippet != "" {
				fmt.Fprintf(&b, "   %s\n", snippet)
			}
		}
	} else {
		b.WriteString("\nNo matching listings were found for this request; say so honestly and keep qualifying.\n")
	}

	b.WriteString("\nDo not end your reply with a question the customer has already answered.")

	return b.String()
}

func writeSlot(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

func writeProvided(b *strings.Builder, slot, value string) {
	if value != "" {
		fmt.Fprintf(b, "- The customer already gave their %s: %q. Use it, never re-ask.\n", slot, value)
	}
}

// FallbackReply is sent when the completion provider is unavailable.
func FallbackReply(language nlp.Language) string {
	return config.GetLanguage(string(language)).Greeting
}
