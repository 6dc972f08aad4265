package intent

import (
	"fmt"
	"strings"
)

// buildExtractionPrompt constructs the system instruction for the combined
// classify-and-extract call. The catalogue of intents is rendered from the
// fixed definitions table so prompt and validation can never drift apart.
func buildExtractionPrompt(timeContext string) string {
	var b strings.Builder
	b.WriteString("You are the intent-classification core of a travel-planning assistant.\n")
	fmt.Fprintf(&b, "Current time context: %s\n\n", timeContext)
	b.WriteString("Classify the user's latest message into exactly one intent and extract parameters.\n\nSupported intents:\n")

	for _, d := range Definitions() {
		fmt.Fprintf(&b, "- %q: %s\n", d.Intent, d.Description)
		for _, ex := range d.Examples {
			fmt.Fprintf(&b, "    example: %s\n", ex)
		}
	}

	b.WriteString(`
Rules:
- Dates MUST be formatted YYYY-MM-DD. Resolve relative dates ("next Friday") against the time context.
- Keep any 3-letter airport codes from the message verbatim (e.g. "JFK" stays "JFK").
- Do not invent parameters the user never stated.
- Respond with PURE JSON only, no prose, matching this schema:
{
  "intent": "flight_search" | "hotel_search" | "place_search" | "trip_planning" | "general_question",
  "departure": "string, optional",
  "destination": "string, optional",
  "outboundDate": "YYYY-MM-DD, optional",
  "returnDate": "YYYY-MM-DD, optional",
  "adults": integer, optional,
  "children": integer, optional,
  "travelClass": "economy" | "business" | "first", optional,
  "currency": "ISO 4217 code, optional",
  "query": "string, optional",
  "checkInDate": "YYYY-MM-DD, optional",
  "checkOutDate": "YYYY-MM-DD, optional",
  "destinations": ["string", ...], optional
}
`)
	return b.String()
}

// buildReclassifyPrompt is the narrow second-tier request: label only,
// no parameter extraction.
func buildReclassifyPrompt() string {
	var b strings.Builder
	b.WriteString("Classify the travel-assistant message into exactly one of these labels:\n")
	for _, d := range Definitions() {
		fmt.Fprintf(&b, "- %s\n", d.Intent)
	}
	b.WriteString("\nAnswer with the label alone. No punctuation, no explanation.")
	return b.String()
}
