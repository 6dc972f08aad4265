// README: Per-intent structural and semantic validation of extracted parameters.
package validation

import (
	"fmt"
	"time"

	"tripdesk/internal/modules/intent"
)

// Result is the outcome of validating one parameter bag.
// Errors block the request; warnings are advisory and paired with an
// auto-corrected value; suggestions feed clarification prompts.
type Result struct {
	IsValid     bool
	Errors      []string
	Warnings    []string
	Suggestions []string
}

func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) addSuggestion(s string) {
	r.Suggestions = append(r.Suggestions, s)
}

const dateLayout = "2006-01-02"

// validDate reports whether s is a well-formed, calendar-valid YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

var travelClasses = map[string]bool{"economy": true, "business": true, "first": true}

// Validate applies the per-intent rule set. Values that can be repaired
// (unknown travel class, missing adult count) are corrected in place and
// reported as warnings rather than errors.
func Validate(p *intent.Parameters) Result {
	var res Result
	switch p.Intent {
	case intent.IntentFlightSearch:
		validateFlight(p, &res)
	case intent.IntentHotelSearch, intent.IntentPlaceSearch:
		validateLodgingOrPlace(p, &res)
	case intent.IntentTripPlanning:
		// Destination resolution belongs to the trip-plan parser.
	case intent.IntentGeneralQuestion:
		// Never blocks; nothing to check.
	default:
		// Unrecognized intents were coerced upstream; treat like general_question.
	}
	res.IsValid = len(res.Errors) == 0
	return res
}

func validateFlight(p *intent.Parameters, res *Result) {
	if p.Departure == "" {
		res.addError("departure is required for a flight search")
		res.addSuggestion("Which city or airport are you flying from?")
	}
	if p.Destination == "" {
		res.addError("destination is required for a flight search")
		res.addSuggestion("Where would you like to fly to?")
	}
	if p.OutboundDate == "" {
		res.addError("outbound date is required for a flight search")
		res.addSuggestion("What date would you like to depart (YYYY-MM-DD)?")
	} else if !validDate(p.OutboundDate) {
		res.addError("outbound date %q is not a valid YYYY-MM-DD date", p.OutboundDate)
	}

	if p.ReturnDate != "" {
		if !validDate(p.ReturnDate) {
			res.addError("return date %q is not a valid YYYY-MM-DD date", p.ReturnDate)
		} else if validDate(p.OutboundDate) {
			out, _ := time.Parse(dateLayout, p.OutboundDate)
			ret, _ := time.Parse(dateLayout, p.ReturnDate)
			if !ret.After(out) {
				res.addError("return date %s must be after the outbound date %s", p.ReturnDate, p.OutboundDate)
			}
		}
	}

	switch {
	case p.Adults == 0:
		p.Adults = 1
		res.addWarning("adult count missing, defaulting to 1")
	case p.Adults < 1 || p.Adults > 9:
		res.addError("adults must be between 1 and 9, got %d", p.Adults)
	}
	if p.Children < 0 || p.Children > 8 {
		res.addError("children must be between 0 and 8, got %d", p.Children)
	}

	if p.TravelClass != "" && !travelClasses[p.TravelClass] {
		res.addWarning("unknown travel class %q, using economy", p.TravelClass)
		p.TravelClass = "economy"
	}
}

func validateLodgingOrPlace(p *intent.Parameters, res *Result) {
	// Hotel check-in/check-out gaps are handled by the hotel handler with a
	// dedicated clarification path, not a hard validation error here.
	if p.Destination == "" && p.Query == "" {
		res.addError("a destination or a search query is required")
		res.addSuggestion("Which city or place should I search in?")
	}
}
