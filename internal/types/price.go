// README: Common price value object used across modules.
package types

import "fmt"

// Price is a display-oriented amount. Amount is a decimal value in the
// given ISO currency; zero Amount with empty Currency means "unknown".
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Known reports whether the price carries a usable value.
func (p Price) Known() bool {
	return p.Currency != ""
}

// Display renders the price for user-facing text, falling back to a
// neutral placeholder when no bookable amount exists.
func (p Price) Display() string {
	if !p.Known() {
		return "Price on request"
	}
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}
