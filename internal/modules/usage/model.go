package usage

import "errors"

// ErrQuotaExhausted is returned when a user has no assistant requests left for the current month.
var ErrQuotaExhausted = errors.New("monthly request quota exhausted")

// DefaultAllowance is the number of assistant requests granted per month.
const DefaultAllowance = 200
