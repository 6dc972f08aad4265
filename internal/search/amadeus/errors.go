package amadeus

import (
	"errors"
	"fmt"
)

// APIError is a diagnostic returned by the provider itself. The flight
// handler surfaces these verbatim to the user instead of wrapping them,
// so the provider's own message (e.g. an invalid-date detail) is visible.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[amadeus %d/%s] %s", e.StatusCode, e.Code, e.Detail)
}

// IsProviderError reports whether err carries the provider marker.
func IsProviderError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
