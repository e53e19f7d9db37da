package joke

import (
	"errors"
	"fmt"
)

// FailureMessage is shown for every non-success status regardless of the
// server's own error detail.
const FailureMessage = "Failed to generate joke"

// ErrInvalidPayload is returned when the success body is valid JSON but not a
// JSON object (for example `null`).
var ErrInvalidPayload = errors.New("joke: response payload is not an object")

// StatusError reports a non-2xx reply from the generation endpoint. Body keeps
// the raw server reply for diagnostics; it is never part of Error().
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return FailureMessage
}

// Detail returns a diagnostic string including the status code and body.
func (e *StatusError) Detail() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// IsStatusError reports whether err wraps a StatusError and returns it.
func IsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
