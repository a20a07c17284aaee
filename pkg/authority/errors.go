package authority

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse is returned when a response body cannot be used.
var ErrMalformedResponse = errors.New("malformed response")

// StatusError is returned when the authority answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsSessionNotFound reports whether the authority no longer knows the session.
func IsSessionNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
