package api

import (
	"errors"
	"fmt"
)

// ErrRemoteUnavailable wraps every read failure: transport, non-2xx status or a malformed body
var ErrRemoteUnavailable = errors.New("remote unavailable")

// APIError represents a non-2xx response from the posts endpoint
type APIError struct {
	Message    string
	Body       []byte
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("posts api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
