package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the server. Message carries the
// server-provided "message" field when the body had one, otherwise a
// generic description. Unauthorized responses also match ErrUnauthorized
// via errors.Is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
