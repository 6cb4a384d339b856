package api

import (
	"errors"
	"fmt"
)

// Request error taxonomy. Every failed call maps to exactly one of these so
// callers can translate outcomes into user-facing notifications without
// inspecting status codes themselves.
var (
	// ErrBadRequest indicates the backend rejected the payload (HTTP 400)
	ErrBadRequest = errors.New("invalid request")

	// ErrForbidden indicates insufficient privileges (HTTP 403)
	ErrForbidden = errors.New("insufficient privileges")

	// ErrNotFound indicates the referenced record no longer exists (HTTP 404)
	ErrNotFound = errors.New("record not found")

	// ErrConnectivity indicates the request never completed (transport failure)
	ErrConnectivity = errors.New("could not connect to server")
)

// StatusError carries any other non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
