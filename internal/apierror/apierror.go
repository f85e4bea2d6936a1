// Package apierror decodes the collaborator API's error envelope and maps
// HTTP status codes onto the client's error taxonomy. Every non-2xx response
// from the API surfaces through this package so that callers can branch with
// errors.Is instead of inspecting raw status codes.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for the client's error taxonomy. APIError unwraps to one of
// these based on its status code.
var (
	// ErrUnauthorized means the credential is absent, invalid or expired. The session
	// must be cleared and the user sent back to the login surface.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrForbidden means the credential is valid but lacks the admin role.
	// Rendered as an access-denied state, never a redirect.
	ErrForbidden = errors.New("admin privileges required")

	// ErrValidation means the server rejected a create/update payload. The
	// server's message must reach the user verbatim.
	ErrValidation = errors.New("validation failed")
)

// APIError is a non-2xx response from the collaborator API.
type APIError struct {
	StatusCode int
	Detail     string // server-reported message, verbatim; may be empty
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return ErrValidation
	default:
		return nil
	}
}

// envelope is the API's canonical error body: { "error": "..." }.
type envelope struct {
	Error string `json:"error"`
}

// FromResponse builds the error for a non-2xx response. A malformed or empty
// body is tolerated; the status code alone still classifies the failure.
func FromResponse(statusCode int, body []byte) error {
	var env envelope
	if len(body) > 0 {
		_ = json.Unmarshal(body, &env)
	}
	return &APIError{StatusCode: statusCode, Detail: env.Error}
}
