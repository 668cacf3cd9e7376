package masedb

import (
	"errors"
	"fmt"

	"github.com/masedb/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrBadRequest is returned for invalid request parameters (400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the API key is missing or invalid (401).
	ErrUnauthorized = errors.New("missing or invalid API key")

	// ErrForbidden is returned when the API key lacks permissions (403).
	ErrForbidden = errors.New("insufficient permissions")

	// ErrNotFound is returned when a collection, document or transaction
	// does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a resource already exists (409).
	ErrConflict = errors.New("resource already exists")

	// ErrValidation is returned when the server rejects the data (422).
	ErrValidation = errors.New("data validation error")

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInternal is returned for server-side failures (500).
	ErrInternal = errors.New("internal server error")

	// ErrUnavailable is returned when the service is temporarily down (503).
	ErrUnavailable = errors.New("service temporarily unavailable")
)

// Error is the single error kind returned by the client. Exactly one of
// three sources produces it:
//
//   - a non-2xx response with a structured error body, carrying the body's
//     code, message and details;
//   - a non-2xx response without one, carrying the generic message
//     "HTTP <status>: <body>" (StatusCode set, Code empty);
//   - a transport or protocol failure (StatusCode zero, Err set for
//     transport failures).
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
	Err        error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching. The server's machine
// error code takes precedence; the HTTP status is the fallback for responses
// without a structured error body.
func (e *Error) Is(target error) bool {
	if s := sentinelForCode(e.Code); s != nil {
		return target == s
	}
	if s := sentinelForStatus(e.StatusCode); s != nil {
		return target == s
	}
	return false
}

func sentinelForCode(code string) error {
	switch code {
	case "BAD_REQUEST":
		return ErrBadRequest
	case "UNAUTHORIZED":
		return ErrUnauthorized
	case "FORBIDDEN":
		return ErrForbidden
	case "NOT_FOUND":
		return ErrNotFound
	case "CONFLICT":
		return ErrConflict
	case "VALIDATION_ERROR":
		return ErrValidation
	case "RATE_LIMIT":
		return ErrRateLimited
	case "INTERNAL_ERROR":
		return ErrInternal
	case "SERVICE_UNAVAILABLE":
		return ErrUnavailable
	default:
		return nil
	}
}

func sentinelForStatus(status int) error {
	switch status {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	case 422:
		return ErrValidation
	case 429:
		return ErrRateLimited
	case 500:
		return ErrInternal
	case 503:
		return ErrUnavailable
	default:
		return nil
	}
}

// wrapError converts internal API errors to the public Error type so that
// errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &Error{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
			Details:    apiErr.Details,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &Error{
			Message: fmt.Sprintf("request failed: %v", netErr.Err),
			Err:     netErr.Err,
		}
	}

	var protoErr *api.ProtocolError
	if errors.As(err, &protoErr) {
		return &Error{Message: protoErr.Message}
	}

	return err
}
