package api

import (
	"fmt"
)

// APIError represents a non-2xx HTTP response from the MaseDB API.
//
// When the server returns a structured error body
// ({"error": {"code", "message", "details"}}), Code, Message and Details
// carry the body's fields. Otherwise Message is "HTTP <status>: <body>".
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure (connection refused,
// DNS failure, timeout). Raw transport errors are never returned directly.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a 2xx response whose body violates the API
// contract: a non-JSON content type or an unparseable JSON body.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}
