// errors.go
// ---------
// This file defines the error taxonomy surfaced by the client and the
// classifier that maps an HTTP response to exactly one typed error.
//
// Every failure a caller can observe is one of the types below. APIError
// doubles as the catch-all for statuses without a more specific mapping,
// so there is no untyped fallback: whatever the API returns, the caller
// gets a typed error carrying the original status and raw body.
package questdeck

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FieldError describes a single invalid request parameter reported by the
// API on a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the base error for failures reported by the QuestDeck API.
// It is returned directly for status codes that have no dedicated type.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("questdeck: API error (status %d): %s", e.StatusCode, e.Message)
}

// AuthenticationError is returned for 401 responses.
type AuthenticationError struct {
	APIError
}

// AuthorizationError is returned for 403 responses.
type AuthorizationError struct {
	APIError
}

// NotFoundError is returned for 404 responses.
type NotFoundError struct {
	APIError
}

// ConflictError is returned for 409 responses.
type ConflictError struct {
	APIError
}

// ValidationError is returned for 400 responses. FieldErrors carries the
// per-field problems from the response body, if the API supplied any.
type ValidationError struct {
	APIError
	FieldErrors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return fmt.Sprintf("questdeck: validation failed (status %d): %s", e.StatusCode, e.Message)
	}
	fields := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		fields = append(fields, fe.Field+": "+fe.Message)
	}
	return fmt.Sprintf("questdeck: validation failed (status %d): %s (%s)",
		e.StatusCode, e.Message, strings.Join(fields, "; "))
}

// RateLimitError is returned for 429 responses. RetryAfter and Remaining
// are populated from response headers when present, never from the body.
type RateLimitError struct {
	APIError
	RetryAfter *int // seconds until the limit resets, if advertised
	Remaining  *int // remaining quota in the current window, if advertised
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("questdeck: rate limited (status %d): retry after %ds", e.StatusCode, *e.RetryAfter)
	}
	return fmt.Sprintf("questdeck: rate limited (status %d): %s", e.StatusCode, e.Message)
}

// ServerError is returned for 5xx responses.
type ServerError struct {
	APIError
}

// NetworkError wraps a transport-level failure: the request may never have
// reached the server.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("questdeck: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RequestError reports a client-side request construction failure. It is
// raised before anything is sent over the network.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("questdeck: invalid request: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsUnauthorized reports whether err is an AuthenticationError.
func IsUnauthorized(err error) bool {
	var e *AuthenticationError
	return errors.As(err, &e)
}

// IsForbidden reports whether err is an AuthorizationError.
func IsForbidden(err error) bool {
	var e *AuthorizationError
	return errors.As(err, &e)
}

// IsRateLimited reports whether err is a RateLimitError.
func IsRateLimited(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

// classifyResponse maps a response to nil on success or to exactly one
// typed error. Classification depends only on status, headers, and body,
// never on the request verb.
func classifyResponse(status int, header http.Header, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	base := APIError{
		StatusCode: status,
		Message:    errorMessage(status, body),
		Body:       body,
	}

	switch {
	case status == http.StatusBadRequest:
		return &ValidationError{APIError: base, FieldErrors: fieldErrors(body)}
	case status == http.StatusUnauthorized:
		return &AuthenticationError{APIError: base}
	case status == http.StatusForbidden:
		return &AuthorizationError{APIError: base}
	case status == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case status == http.StatusConflict:
		return &ConflictError{APIError: base}
	case status == http.StatusTooManyRequests:
		info := parseRateLimitHeaders(header)
		return &RateLimitError{APIError: base, RetryAfter: info.RetryAfter, Remaining: info.Remaining}
	case status >= 500:
		return &ServerError{APIError: base}
	default:
		return &base
	}
}

// errorMessage extracts a human-readable message from an error body:
// the JSON "detail" field, then "message", then the raw body text, then
// a plain "HTTP <status>" stand-in.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fmt.Sprintf("HTTP %d", status)
}

func fieldErrors(body []byte) []FieldError {
	var payload struct {
		InvalidParameters []FieldError `json:"invalid_parameters"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return payload.InvalidParameters
}
