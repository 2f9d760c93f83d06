package harvest

import (
	"fmt"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an upstream error body is retained.
// Prevents sensitive data leakage and unbounded error strings.
const maxErrorBody = 500

// ValidationError reports input that failed local checks before any
// request was sent. Problems are collected in field declaration order so
// a caller sees every violation at once.
type ValidationError struct {
	Problems []string
}

// Error joins all problems into a single message.
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// APIError reports a non-2xx response from the Harvest API.
// Message is the user-facing translation of the status code; Body holds
// the raw (truncated) response payload for diagnostics.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
	RetryAfter string
}

// Error returns the translated message.
func (e *APIError) Error() string {
	return e.Message
}

// RequestError reports a failure to complete the HTTP exchange itself:
// transport errors, cancelled contexts, or a response body that could
// not be decoded into the expected shape.
type RequestError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// newAPIError translates an upstream status code into the fixed error
// vocabulary. The mapping is deliberate and stable: agent-facing error
// text is part of the tool contract.
func newAPIError(statusCode int, body []byte, retryAfter string) *APIError {
	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > maxErrorBody {
		trimmed = trimmed[:maxErrorBody]
	}

	var message string
	switch statusCode {
	case http.StatusUnauthorized:
		message = "Authentication failed. Check your Harvest access token and account ID"
	case http.StatusForbidden:
		message = "Permission denied. Your account cannot perform this operation"
	case http.StatusNotFound:
		message = "Resource not found"
	case http.StatusUnprocessableEntity:
		message = "Validation failed: " + trimmed
	case http.StatusTooManyRequests:
		after := retryAfter
		if after == "" {
			after = "unknown"
		}
		message = fmt.Sprintf("Rate limit exceeded. Retry after %s seconds", after)
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		message = "Harvest API server error. Please try again later"
	default:
		message = fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	}

	return &APIError{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Message:    message,
		Body:       trimmed,
		RetryAfter: retryAfter,
	}
}
