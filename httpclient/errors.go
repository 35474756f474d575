package httpclient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies HTTP client errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeConnection indicates a connection failure (refused, DNS, proxy).
	ErrCodeConnection
	// ErrCodeStatus indicates the endpoint responded with a non-2xx status.
	ErrCodeStatus
	// ErrCodeRequest indicates the request could not be built (bad URL, body).
	ErrCodeRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeStatus:
		return "status"
	case ErrCodeRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Error is a structured HTTP client error.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Body is the full response body, captured verbatim even on error
	// statuses so diagnostic text from the endpoint is preserved.
	Body []byte
	// Message describes the error.
	Message string
	// Retryable hints whether retrying could succeed. The caller owns the
	// decision to act on it.
	Retryable bool
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{Code: ErrCodeTimeout, Message: err.Error(), Retryable: true, Err: err}
}

// NewConnectionError creates a connection-level error.
func NewConnectionError(err error) *Error {
	return &Error{Code: ErrCodeConnection, Message: err.Error(), Retryable: true, Err: err}
}

// NewRequestError creates a request-construction error.
func NewRequestError(msg string) *Error {
	return &Error{Code: ErrCodeRequest, Message: msg}
}

// NewStatusError creates an error for a non-2xx response, keeping the exact
// status code and the full body.
func NewStatusError(statusCode int, body []byte) *Error {
	msg := excerpt(body, 256)
	if msg == "" {
		msg = "empty response body"
	}
	return &Error{
		Code:       ErrCodeStatus,
		StatusCode: statusCode,
		Body:       body,
		Message:    msg,
		Retryable:  statusCode == 429 || statusCode == 408 || statusCode >= 500,
	}
}

// excerpt trims a body to a printable one-line message.
func excerpt(body []byte, max int) string {
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// ClassifyStatusCode converts a status code into a typed error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	return NewStatusError(statusCode, body)
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeTimeout
}

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeConnection
}

// IsStatus checks if an error carries an HTTP status code.
func IsStatus(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeStatus
}

// IsRetryable checks if an error is marked retryable.
func IsRetryable(err error) bool {
	e, ok := AsError(err)
	return ok && e.Retryable
}
