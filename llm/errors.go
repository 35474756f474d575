package llm

import (
	"errors"
	"fmt"

	"github.com/penflow/llmkit/httpclient"
)

// ErrSkipChunk is returned by Dialect.ParseStreamChunk for stream lines that
// carry no usable payload (malformed JSON, keep-alive noise). The adapter
// skips such lines silently instead of terminating the stream.
var ErrSkipChunk = errors.New("llm: skip stream chunk")

// ErrorCode classifies adapter errors into the four kinds callers can act on.
type ErrorCode int

const (
	// ErrCodeConfig indicates an invalid configuration (missing API key,
	// unresolvable endpoint). Detected at construction; never retryable.
	ErrCodeConfig ErrorCode = iota
	// ErrCodeTransport indicates a connection failure, DNS error, proxy
	// failure, or timeout. Retryable by caller policy.
	ErrCodeTransport
	// ErrCodeStatus indicates the endpoint was reached but rejected the
	// request with a non-success status. The exact status code and the
	// full response body are preserved.
	ErrCodeStatus
	// ErrCodeDecode indicates a success response whose envelope could not
	// be parsed into the expected shape. Usually an API contract change.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConfig:
		return "config"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeStatus:
		return "status"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the provider-agnostic error type returned by adapters.
type Error struct {
	// Provider is the dialect name the adapter is bound to.
	Provider string
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (ErrCodeStatus only).
	StatusCode int
	// Body is the full response body, verbatim (ErrCodeStatus only).
	Body []byte
	// Message describes the error.
	Message string
	// Retryable hints whether a retry could succeed. Acting on it is the
	// caller's decision.
	Retryable bool
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := "llm"
	if e.Provider != "" {
		prefix = "llm " + e.Provider
	}
	if e.Code == ErrCodeStatus {
		return fmt.Sprintf("%s: HTTP %d: %s", prefix, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

func newConfigError(provider, msg string) *Error {
	return &Error{Provider: provider, Code: ErrCodeConfig, Message: msg}
}

func newTransportError(provider string, err error) *Error {
	return &Error{Provider: provider, Code: ErrCodeTransport, Message: err.Error(), Retryable: true, Err: err}
}

func newStatusError(provider string, statusCode int, body []byte, retryable bool) *Error {
	return &Error{
		Provider:   provider,
		Code:       ErrCodeStatus,
		StatusCode: statusCode,
		Body:       body,
		Message:    string(body),
		Retryable:  retryable,
	}
}

func newDecodeError(provider, msg string, err error) *Error {
	return &Error{Provider: provider, Code: ErrCodeDecode, Message: msg, Err: err}
}

// fromHTTPError normalizes a transport-layer error into the adapter taxonomy.
func fromHTTPError(provider string, err error) *Error {
	he, ok := httpclient.AsError(err)
	if !ok {
		return newTransportError(provider, err)
	}
	switch he.Code {
	case httpclient.ErrCodeStatus:
		return newStatusError(provider, he.StatusCode, he.Body, he.Retryable)
	case httpclient.ErrCodeRequest:
		return &Error{Provider: provider, Code: ErrCodeConfig, Message: he.Message, Err: he}
	default:
		return &Error{Provider: provider, Code: ErrCodeTransport, Message: he.Message, Retryable: true, Err: he}
	}
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsConfig checks for a configuration error.
func IsConfig(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeConfig
}

// IsTransport checks for a transport error.
func IsTransport(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeTransport
}

// IsStatus checks for an HTTP status error.
func IsStatus(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeStatus
}

// IsDecode checks for a protocol decode error.
func IsDecode(err error) bool {
	e, ok := AsError(err)
	return ok && e.Code == ErrCodeDecode
}

// IsRetryable checks whether an error is hinted retryable.
func IsRetryable(err error) bool {
	e, ok := AsError(err)
	return ok && e.Retryable
}
