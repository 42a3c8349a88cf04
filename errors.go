package tms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when the backend reports a failure without a message.
const DefaultErrorMessage = "An error occurred"

// ErrorKind tells which response shape produced an [Error].
type ErrorKind string

const (
	KindTransport ErrorKind = "transport" // Non-2xx HTTP status.
	KindLegacy    ErrorKind = "legacy"    // 2xx HTTP status with code != 0 and success == false.
)

var (
	// ErrTimeout matches a [RequestError] caused by the client timeout.
	ErrTimeout = errors.New("tms: request timed out")
	// ErrInvalidResponse matches a [RequestError] caused by a body that is not JSON.
	ErrInvalidResponse = errors.New("tms: invalid response body")
	// ErrInvalidRequest wraps client-side validation failures.
	ErrInvalidRequest = errors.New("tms: invalid request")
)

// Error is an API-level failure reported by the backend, in either of its
// two response shapes.
type Error struct {
	Kind ErrorKind `json:"kind"`
	// Code is the backend's code. It falls back to the HTTP status when the
	// backend sent no code or one that is not an integer.
	Code    int    `json:"code"`
	Message string `json:"message"`
	// RawCode holds the code as sent when it could not be used as Code.
	RawCode json.RawMessage `json:"raw_code,omitempty"`
	// Details is the whole response body for transport errors and the extra
	// field for legacy errors. It may be empty.
	Details json.RawMessage `json:"details,omitempty"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"status_code,omitempty"`
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tms: %s (code %d, http %d)", e.Message, e.Code, e.StatusCode)
}

// Temporary reports whether the failure is a 5xx or 429 response. The client
// never retries on its own.
func (e *Error) Temporary() bool {
	if e == nil || e.Kind != KindTransport {
		return false
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

type errorOption func(*Error)

// withDetails attaches the raw diagnostics payload.
func withDetails(raw json.RawMessage) errorOption {
	return func(er *Error) {
		if len(raw) == 0 {
			return
		}
		er.Details = raw
	}
}

// withRawCode keeps a backend code that does not fit Code.
func withRawCode(raw json.RawMessage) errorOption {
	return func(er *Error) {
		er.RawCode = raw
	}
}

// withStatusCode records the HTTP status of the response.
func withStatusCode(status int) errorOption {
	return func(er *Error) {
		er.StatusCode = status
	}
}

// newTransportError builds the error for a non-2xx response.
func newTransportError(status, code int, message string, opts ...errorOption) *Error {
	return newError(KindTransport, code, message, append([]errorOption{withStatusCode(status)}, opts...)...)
}

// newLegacyError builds the error for a 2xx response flagged with success:false.
func newLegacyError(status, code int, message string, opts ...errorOption) *Error {
	return newError(KindLegacy, code, message, append([]errorOption{withStatusCode(status)}, opts...)...)
}

func newError(kind ErrorKind, code int, message string, opts ...errorOption) *Error {
	errPayload := &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(errPayload)
	}
	return errPayload
}

// RequestError is a failure that happened before a response body could be
// classified: network errors, timeouts and bodies that are not JSON.
type RequestError struct {
	Method string
	URL    string
	Err    error
	// StatusCode is set when a response arrived but its body was unusable.
	StatusCode int
	timeout    bool
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tms: %s %s (http %d): %v", e.Method, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("tms: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrTimeout) hold for timed-out requests.
func (e *RequestError) Is(target error) bool {
	return target == ErrTimeout && e.timeout
}

// Timeout reports whether the client timeout aborted the request.
func (e *RequestError) Timeout() bool { return e.timeout }

// IsAPIError reports whether err carries an [*Error] and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
