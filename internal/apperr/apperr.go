// Package apperr provides structured errors for the storefront client.
package apperr

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeNetwork        = "network"
	CodeSessionExpired = "session_expired"
	CodeAPI            = "api_error"
	CodeRefresh        = "refresh_failed"
	CodeStorage        = "storage"
)

// Display messages surfaced to screens when the backend gives nothing
// better.
const (
	MsgNetwork        = "Network error. Please check your connection."
	MsgGeneric        = "Something went wrong. Please try again."
	MsgSessionExpired = "Your session has expired. Please log in again."
)

// Error is a structured error with a code, a user-displayable message, and
// the HTTP status when a response was received.
type Error struct {
	Code       string
	Message    string
	HTTPStatus int
	Retryable  bool
	Body       []byte // raw response body, when one was received
	Cause      error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Error constructors for the cases the pipeline produces.

func ErrNetwork(cause error) *Error {
	return &Error{
		Code:      CodeNetwork,
		Message:   MsgNetwork,
		Retryable: true,
		Cause:     cause,
	}
}

func ErrSessionExpired() *Error {
	return &Error{
		Code:       CodeSessionExpired,
		Message:    MsgSessionExpired,
		HTTPStatus: 401,
	}
}

func ErrAPI(status int, msg string, body []byte) *Error {
	if msg == "" {
		msg = MsgGeneric
	}
	return &Error{
		Code:       CodeAPI,
		Message:    msg,
		HTTPStatus: status,
		Body:       body,
	}
}

func ErrRefresh(status int, msg string) *Error {
	if msg == "" {
		msg = fmt.Sprintf("token refresh failed (HTTP %d)", status)
	}
	return &Error{
		Code:       CodeRefresh,
		Message:    msg,
		HTTPStatus: status,
	}
}

func ErrStorage(cause error) *Error {
	return &Error{
		Code:  CodeStorage,
		Cause: cause,
	}
}

// AsError attempts to convert an error to an *Error.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:    CodeAPI,
		Message: err.Error(),
		Cause:   err,
	}
}

// IsSessionExpired reports whether err is the session-expiry rejection.
func IsSessionExpired(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeSessionExpired
}
