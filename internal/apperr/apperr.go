// Package apperr defines the error values crossing the API boundary: a
// machine-readable code, an HTTP status and a human-readable message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalid      Code = "invalid_input"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeState        Code = "invalid_state"
	CodeProvider     Code = "provider_error"
	CodeInternal     Code = "internal"
)

type Error struct {
	Code    Code
	Status  int
	Message string
	Err     error // wrapped cause, not serialized
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalid, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: msg}
}

func NotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: what + " not found"}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Status: http.StatusConflict, Message: msg}
}

// State reports an operation attempted against a row whose status does not
// allow it, e.g. generating audio for a podcast without a script.
func State(format string, args ...any) *Error {
	return &Error{Code: CodeState, Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func Provider(op string, err error) *Error {
	return &Error{Code: CodeProvider, Status: http.StatusBadGateway, Message: op + " failed", Err: err}
}

func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: "internal error", Err: err}
}

// From normalizes any error to an *Error, wrapping unknown values as internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
