// Package domainerrors defines the coded error type shared by services,
// stores, and transport. Handlers translate codes to HTTP statuses in one
// place instead of inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for transport mapping and logging.
type Code string

const (
	// CodeBadRequest covers malformed input the client must fix before the
	// request can even be interpreted (bad JSON, missing body).
	CodeBadRequest Code = "bad_request"
	// CodeValidation covers well-formed input that fails a business rule.
	CodeValidation Code = "validation_error"
	// CodeNotFound covers lookups for records that do not exist.
	CodeNotFound Code = "not_found"
	// CodeConflict covers writes that would violate an existing invariant,
	// such as appending a record whose fields disagree with a file's header.
	CodeConflict Code = "conflict"
	// CodeInternal covers everything the client cannot fix.
	CodeInternal Code = "internal_error"
)

// Error carries a code alongside the message. The code is part of the API
// contract; the message is free-form.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a coded error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds a coded error around an underlying cause so the original error
// stays reachable through errors.Unwrap.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Is reports whether err (or anything it wraps) carries the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in this package.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps an error code to the status the transport layer returns.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
