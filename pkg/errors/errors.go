// Package errors provides structured error types for blockrender.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI and the HTTP server can map it to an exit status or a
// response without string matching.
//
// # Error Codes
//
// Codes follow a coarse naming convention:
//   - INVALID_*: the caller supplied something malformed
//   - UNKNOWN_* / DUPLICATE_*: registry and theme lookups
//   - INTERNAL_ERROR: a broken invariant inside the engine
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownRenderer, "no renderer named %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownRenderer) {
//	    // offer the list of registered renderers
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidWorkspace Code = "INVALID_WORKSPACE"
	ErrCodeInvalidConstants Code = "INVALID_CONSTANTS"
	ErrCodeInvalidRenderer  Code = "INVALID_RENDERER"

	// Registry and lookup errors
	ErrCodeDuplicateRenderer Code = "DUPLICATE_RENDERER"
	ErrCodeUnknownRenderer   Code = "UNKNOWN_RENDERER"
	ErrCodeUnknownTheme      Code = "UNKNOWN_THEME"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error code to the status the render server answers with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidWorkspace,
		ErrCodeInvalidConstants, ErrCodeInvalidRenderer:
		return 400
	case ErrCodeUnknownRenderer, ErrCodeUnknownTheme, ErrCodeFileNotFound:
		return 404
	case ErrCodeDuplicateRenderer:
		return 409
	case ErrCodeUnsupported:
		return 501
	default:
		return 500
	}
}
