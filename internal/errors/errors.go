// Package errors provides the coded error taxonomy shared by every splitmux
// component.
//
// Usage:
//
//	// In a component - return a typed error
//	if low > high {
//	    return errors.Validationf("range %d-%d is reversed", low, high)
//	}
//
//	// In the driver - branch with errors.Is
//	if errors.Is(err, errors.ErrConflict) {
//	    log.Error("%v", err)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	New    = errors.New
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code classifies a failure.
type Code string

const (
	CodeParse      Code = "PARSE"      // Malformed probe output or episode filename.
	CodeValidation Code = "VALIDATION" // Bad selector, empty work list, path collision, bad config.
	CodeConflict   Code = "CONFLICT"   // Output directory already exists without --force.
	CodeConversion Code = "CONVERSION" // External tool exited non-zero.
)

// Error is a coded error with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, cause: err}
}

// Sentinel errors for use with errors.Is().
var (
	ErrParse      = &Error{Code: CodeParse, Message: "parse error"}
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrConflict   = &Error{Code: CodeConflict, Message: "conflict"}
	ErrConversion = &Error{Code: CodeConversion, Message: "conversion failed"}
)

// Parsef creates a parse error with a formatted message.
func Parsef(format string, args ...any) *Error {
	return &Error{Code: CodeParse, Message: fmt.Sprintf(format, args...)}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflictf creates a conflict error with a formatted message.
func Conflictf(format string, args ...any) *Error {
	return &Error{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the Code of the first *Error in err's chain, or "" when
// there is none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
