// Package errors provides coded errors for failures that abort a libyear run.
//
// Per-dependency lookup failures are not represented here; they are plain
// sentinel errors in package libyear and never stop a report. Errors in this
// package describe the whole-run preconditions: a missing or malformed
// manifest, an unusable flag value, a resolver that cannot be started.
//
// # Error Codes
//
//   - INVALID_*: a flag, config value, or input file could not be understood
//   - *_NOT_FOUND: a required file does not exist
//   - UNSUPPORTED: the requested mode is not available
//   - INTERNAL: anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown sort order %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // usage error
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidManifest, parseErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidPackage  Code = "INVALID_PACKAGE"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported     Code = "UNSUPPORTED"
	ErrCodeInternal        Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the outermost *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. The cause, if
// any, is appended so the user still sees why the run failed.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
