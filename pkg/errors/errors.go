// Package errors provides the coded errors returned by surveyplot.
//
// Every failure that a caller may want to react to carries a [Code]. Missing
// answers and answers outside a scale are not failures and never produce one.
//
// # Error Codes
//
//   - EMPTY_*, INVALID_*, *_MISMATCH: the caller passed something unusable
//   - *_NOT_FOUND, UNKNOWN_*: a referenced column, file, scale or palette does not exist
//   - INTERNAL_ERROR: a bug
//
// [Hint] maps a code to a one-line suggestion for the CLI.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyScale, "scale %q has no labels", name)
//	if errors.Is(err, errors.ErrCodeEmptyScale) {
//	    // Handle the contract violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Scale and aggregation errors
	ErrCodeEmptyScale         Code = "EMPTY_SCALE"
	ErrCodeInvalidScaleLength Code = "INVALID_SCALE_LENGTH"
	ErrCodeColorCountMismatch Code = "COLOR_COUNT_MISMATCH"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidChart  Code = "INVALID_CHART"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeColumnNotFound Code = "COLUMN_NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeUnknownScale   Code = "UNKNOWN_SCALE"
	ErrCodeUnknownPalette Code = "UNKNOWN_PALETTE"

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

var hints = map[Code]string{
	ErrCodeEmptyScale:         "declare at least one label for the scale",
	ErrCodeInvalidScaleLength: "diverging charts need a five-point scale; use kind = \"likert\" for other scales",
	ErrCodeColorCountMismatch: "list exactly one color per scale label",
	ErrCodeInvalidFormat:      "supported formats are svg, png, pdf and json",
	ErrCodeInvalidChart:       "chart kinds are frequency, percentage, split, likert, diverging and mean",
	ErrCodeColumnNotFound:     "question names must match a header of the data file",
	ErrCodeFileNotFound:       "paths in the report file are relative to the report file",
	ErrCodeUnknownScale:       "built-in scales are agree, likely and relevant; run 'surveyplot palettes'",
	ErrCodeUnknownPalette:     "run 'surveyplot palettes' to list palette names",
}

// Hint returns a suggestion for fixing err, or "" when there is none.
func Hint(err error) string {
	return hints[GetCode(err)]
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
