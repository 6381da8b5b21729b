// Package errors provides structured error types for hsmgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (bad topology, bad names, bad files)
//   - NOT_FOUND_*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "line %d: missing arrow", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Inspect the states behind an invalid topology
//	var te *errors.TopologyError
//	if stderrors.As(err, &te) {
//	    fmt.Println(te.States)
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidTopology Code = "INVALID_TOPOLOGY"
	ErrCodeMalformedName   Code = "MALFORMED_NAME"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidKind     Code = "INVALID_KIND"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// TopologyError lists the states whose depth could not be settled. It is the
// cause of every INVALID_TOPOLOGY error.
type TopologyError struct {
	States  []string // Offending state names, sorted
	Ceiling int      // Depth limit that was reached
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	return fmt.Sprintf("depth reached %d for %d state(s): %s",
		e.Ceiling, len(e.States), strings.Join(e.States, ", "))
}

// Code returns the error code for this error type.
func (e *TopologyError) Code() Code {
	return ErrCodeInvalidTopology
}

// InvalidTopology builds the INVALID_TOPOLOGY error for the given states.
func InvalidTopology(states []string, ceiling int) *Error {
	return Wrap(ErrCodeInvalidTopology, &TopologyError{States: states, Ceiling: ceiling},
		"invalid graph depth; a state is most likely both a sibling and an inner of a state or set of states")
}

// OffendingStates returns the states carried by a TopologyError anywhere in
// err's chain, or nil.
func OffendingStates(err error) []string {
	var te *TopologyError
	if errors.As(err, &te) {
		return te.States
	}
	return nil
}
