// Package errors provides the engine's unified error handling framework.
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error into one of the kinds §7 of the spec names.
type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeInternal           Code = "INTERNAL_ERROR"
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeValidationFail     Code = "VALIDATION_FAILED"
	CodeNoFeasibleSolution Code = "NO_FEASIBLE_SOLUTION"
)

// AppError is the engine's structured error type.
type AppError struct {
	Code    Code
	Message string
	Details string
	Cause   error
	Fields  map[string]interface{}
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails attaches human-readable detail text.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause attaches the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithField attaches a structured field (e.g. day number, nurse index).
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New creates a new AppError.
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// Is reports whether err is an AppError of the given code.
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the Code from err, or CodeUnknown if err is not an AppError.
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// InvalidInput builds a CodeInvalidInput error for a malformed field (§7
// "Input invalid": days/month mismatch, out-of-range dates, unknown nurse).
func InvalidInput(field, reason string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("field %q invalid: %s", field, reason))
}

// NoFeasibleSolution builds a CodeNoFeasibleSolution error (§7 "No feasible
// roster"). The Diagnosis is not carried on the error; engine.Solve returns
// it as a separate value.
func NoFeasibleSolution(reason string) *AppError {
	return New(CodeNoFeasibleSolution, reason)
}

// Internal wraps a solver or other internal failure (§7 "Internal solver
// error": propagate with full context, no retry).
func Internal(err error, message string) *AppError {
	return Wrap(err, CodeInternal, message)
}

// ValidationErrors accumulates structural input-validation failures (§7
// "Input invalid"), reported together under CodeValidationFail.
type ValidationErrors struct {
	Errors []ValidationError
}

// ValidationError is a single pre-check failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve *ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s - %s", ve.Errors[0].Field, ve.Errors[0].Message)
}

// Add records a validation failure.
func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any failure was recorded.
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// ToAppError converts the accumulated failures into a single AppError.
func (ve *ValidationErrors) ToAppError() *AppError {
	err := New(CodeValidationFail, "pre-check validation failed")
	err.Fields = make(map[string]interface{}, len(ve.Errors))
	for _, e := range ve.Errors {
		err.Fields[e.Field] = e.Message
	}
	return err
}
