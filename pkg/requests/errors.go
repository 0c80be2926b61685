package requests

import (
	"fmt"
	"strings"
)

// InvalidParameterError is returned when the identifying information or body supplied
// for a call cannot be used, before any request is sent.
type InvalidParameterError struct {
	// Parameter names the offending parameter (for example "guid" or "properties.class")
	Parameter string
	// Reason describes what was wrong with it
	Reason string
}

// Error returns the error message
func (e *InvalidParameterError) Error() string {
	if e.Parameter == "" {
		return fmt.Sprintf("invalid parameters: %s", e.Reason)
	}
	return fmt.Sprintf("invalid parameter %s: %s", e.Parameter, e.Reason)
}

// NewInvalidParameterError creates a new invalid parameter error
func NewInvalidParameterError(parameter, reason string) error {
	return &InvalidParameterError{Parameter: parameter, Reason: reason}
}

// FieldError describes one offending field of a body that failed validation
type FieldError struct {
	// Path is a JSON pointer to the field, "/" for the body itself
	Path    string
	Message string
}

// ValidationError is returned when a raw body cannot be parsed into its typed shape
type ValidationError struct {
	// Shape is the request class the body was validated against
	Shape  string
	Fields []FieldError
}

// Error returns the error message
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Shape, strings.Join(parts, "; "))
}

// Paths returns the offending field paths in the order they were reported
func (e *ValidationError) Paths() []string {
	paths := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		paths = append(paths, f.Path)
	}
	return paths
}

func newValidationError(shape, path, message string) *ValidationError {
	return &ValidationError{
		Shape:  shape,
		Fields: []FieldError{{Path: path, Message: message}},
	}
}
