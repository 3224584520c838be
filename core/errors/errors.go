// Package errors provides standardized error types and helpers for hebrewutils.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrMissingInput indicates a required phrase argument was absent
	ErrMissingInput = errors.New("missing input")
	// ErrIncompatibleInput indicates two phrases that cannot be aligned
	ErrIncompatibleInput = errors.New("incompatible input")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
)

// MissingInputError reports an absent reference or billet.
type MissingInputError struct {
	Argument string // "reference" or "billet"
}

func (e *MissingInputError) Error() string {
	if e.Argument != "" {
		return fmt.Sprintf("given arguments shouldn't be empty: %s is missing", e.Argument)
	}
	return "given arguments shouldn't be empty"
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// IncompatibleInputError reports a reference/billet pair that denotes
// different words: either the phrases tokenize to different lengths or an
// aligned consonant root differs.
type IncompatibleInputError struct {
	Reference string // Reference root or phrase, if known
	Billet    string // Billet root or phrase, if known
	Message   string // Extra detail
}

func (e *IncompatibleInputError) Error() string {
	msg := "unable to spread diacritics from given source, most likely completely different words have been provided"
	if e.Billet != "" || e.Reference != "" {
		msg += fmt.Sprintf(", token %q doesn't match with token %q", e.Billet, e.Reference)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *IncompatibleInputError) Unwrap() error {
	return ErrIncompatibleInput
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "verse", "run")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "pairs", "OSIS", "report")
	Path    string // File path, if applicable
	Line    int    // 1-based line number, 0 if unknown
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if loc != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, loc, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewMissingInput creates a MissingInputError
func NewMissingInput(argument string) *MissingInputError {
	return &MissingInputError{Argument: argument}
}

// NewIncompatibleInput creates an IncompatibleInputError naming both sides
func NewIncompatibleInput(reference, billet, message string) *IncompatibleInputError {
	return &IncompatibleInputError{
		Reference: reference,
		Billet:    billet,
		Message:   message,
	}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path string, line int, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Line:    line,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
