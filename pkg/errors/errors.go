package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures page configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RejectedError reports a signup submission that did not pass validation.
// Message is the status line shown to the user.
type RejectedError struct {
	Message string
}

// NewRejectedError constructs a RejectedError.
func NewRejectedError(message string) error {
	return &RejectedError{Message: message}
}

func (e *RejectedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("submission rejected: %s", e.Message)
}

// TerminalError indicates the interactive page could not drive the terminal.
type TerminalError struct {
	Op  string
	Err error
}

// NewTerminalError constructs a TerminalError for the failed operation.
func NewTerminalError(op string, err error) error {
	return &TerminalError{Op: op, Err: err}
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("terminal error [%s]: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("terminal error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
