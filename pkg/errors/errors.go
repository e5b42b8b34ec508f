package errors

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed configuration value, such as a palette
// override, with optional line metadata.
type ParseError struct {
	Source  string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(source string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Source: source, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Source, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports prompt inputs that cannot be rendered.
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

// ShellError indicates an unsupported shell name.
type ShellError struct {
	Name      string
	Supported []string
}

// NewShellError constructs a ShellError listing the supported shells.
func NewShellError(name string, supported []string) error {
	return &ShellError{Name: name, Supported: supported}
}

func (e *ShellError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported shell %q", e.Name)
	}
	return fmt.Sprintf("unsupported shell %q (expected one of: %s)", e.Name, strings.Join(e.Supported, ", "))
}
