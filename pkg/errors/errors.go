package errors

import (
	"errors"
	"fmt"
)

// ErrInvariant is matched by every InvariantError through errors.Is.
var ErrInvariant = errors.New("routing invariant violated")

// ParseError represents a configuration or script decoding failure with optional line metadata.
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

// ValidationError captures configuration and script validation issues.
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

// InvariantError reports a navigation command that breaks a routing contract,
// such as pushing a route whose id is already on the stack. These are
// programming errors in the flow integration, never runtime conditions.
type InvariantError struct {
	Flow    string
	Op      string
	RouteID string
	Message string
}

// NewInvariantError constructs an InvariantError.
func NewInvariantError(flow, op, routeID, message string) error {
	return &InvariantError{Flow: flow, Op: op, RouteID: routeID, Message: message}
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ""
	}
	prefix := "invariant violation"
	if e.Flow != "" {
		prefix = fmt.Sprintf("invariant violation [%s]", e.Flow)
	}
	if e.RouteID != "" {
		return fmt.Sprintf("%s: %s %s: %s", prefix, e.Op, e.RouteID, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
}

// Is reports ErrInvariant as a match so callers need not type-assert.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}
