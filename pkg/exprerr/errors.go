// Package exprerr defines the two error kinds the expression core can
// raise — ParseError from parsing/type-checking and LiteralError from
// literal coercion — along with the message-template catalog their
// constructors draw from. Messages are part of the external interface:
// callers and tests match them verbatim, so every template lives here
// rather than being inlined at each call site.
package exprerr

import (
	"errors"
	"fmt"
)

// ParseError is raised by the parser: arity mismatches, unknown operators,
// malformed options, wrong argument shapes, or a failure propagated from a
// nested parse.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string { return e.Message }

// Unwrap exposes the wrapped inner error, if any, for errors.As/errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError formats a new ParseError from the catalog.
func NewParseError(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// WrapParseError formats a new ParseError that wraps inner, keeping it
// reachable via errors.Unwrap while still rendering inner's message inline.
// format must contain exactly one %w verb for inner, per the catalog's
// "failed to parse ... : <inner>" templates.
func WrapParseError(inner error, format string, args ...any) *ParseError {
	allArgs := append(append([]any{}, args...), inner)
	wrapped := fmt.Errorf(format, allArgs...)
	return &ParseError{Message: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

// LiteralError is raised when a raw primitive cannot be coerced to a
// declared type, or when a color string fails to parse.
type LiteralError struct {
	Message string
}

func (e *LiteralError) Error() string { return e.Message }

// NewLiteralError formats a new LiteralError from the catalog.
func NewLiteralError(format string, args ...any) *LiteralError {
	return &LiteralError{Message: fmt.Sprintf(format, args...)}
}
