// SPDX-License-Identifier: MIT
// Package: pressure/parse
//
// errors.go: sentinel errors and the structured ParseError.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrSyntax) / errors.Is(err, ErrInvalidJSON).
//   • Position details are available through errors.As(err, &*ParseError).
//   • Graph-level failures (dangling tunnels, missing start) surface the core
//     sentinels unchanged, wrapped with %w.

package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates a text record that does not match the expected shape.
var ErrSyntax = errors.New("parse: malformed record")

// ErrInvalidJSON indicates a JSON document that is not valid or does not
// follow the valve document layout.
var ErrInvalidJSON = errors.New("parse: invalid JSON document")

// ParseError describes where and why a text record was rejected.
type ParseError struct {
	// Line is the 1-based line number of the record.
	Line int

	// Column is the 1-based column, in runes, where scanning stopped.
	Column int

	// Text is the offending line as read.
	Text string

	// Reason explains what the scanner expected.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: line %d, col %d: %s: %q", e.Line, e.Column, e.Reason, e.Text)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}
