// SPDX-License-Identifier: MIT
// Package sparse: sentinel and typed errors.
// All public entry points return these sentinels (directly, wrapped via
// sparseErrorf, or inside *FormatError / *DimensionError) and tests check them
// via errors.Is / errors.As. Nothing panics on user-triggered input; panics are
// reserved for invalid option values (programmer error).

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING
// --------------
// Every message is prefixed with "sparse: ..." for easy grepping across logs.

var (
	// ErrFormat is the umbrella sentinel for malformed text input.
	// Every *FormatError unwraps to it.
	ErrFormat = errors.New("sparse: malformed input")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// on different shapes or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDuplicateEntry signals that the same (row, col) was supplied twice.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")

	// ErrZeroEntry signals an explicit zero value where only non-zeros may be stored.
	ErrZeroEntry = errors.New("sparse: explicit zero entry")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrUnknownOperation is returned by ParseOperation for unrecognized names.
	ErrUnknownOperation = errors.New("sparse: unknown operation")
)

// Format error reasons. They are the stable, human-readable part of a
// *FormatError and are matched by tests.
const (
	ReasonInvalidDimension = "invalid dimension"
	ReasonMalformedEntry   = "malformed entry"
	ReasonOutOfBounds      = "coordinate out of bounds"
	ReasonDuplicateEntry   = "duplicate entry"
	ReasonZeroEntry        = "explicit zero entry"
)

// FormatError reports why a text source could not be parsed.
// Line is 1-based; Content is the raw offending line (empty for a missing header).
type FormatError struct {
	Reason  string
	Line    int
	Content string
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Content == "" {
		return fmt.Sprintf("sparse: %s at line %d", e.Reason, e.Line)
	}

	return fmt.Sprintf("sparse: %s at line %d: %q", e.Reason, e.Line, e.Content)
}

// Unwrap lets errors.Is(err, ErrFormat) match any *FormatError.
func (e *FormatError) Unwrap() error { return ErrFormat }

// DimensionError reports incompatible operand shapes for Op.
type DimensionError struct {
	Op           string
	ARows, ACols int
	BRows, BCols int
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("sparse: %s: dimension mismatch %dx%d vs %dx%d",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Unwrap lets errors.Is(err, ErrDimensionMismatch) match any *DimensionError.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// newFormatError builds a *FormatError for the given reason and source line.
func newFormatError(reason string, line int, content string) *FormatError {
	return &FormatError{Reason: reason, Line: line, Content: content}
}

// newDimensionError captures both operand shapes for op.
func newDimensionError(op string, a, b *Matrix) *DimensionError {
	return &DimensionError{Op: op, ARows: a.rows, ACols: a.cols, BRows: b.rows, BCols: b.cols}
}

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
