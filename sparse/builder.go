// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
)

// New constructs a rows×cols Matrix from COO entries.
//
// Implementation:
//   - Stage 1: validate the shape (rows, cols ≥ 0).
//   - Stage 2: validate each entry: bounds, uniqueness, finite and non-zero
//     under the numeric policy.
//   - Stage 3: store into a fresh map; the caller's slice is not retained.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange, ErrDuplicateEntry, ErrZeroEntry, ErrNaNInf,
//     each wrapped with the offending entry index.
//
// Complexity: O(len(entries)) time and space.
func New(rows, cols int, entries []Entry, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if err := validateShape(rows, cols); err != nil {
		return nil, sparseErrorf("New", err)
	}

	m := &Matrix{rows: rows, cols: cols, entries: make(map[Coord]float64, len(entries))}
	for i, e := range entries {
		if err := m.checkIndex(e.Row, e.Col); err != nil {
			return nil, sparseErrorf("New", fmt.Errorf("entry %d (%d,%d): %w", i, e.Row, e.Col, err))
		}
		if err := validateValue(o, e.Value); err != nil {
			return nil, sparseErrorf("New", fmt.Errorf("entry %d (%d,%d): %w", i, e.Row, e.Col, err))
		}
		c := e.Coord()
		if _, dup := m.entries[c]; dup {
			return nil, sparseErrorf("New", fmt.Errorf("entry %d (%d,%d): %w", i, e.Row, e.Col, ErrDuplicateEntry))
		}
		m.entries[c] = e.Value
	}

	return m, nil
}

// Zero returns an empty rows×cols matrix (the additive identity).
// Negative dimensions yield ErrBadShape.
func Zero(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, sparseErrorf("Zero", err)
	}

	return &Matrix{rows: rows, cols: cols, entries: map[Coord]float64{}}, nil
}

// Identity returns the n×n sparse identity matrix.
func Identity(n int) (*Matrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, sparseErrorf("Identity", err)
	}
	m := &Matrix{rows: n, cols: n, entries: make(map[Coord]float64, n)}
	for i := 0; i < n; i++ {
		m.entries[Coord{Row: i, Col: i}] = 1
	}

	return m, nil
}

// Builder accumulates contributions per cell and emits a Matrix that honors
// the non-zero invariant. It backs every producing kernel in this package.
//
// A Builder is not safe for concurrent use. Build resets it to empty.
type Builder struct {
	rows, cols int
	opts       Options
	acc        map[Coord]float64
}

// NewBuilder prepares an accumulator for a rows×cols result.
func NewBuilder(rows, cols int, opts ...Option) (*Builder, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, sparseErrorf("NewBuilder", err)
	}

	return newBuilder(rows, cols, 0, gatherOptions(opts...)), nil
}

// newBuilder is the unchecked internal constructor; hint pre-sizes the map.
func newBuilder(rows, cols, hint int, o Options) *Builder {
	return &Builder{rows: rows, cols: cols, opts: o, acc: make(map[Coord]float64, hint)}
}

// Accumulate adds v to cell (row, col). Zero contributions are kept in the
// running sum; they only matter at Build time.
// Returns ErrOutOfRange for indices outside the shape.
func (b *Builder) Accumulate(row, col int, v float64) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return sparseErrorf("Accumulate", ErrOutOfRange)
	}
	b.acc[Coord{Row: row, Col: col}] += v

	return nil
}

// add is Accumulate without the bounds check, for kernels whose indices are
// valid by construction.
func (b *Builder) add(c Coord, v float64) {
	b.acc[c] += v
}

// Build drops every cell whose accumulated value is zero under the policy
// and returns the result. The accumulator map is handed over, not copied,
// and the Builder starts over with an empty one.
//
// Under the finite-value policy (the default) a cell that overflowed to ±Inf,
// or to NaN through cancelling overflows, fails the whole build with
// ErrNaNInf; no partial matrix is returned.
func (b *Builder) Build() (*Matrix, error) {
	acc := b.acc
	b.acc = map[Coord]float64{}
	for c, v := range acc {
		if b.opts.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, sparseErrorf("Build", fmt.Errorf("cell (%d,%d): %w", c.Row, c.Col, ErrNaNInf))
		}
		if b.opts.isZero(v) {
			delete(acc, c)
		}
	}

	return &Matrix{rows: b.rows, cols: b.cols, entries: acc}, nil
}
