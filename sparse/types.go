// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"slices"
)

// Coord addresses one cell; Row and Col are 0-based.
type Coord struct {
	Row, Col int
}

// Entry is one COO triple.
type Entry struct {
	Row, Col int
	Value    float64
}

// Coord returns the entry's cell address.
func (e Entry) Coord() Coord { return Coord{Row: e.Row, Col: e.Col} }

// Matrix is an immutable sparse matrix of float64 values in coordinate form.
// The zero value is a valid 0×0 matrix.
type Matrix struct {
	rows, cols int
	entries    map[Coord]float64 // non-zero cells only
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int { return len(m.entries) }

// At returns the value at (row, col); absent cells read as 0.
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if err := m.checkIndex(row, col); err != nil {
		return 0, sparseErrorf("At", err)
	}

	return m.entries[Coord{Row: row, Col: col}], nil
}

// Has reports whether (row, col) holds a stored entry.
func (m *Matrix) Has(row, col int) bool {
	_, ok := m.entries[Coord{Row: row, Col: col}]
	return ok
}

// Entries returns a fresh slice of all stored entries in row-major order.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for c, v := range m.entries {
		out = append(out, Entry{Row: c.Row, Col: c.Col, Value: v})
	}
	slices.SortFunc(out, compareEntries)

	return out
}

// Equal reports whether m and other have the same shape and the same
// entry set with bitwise-equal values.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.entries) != len(other.entries) {
		return false
	}
	for c, v := range m.entries {
		w, ok := other.entries[c]
		if !ok || v != w {
			return false
		}
	}

	return true
}

// EqualApprox is Equal with an absolute tolerance on values. Both matrices
// must still store the same coordinates.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols || len(m.entries) != len(other.entries) {
		return false
	}
	for c, v := range m.entries {
		w, ok := other.entries[c]
		if !ok || math.Abs(v-w) > tol {
			return false
		}
	}

	return true
}

// checkIndex validates 0 ≤ row < rows and 0 ≤ col < cols.
func (m *Matrix) checkIndex(row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// compareEntries orders entries row-major: row ascending, then column.
func compareEntries(a, b Entry) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}

	return a.Col - b.Col
}
