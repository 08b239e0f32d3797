// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single source of truth for the shape, nil and value checks
//     shared by constructors, the parser and the arithmetic kernels.
//   - Return plain sentinels (or typed *DimensionError) so call sites wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing on the success path.

package sparse

import "math"

// ValidateNotNil ensures every operand is non-nil.
// Returns ErrNilMatrix on the first nil. Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (Add/Sub).
// Assumes both are non-nil.
func ValidateSameShape(op string, a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return newDimensionError(op, a, b)
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows() (Mul).
// Assumes both are non-nil.
func ValidateMulShape(op string, a, b *Matrix) error {
	if a.cols != b.rows {
		return newDimensionError(op, a, b)
	}

	return nil
}

// validateShape rejects negative dimensions.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// validateValue applies the finite-value and non-zero policy to one value.
func validateValue(o Options, v float64) error {
	if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}
	if o.isZero(v) {
		return ErrZeroEntry
	}

	return nil
}
