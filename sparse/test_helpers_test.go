// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.
//
// Purpose:
//   - Small deterministic constructors that fail the test on error.
//   - Seeded random sparse matrices with small integer values, so that sums
//     and products are exact in float64 and can be compared bitwise.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsemat/sparse"
)

// mustNew builds a matrix or fails the test.
func mustNew(tb testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.New(rows, cols, entries)
	require.NoError(tb, err)

	return m
}

// mustParse parses text or fails the test.
func mustParse(tb testing.TB, text string, opts ...sparse.Option) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.Parse(text, opts...)
	require.NoError(tb, err)

	return m
}

// e is a short Entry literal.
func e(row, col int, v float64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

// randomInt fills roughly density·rows·cols cells with non-zero integers in [-4, 4].
func randomInt(tb testing.TB, rng *rand.Rand, rows, cols int, density float64) *sparse.Matrix {
	tb.Helper()
	var entries []sparse.Entry
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := float64(rng.Intn(4) + 1)
			if rng.Intn(2) == 0 {
				v = -v
			}
			entries = append(entries, e(i, j, v))
		}
	}

	return mustNew(tb, rows, cols, entries...)
}

// requireNoStoredZero asserts the non-zero invariant on m.
func requireNoStoredZero(tb testing.TB, m *sparse.Matrix) {
	tb.Helper()
	for _, en := range m.Entries() {
		require.NotZero(tb, en.Value, "stored zero at (%d,%d)", en.Row, en.Col)
	}
}
