// SPDX-License-Identifier: MIT
// Package sparse provides the arithmetic kernels over coordinate lists:
// Add, Sub, Mul, Negate, Transpose and Scale. All kernels validate fail-fast,
// never mutate operands and emit through a Builder so the non-zero invariant
// holds for every result.

package sparse

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opNegate    = "Negate"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes.
//   - Stage 2: seed a Builder with a's entries, then fold in sign*b's entries.
//   - Stage 3: Build drops cells that cancelled to zero and rejects overflow.
//
// Behavior highlights:
//   - A single union walk over both maps; nothing dense is allocated.
//   - Cells present in only one operand pass through unchanged (for b, with sign applied).
//
// Complexity: O(nnz(a) + nnz(b)) time and space.
func addSub(a, b *Matrix, sign float64, opTag string, opts []Option) (*Matrix, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}
	if err := ValidateSameShape(opTag, a, b); err != nil {
		return nil, err
	}

	out := newBuilder(a.rows, a.cols, len(a.entries)+len(b.entries), gatherOptions(opts...))
	for c, v := range a.entries {
		out.add(c, v)
	}
	for c, v := range b.entries {
		out.add(c, sign*v)
	}

	m, err := out.Build()
	if err != nil {
		return nil, sparseErrorf(opTag, err)
	}

	return m, nil
}

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilMatrix (wrapped) for a nil operand.
//   - *DimensionError when a and b differ in rows or cols.
//   - ErrNaNInf (wrapped) when a sum overflows, unless WithNoValidateNaNInf.
//
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix, opts ...Option) (*Matrix, error) {
	return addSub(a, b, 1, opAdd, opts)
}

// Sub returns a - b, i.e. a + Negate(b). Sub(a, a) is always empty.
// Errors and complexity match Add.
func Sub(a, b *Matrix, opts ...Option) (*Matrix, error) {
	return addSub(a, b, -1, opSub, opts)
}

// Mul returns the matrix product a·b with shape a.Rows()×b.Cols().
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: group b's entries by row k (the contraction index).
//   - Stage 3: for every a[i][k], visit only row k of b and accumulate
//     a[i][k]·b[k][j] into cell (i, j).
//   - Stage 4: Build drops sums that cancelled to zero.
//
// Behavior highlights:
//   - The k range is never scanned densely; rows of b with no entries cost nothing.
//   - a is walked in row-major order so the summation order per cell is fixed
//     and results are reproducible bit for bit.
//
// Errors:
//   - ErrNilMatrix (wrapped), *DimensionError when a.Cols() != b.Rows().
//   - ErrNaNInf (wrapped) when a product or partial sum overflows.
//
// Complexity: O(nnz(b) + Σ_k nnzcol_a(k)·nnzrow_b(k)) time plus O(nnz(a)·log nnz(a))
// for ordering a.
func Mul(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	if err := ValidateMulShape(opMul, a, b); err != nil {
		return nil, err
	}

	bRows := groupByRow(b)
	out := newBuilder(a.rows, b.cols, len(a.entries), gatherOptions(opts...))
	for _, ea := range a.Entries() {
		for _, eb := range bRows[ea.Col] {
			out.add(Coord{Row: ea.Row, Col: eb.Col}, ea.Value*eb.Value)
		}
	}

	m, err := out.Build()
	if err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	return m, nil
}

// groupByRow indexes m's entries by row, each row ordered by column.
func groupByRow(m *Matrix) map[int][]Entry {
	rows := make(map[int][]Entry)
	for _, e := range m.Entries() {
		rows[e.Row] = append(rows[e.Row], e)
	}

	return rows
}

// Negate returns -m. Negation never produces a zero, so the entry set is
// preserved exactly.
func Negate(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opNegate, err)
	}
	out := &Matrix{rows: m.rows, cols: m.cols, entries: make(map[Coord]float64, len(m.entries))}
	for c, v := range m.entries {
		out.entries[c] = -v
	}

	return out, nil
}

// Transpose returns mᵀ with shape Cols()×Rows().
// Complexity: O(nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}
	out := &Matrix{rows: m.cols, cols: m.rows, entries: make(map[Coord]float64, len(m.entries))}
	for c, v := range m.entries {
		out.entries[Coord{Row: c.Col, Col: c.Row}] = v
	}

	return out, nil
}

// Scale returns s·m. Products that fall to zero under the policy (s == 0,
// or underflow) are dropped; overflow yields ErrNaNInf under the default policy.
// Complexity: O(nnz).
func Scale(m *Matrix, s float64, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}
	out := newBuilder(m.rows, m.cols, len(m.entries), gatherOptions(opts...))
	for c, v := range m.entries {
		out.add(c, s*v)
	}

	prod, err := out.Build()
	if err != nil {
		return nil, sparseErrorf(opScale, err)
	}

	return prod, nil
}
