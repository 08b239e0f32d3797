// SPDX-License-Identifier: MIT

// Package sparse implements real-valued sparse matrices in coordinate (COO)
// form together with their text format and arithmetic.
//
// What & Why:
//
//	A Matrix stores only its non-zero cells, keyed by (row, col). Every
//	operation (Add, Sub, Mul, Negate, Transpose, Scale) works on those
//	coordinate lists directly and never allocates a dense rows×cols buffer,
//	so cost follows the number of stored entries rather than the shape.
//
// Invariants:
//
//   - No stored entry is zero. Parse rejects explicit zeros and every
//     producing operation drops cells that cancel to zero.
//   - Each (row, col) key is unique and within 0 ≤ row < Rows, 0 ≤ col < Cols.
//   - A Matrix is immutable once built; operations return fresh values, so
//     independent calls may run concurrently without locking.
//
// Text format:
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Serialization emits entries in row-major order (row, then column) and
// formats values so that Parse(Serialize(m)) reproduces m exactly.
//
// Numeric policy:
//
//	"Zero" means |v| <= eps, where eps comes from WithEpsilon and defaults to
//	0 (exact comparison). The same predicate is applied by New, Parse and the
//	Builder behind every arithmetic kernel. Floating-point rounding in long
//	sums is accepted as-is; it is not reported as an error. Overflow is: a
//	result cell that reaches ±Inf or NaN fails the kernel with ErrNaNInf
//	unless WithNoValidateNaNInf is given, so no matrix ever holds a value the
//	text format cannot parse back.
//
// Complexity:
//
//	Add/Sub run in O(nnz(a) + nnz(b)). Mul runs in O(Σ_k nnzcol_a(k)·nnzrow_b(k))
//	plus the cost of grouping b by row.
package sparse
