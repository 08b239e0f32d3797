// Package sparsemat is arithmetic on sparse matrices stored as coordinate
// (COO) triples, from text file to text file.
//
// What is inside?
//
//	sparse/          — Matrix entity, text parser/serializer, Add/Sub/Mul kernels
//	config/          — YAML + .env + environment settings for the shell
//	workspace/       — input/output directories over any afs storage URL
//	cmd/sparsecalc/  — cobra CLI tying the pieces together
//
// Quick example:
//
//	rows=2            rows=2            rows=2
//	cols=2      +     cols=2      =     cols=2
//	(0, 0, 5)         (0, 0, -5)        (0, 1, 2)
//	(1, 1, 3)         (0, 1, 2)         (1, 1, 3)
//
// The (0,0) cells cancel and are not stored: a result never holds a zero.
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsecalc@latest
package sparsemat
