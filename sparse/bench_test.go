// SPDX-License-Identifier: MIT
// Package sparse_test provides benchmarks for the kernels on seeded random
// operands of fixed density.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
)

// benchSizes are square matrix sizes at ~1% density.
var benchSizes = []int{256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix
	sinkS string
)

func benchPair(b *testing.B, n int) (*sparse.Matrix, *sparse.Matrix) {
	rng := rand.New(rand.NewSource(int64(n)))
	return randomInt(b, rng, n, n, 0.01), randomInt(b, rng, n, n, 0.01)
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkParseSerialize(b *testing.B) {
	b.ReportAllocs()
	x, _ := benchPair(b, 1024)
	text := sparse.Serialize(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := sparse.Parse(text)
		if err != nil {
			b.Fatal(err)
		}
		sinkS = sparse.Serialize(m)
	}
}
