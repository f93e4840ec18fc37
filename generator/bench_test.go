// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/katalvlaran/ogr/generator"
)

// benchmarkGenerator runs fn(order) b.N times and fails on unexpected errors.
func benchmarkGenerator(b *testing.B, order int, fn func(int) ([]int, error)) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(order); err != nil {
			b.Fatalf("generation failed: %v", err)
		}
	}
}

// BenchmarkNaive_Order60 benchmarks the doubling recurrence.
func BenchmarkNaive_Order60(b *testing.B) {
	benchmarkGenerator(b, 60, generator.Naive)
}

// BenchmarkImproved_Order20 benchmarks greedy extension on a small order.
func BenchmarkImproved_Order20(b *testing.B) {
	benchmarkGenerator(b, 20, generator.Improved)
}

// BenchmarkImproved_Order80 benchmarks greedy extension on a larger order.
func BenchmarkImproved_Order80(b *testing.B) {
	benchmarkGenerator(b, 80, generator.Improved)
}
