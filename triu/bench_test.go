// SPDX-License-Identifier: MIT

package triu_test

import (
	"testing"

	"github.com/katalvlaran/ogr/generator"
	"github.com/katalvlaran/ogr/golomb"
	"github.com/katalvlaran/ogr/triu"
)

// benchmarkEncode times fn on the improved ruler of the given order.
func benchmarkEncode(b *testing.B, order int, fn func(*golomb.Ruler)) {
	r, err := generator.Generate(order)
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		fn(r)
	}
}

// BenchmarkEncode_Order50 benchmarks sequential fill.
func BenchmarkEncode_Order50(b *testing.B) {
	benchmarkEncode(b, 50, func(r *golomb.Ruler) { _ = triu.Encode(r) })
}

// BenchmarkEncodePacked_Order50 benchmarks explicit index addressing.
func BenchmarkEncodePacked_Order50(b *testing.B) {
	benchmarkEncode(b, 50, func(r *golomb.Ruler) { _ = triu.EncodePacked(r) })
}
