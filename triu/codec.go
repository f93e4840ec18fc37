// SPDX-License-Identifier: MIT

package triu

import (
	"fmt"

	"github.com/katalvlaran/ogr/golomb"
)

// Size returns the number of distances in the encoding of an order-n
// ruler: n(n-1)/2, or 0 when n < 2.
func Size(order int) int {
	if order < 2 {
		return 0
	}

	return order * (order - 1) / 2
}

// ElementsBeforeRow counts the encoding elements preceding 0-based row
// `row` of an order-n ruler:
//
//	Σ_{k=0}^{row-1} (n-1-k) = row·(2n-row-1)/2
//
// row and 2n-row-1 have opposite parity, so the product is even and the
// division exact. Valid for 0 ≤ row ≤ n; row = n (or n-1) yields Size(n).
//
// Example (n=3): rows 0, 1, 2 ⇒ 0, 2, 3.
func ElementsBeforeRow(order, row int) int {
	return row * (2*order - row - 1) / 2
}

// LinearIndex returns the flat offset of column offset col inside row
// `row`. For the mark pair (i, j), j > i, use col = j-i-1.
func LinearIndex(order, row, col int) int {
	return ElementsBeforeRow(order, row) + col
}

// Encode returns every pairwise distance |m[i]-m[j]|, i<j, in row-major
// enumeration order. For [0 1 3] the result is [1 3 2].
// Complexity: O(n²).
func Encode(r *golomb.Ruler) []int {
	marks := r.Marks()
	n := len(marks)
	out := make([]int, 0, Size(n))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, golomb.Dist(marks[i], marks[j]))
		}
	}

	return out
}

// EncodePacked writes the same distances into a Packed matrix, addressing
// each slot through LinearIndex. Data() of the result equals Encode(r).
// Complexity: O(n²).
func EncodePacked(r *golomb.Ruler) *Packed {
	n := r.Order()
	p := &Packed{n: n, data: make([]int, Size(n))}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p.data[LinearIndex(n, i, j-i-1)] = golomb.Dist(r.At(i), r.At(j))
		}
	}

	return p
}

// Decode rebuilds an order-n ruler from solver output.
//
// The first mark is fixed at 0 and marks 1..n-1 are distances[0:n-1]
// verbatim; the remaining triangular entries are ignored. The result is
// built with golomb.NewTrusted: no re-validation.
//
// Errors:
//   - golomb.ErrInvalidOrder - order < 1.
//   - ErrDecodeBounds        - len(distances) < order-1.
func Decode(distances []int, order int) (*golomb.Ruler, error) {
	marks, err := decodeMarks(distances, order)
	if err != nil {
		return nil, err
	}

	return golomb.NewTrusted(marks), nil
}

// DecodeStrict is Decode followed by validation; malformed solver output
// yields golomb.ErrNotGolombRuler.
func DecodeStrict(distances []int, order int) (*golomb.Ruler, error) {
	marks, err := decodeMarks(distances, order)
	if err != nil {
		return nil, err
	}

	return golomb.New(marks)
}

func decodeMarks(distances []int, order int) ([]int, error) {
	if order < 1 {
		return nil, golomb.InvalidOrder(order)
	}
	if len(distances) < order-1 {
		return nil, fmt.Errorf("%w: have %d, need %d for order %d", ErrDecodeBounds, len(distances), order-1, order)
	}
	marks := make([]int, 1, order)
	marks = append(marks, distances[:order-1]...)

	return marks, nil
}
