// SPDX-License-Identifier: MIT

package golomb

import (
	"fmt"
	"slices"
)

// Ruler is an immutable Golomb ruler.
//
// The zero value is an empty ruler of order 0. A Ruler built through New
// always satisfies the Golomb property; one built through NewTrusted carries
// whatever the caller supplied. Marks are stored in the order given.
type Ruler struct {
	marks []int // private copy, never mutated after construction
}

// New validates seq and returns a Ruler holding a copy of it.
// Stage 1 (Validate): IsGolombRuler(seq).
// Stage 2 (Finalize): copy marks so later caller writes cannot leak in.
// Returns *NotGolombRulerError (matching ErrNotGolombRuler) on failure.
// Complexity: O(n²).
func New(seq []int) (*Ruler, error) {
	if !IsGolombRuler(seq) {
		return nil, &NotGolombRulerError{Sequence: slices.Clone(seq)}
	}

	return NewTrusted(seq), nil
}

// NewTrusted stores seq without checking the Golomb property. It is meant
// for reconstruction paths that guarantee the property by construction
// (decoded solver output, generator results).
// Complexity: O(n).
func NewTrusted(seq []int) *Ruler {
	marks := make([]int, len(seq))
	copy(marks, seq)

	return &Ruler{marks: marks}
}

// Order returns the number of marks.
func (r *Ruler) Order() int {
	return len(r.marks)
}

// Marks returns a copy of the mark sequence.
func (r *Ruler) Marks() []int {
	return slices.Clone(r.marks)
}

// At returns the i-th mark. It panics if i is out of range, like a slice.
func (r *Ruler) At(i int) int {
	return r.marks[i]
}

// Length is the span between the smallest and largest mark (0 when the
// ruler has fewer than two marks).
func (r *Ruler) Length() int {
	if len(r.marks) < 2 {
		return 0
	}

	return slices.Max(r.marks) - slices.Min(r.marks)
}

// Distances returns every pairwise distance d(i,j), i<j, sorted ascending.
// For a ruler built by New the result has no repeats.
// Complexity: O(n² log n).
func (r *Ruler) Distances() []int {
	n := len(r.marks)
	if n < 2 {
		return []int{}
	}
	out := make([]int, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out = append(out, Dist(r.marks[i], r.marks[j]))
		}
	}
	slices.Sort(out)

	return out
}

// MissingDistances returns the values in 1..Length() that no pair of marks
// measures. Trusted rulers with repeated marks also measure 0, which is
// never reported.
// Complexity: O(n² + L) where L = Length().
func (r *Ruler) MissingDistances() []int {
	length := r.Length()
	if length == 0 {
		return []int{}
	}
	measured := ComputeDistances(r.marks)
	missing := make([]int, 0, max(0, length-len(measured)))
	for d := 1; d <= length; d++ {
		if _, ok := measured[d]; !ok {
			missing = append(missing, d)
		}
	}

	return missing
}

// IsPerfect reports whether the ruler is a Golomb ruler measuring every
// distance 1..Length().
func (r *Ruler) IsPerfect() bool {
	return IsGolombRuler(r.marks) && len(r.MissingDistances()) == 0
}

// Equal reports whether both rulers hold the same marks in the same order.
func (r *Ruler) Equal(other *Ruler) bool {
	if r == nil || other == nil {
		return r == other
	}

	return slices.Equal(r.marks, other.marks)
}

// String implements fmt.Stringer, e.g. "[0 1 3]".
func (r *Ruler) String() string {
	return fmt.Sprint(r.marks)
}
