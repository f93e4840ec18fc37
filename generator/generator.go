// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/ogr/golomb"
)

// maxNaiveOrder is the largest order whose last naive mark 2^(order-1)-1
// still fits in int.
const maxNaiveOrder = strconv.IntSize - 1

// Naive - doubling recurrence
//
// Description:
//
//	order 1 ⇒ [0]; order k appends 2^(k-1)-1 to the order k-1 ruler.
//	Every new mark lies past twice the previous one, so each new distance
//	exceeds every existing distance and no collision is possible. The
//	ruler is valid but its length grows exponentially: a baseline only.
//
// Built as a loop from order 1 upwards; output equals the recursive form.
//
// Complexity: O(n) time and memory.
//
// Errors:
//   - golomb.ErrInvalidOrder - order < 1.
//   - ErrOrderTooLarge       - last mark would overflow int.
func Naive(order int) ([]int, error) {
	return naive(order, nil)
}

func naive(order int, onMark func(order, mark int)) ([]int, error) {
	if order < 1 {
		return nil, golomb.InvalidOrder(order)
	}
	if order > maxNaiveOrder {
		return nil, fmt.Errorf("%w: naive order %d exceeds %d", ErrOrderTooLarge, order, maxNaiveOrder)
	}

	marks := make([]int, 1, order)
	var k, mark int
	for k = 2; k <= order; k++ {
		mark = 1<<(k-1) - 1
		marks = append(marks, mark)
		if onMark != nil {
			onMark(k, mark)
		}
	}

	return marks, nil
}

// Improved - greedy first-fit extension
//
// Description:
//
//	Orders 1, 2, 3 are the hand-picked optimal rulers [0], [0 1], [0 1 3].
//	For k ≥ 4, with prev the order k-1 result (ascending):
//	  1. D = ComputeDistances(prev).
//	  2. For c = last(prev) .. 2·last(prev)+1:
//	       skip c if c ∈ prev;
//	       accept c if |c-m| ∉ D for every mark m ∈ prev.
//	  3. Append the first accepted c.
//
//	The scan is first-fit: it takes the smallest feasible candidate and
//	never looks further, so the final length is not minimized. The upper
//	bound 2·last+1 always admits a candidate (the doubling argument behind
//	Naive); exhausting it is a defect and panics with
//	golomb.ErrInvariantViolation.
//
// Accepted candidates are strictly greater than last(prev), so the result
// stays sorted ascending without re-sorting.
//
// Complexity: per level O(k²) for D plus O(k·L) for the scan, L = last(prev).
//
// Errors:
//   - golomb.ErrInvalidOrder - order < 1.
//   - ErrOrderTooLarge       - the candidate bound would overflow int.
func Improved(order int) ([]int, error) {
	return improved(order, nil)
}

func improved(order int, onMark func(order, mark int)) ([]int, error) {
	if order < 1 {
		return nil, golomb.InvalidOrder(order)
	}

	// Stage 1 (Prepare): base rulers.
	base := []int{0, 1, 3}
	if order < len(base) {
		base = base[:order]
	}
	marks := make([]int, 0, order)
	marks = append(marks, base...)
	if onMark != nil {
		for k := 1; k < len(marks); k++ {
			onMark(k+1, marks[k])
		}
	}

	// Stage 2 (Execute): extend one mark per level.
	var k, c int
	for k = len(marks) + 1; k <= order; k++ {
		c = nextMark(marks)
		if c < 0 {
			return nil, fmt.Errorf("%w: improved order %d", ErrOrderTooLarge, order)
		}
		marks = append(marks, c)
		if onMark != nil {
			onMark(k, c)
		}
	}

	return marks, nil
}

// nextMark returns the first feasible candidate for extending prev, or -1
// if the scan bound would overflow int. It panics when the bounded range
// holds no candidate.
func nextMark(prev []int) int {
	last := prev[len(prev)-1]
	if last > (math.MaxInt-1)/2 {
		return -1
	}
	upper := 2*last + 1

	distances := golomb.ComputeDistances(prev)
	present := make(map[int]struct{}, len(prev))
	for _, m := range prev {
		present[m] = struct{}{}
	}

	var c int
	for c = last; c <= upper; c++ {
		if _, taken := present[c]; taken {
			continue
		}
		if acceptCandidate(c, prev, distances) {
			return c
		}
	}

	panic(fmt.Errorf("%w: no candidate in [%d, %d] extends %v", golomb.ErrInvariantViolation, last, upper, prev))
}

// acceptCandidate reports whether |c-m| is a new distance for every m.
// Complexity: O(len(prev)).
func acceptCandidate(c int, prev []int, distances map[int]struct{}) bool {
	for _, m := range prev {
		if _, used := distances[golomb.Dist(c, m)]; used {
			return false
		}
	}

	return true
}

// Generate builds a Ruler of the given order with the configured algorithm.
// Stage 1 (Validate): apply options, surface ErrOptionViolation.
// Stage 2 (Execute): run Naive or Improved with the OnMark hook.
// Stage 3 (Finalize): wrap via golomb.New, or golomb.NewTrusted when
// SkipValidation is set.
func Generate(order int, opts ...Option) (*golomb.Ruler, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		marks []int
		err   error
	)
	switch o.Algorithm {
	case AlgoNaive:
		marks, err = naive(order, o.OnMark)
	case AlgoImproved:
		marks, err = improved(order, o.OnMark)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
	}
	if err != nil {
		return nil, err
	}

	if o.SkipValidation {
		return golomb.NewTrusted(marks), nil
	}

	return golomb.New(marks)
}

// Compare tabulates naive and improved ruler lengths for orders
// 1..maxOrder. maxOrder is capped by the naive generator's int range.
func Compare(maxOrder int) ([]Comparison, error) {
	if maxOrder < 1 {
		return nil, golomb.InvalidOrder(maxOrder)
	}
	naiveMarks, err := Naive(maxOrder)
	if err != nil {
		return nil, err
	}

	// Order 1 emits no mark, so its row is seeded; every later level of the
	// improved run reports its new last mark, which is that order's length.
	rows := make([]Comparison, 1, maxOrder)
	rows[0] = Comparison{Order: 1}
	if _, err = improved(maxOrder, func(order, mark int) {
		rows = append(rows, Comparison{Order: order, NaiveLength: naiveMarks[order-1], ImprovedLength: mark})
	}); err != nil {
		return nil, err
	}

	return rows, nil
}
