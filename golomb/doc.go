// SPDX-License-Identifier: MIT

// Package golomb defines the Golomb ruler value type and the validator that
// guards its construction.
//
// 📏 What is a Golomb ruler?
//
//	A sequence of non-negative integers (marks) such that every pairwise
//	absolute difference is distinct. The number of marks is the ruler's
//	order; the span between the smallest and largest mark is its length.
//
//	   0   1       3
//	   |---|-------|
//	   d(0,1)=1  d(1,2)=2  d(0,2)=3   → all distinct ⇒ Golomb
//
// ✨ What lives here:
//   - IsGolombRuler - O(n²) validator, fails closed on negative marks.
//   - ComputeDistances - the distinct pairwise distance set, used as a
//     lookup table by the generators.
//   - Ruler - immutable value; New validates, NewTrusted skips the check
//     for reconstruction paths that already guarantee the property.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ogr/golomb"
//
//	r, err := golomb.New([]int{0, 1, 4, 6})
//	if err != nil {
//	  // errors.Is(err, golomb.ErrNotGolombRuler)
//	}
//	fmt.Println(r.Order(), r.Length(), r.MissingDistances())
//
// The package never logs and never panics on user input; failures are
// reported through the sentinels in errors.go.
package golomb
