// SPDX-License-Identifier: MIT

package golomb

// Dist returns |a-b|.
func Dist(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}

// IsGolombRuler reports whether seq satisfies the Golomb property.
//
// Contract:
//   - any negative element ⇒ false (fails closed, never errors);
//   - only unordered pairs i<j are measured, so the zero self-distance and
//     the symmetric duplicate d(j,i) are never counted;
//   - returns false at the first repeated distance;
//   - empty and single-element sequences are vacuously true.
//
// Order of marks is irrelevant: [3 0 1] is as valid as [0 1 3].
//
// Complexity: O(n²) time, O(n²) extra space for the distance set.
func IsGolombRuler(seq []int) bool {
	// Stage 1 (Validate): marks must be non-negative.
	for _, m := range seq {
		if m < 0 {
			return false
		}
	}

	// Stage 2 (Execute): insert every d(i,j), i<j, stop at the first repeat.
	n := len(seq)
	seen := make(map[int]struct{}, n*(n-1)/2)
	var i, j, d int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Dist(seq[i], seq[j])
			if _, dup := seen[d]; dup {
				return false
			}
			seen[d] = struct{}{}
		}
	}

	return true
}

// ComputeDistances returns the set of distinct pairwise distances of seq
// (pairs i<j). It does not validate: colliding distances collapse into a
// single entry, so len(result) < n(n-1)/2 exactly when seq is not Golomb
// (ignoring negative marks).
//
// Complexity: O(n²).
func ComputeDistances(seq []int) map[int]struct{} {
	n := len(seq)
	set := make(map[int]struct{}, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			set[Dist(seq[i], seq[j])] = struct{}{}
		}
	}

	return set
}
