// SPDX-License-Identifier: MIT

// Package generator constructs Golomb rulers of a requested order.
//
// 🚀 Two constructions:
//
//   - Naive    - doubling recurrence 0, 1, 3, 7, 15, ... (2^(k-1)-1).
//     Always valid, exponential length. A baseline.
//   - Improved - greedy first-fit: extend the previous ruler with the
//     smallest mark that introduces no repeated distance.
//     0, 1, 3, 7, 12, 20, 30, 44, 65, 80, ...
//
// Both are pure, deterministic and iterative (no recursion depth limits).
//
// ⚙️ Usage:
//
//	marks, err := generator.Improved(10)   // []int
//
//	r, err := generator.Generate(10,
//	  generator.WithAlgorithm(generator.AlgoNaive),
//	  generator.WithOnMark(func(order, mark int) { ... }),
//	)
//
//	rows, err := generator.Compare(20)     // naive vs improved lengths
//
// Errors: golomb.ErrInvalidOrder for order < 1, ErrOrderTooLarge when marks
// would overflow int, ErrOptionViolation for bad options.
package generator
