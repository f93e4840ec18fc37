// Package ogr is a small engine for exploring Optimal Golomb Rulers: integer
// marks whose pairwise distances are all distinct.
//
// 🚀 What is in ogr?
//
//   - golomb/    - Ruler value type, O(n²) validator, distance sets
//   - generator/ - naive doubling and greedy first-fit constructions
//   - triu/      - upper-triangular distance encoding for external solvers
//   - cmd/ogr    - command-line front end (generate, validate, encode,
//     decode, compare)
//
// ✨ Guarantees:
//
//   - Pure, deterministic, synchronous functions; no global state.
//   - Rulers are immutable; validated construction is the default gate.
//   - Sentinel errors matched with errors.Is; panics only on internal
//     invariant defects.
//
// Quick ASCII example (order 4, optimal, length 6):
//
//	0 1       4   6
//	|-|-------|---|
//
// measures every distance 1..6 exactly once.
//
// Finding provably optimal rulers is the job of an external solver; ogr
// prepares its input (triu.Encode) and reads its output (triu.Decode).
//
//	go get github.com/katalvlaran/ogr
package ogr
