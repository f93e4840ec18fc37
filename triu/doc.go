// SPDX-License-Identifier: MIT

// Package triu encodes a ruler's pairwise distances in the flat
// upper-triangular layout exchanged with external optimization solvers,
// and decodes solver output back into a ruler.
//
// 📐 Layout (order n = 4):
//
//	         j=1     j=2     j=3
//	i=0 |  d(0,1)  d(0,2)  d(0,3) |  row 0 → offsets 0..2
//	i=1 |    -     d(1,2)  d(1,3) |  row 1 → offsets 3..4
//	i=2 |    -       -     d(2,3) |  row 2 → offset  5
//
//	flat = [d01 d02 d03 d12 d13 d23], len = n(n-1)/2
//
// Row i starts at ElementsBeforeRow(n, i) = i(2n-i-1)/2 and the entry for
// mark pair (i, j), j > i, sits at LinearIndex(n, i, j-i-1). The order is
// enumeration order (row-major, i<j), not sorted distance order.
//
// ✨ What lives here:
//   - Size / ElementsBeforeRow / LinearIndex - exact integer index math.
//   - Packed - bounds-checked packed upper-triangular int matrix.
//   - Encode / EncodePacked - ruler → distances.
//   - Decode / DecodeStrict - first n-1 distances → ruler with mark 0 at 0.
//   - ParseDistances - integers out of solver text.
//
// Decoding is a projection, not an inverse: only the distances from mark 0
// are read, which is what a solver formulation fixing mark 0 at position 0
// provides. Encode followed by Decode reproduces a ruler whose first mark
// is 0 and whose marks ascend.
package triu
