// SPDX-License-Identifier: MIT

package triu

import (
	"fmt"
	"strings"
)

// packedErrorf wraps an underlying error with Packed method context.
func packedErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Packed.%s(%d,%d): %w", method, row, col, err)
}

// Packed is a symmetric, zero-diagonal n×n int matrix that stores only the
// strict upper triangle, row-major, in a flat slice of Size(n) elements.
// Entry (i,j) and (j,i) share one slot; (i,i) is always 0.
type Packed struct {
	n    int   // order (matrix is n×n)
	data []int // flat storage, len == Size(n)
}

// NewPacked creates an order-n Packed matrix initialized to zeros.
// Stage 1 (Validate): n ≥ 0.
// Stage 2 (Prepare): allocate Size(n) slots.
// Complexity: O(n²) time and memory.
func NewPacked(n int) (*Packed, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, n)
	}

	return &Packed{n: n, data: make([]int, Size(n))}, nil
}

// Order returns n.
func (p *Packed) Order() int {
	return p.n
}

// Len returns the number of stored elements, Size(n).
func (p *Packed) Len() int {
	return len(p.data)
}

// indexOf maps (row, col) onto the flat slice.
// Stage 1 (Validate): 0 ≤ row, col < n.
// Stage 2 (Normalize): swap so row < col; the diagonal has no slot.
// Stage 3 (Execute): LinearIndex(n, row, col-row-1).
// Returns (-1, nil) for a diagonal cell.
// Complexity: O(1).
func (p *Packed) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= p.n || col < 0 || col >= p.n {
		return 0, packedErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if row == col {
		return -1, nil
	}
	if row > col {
		row, col = col, row
	}

	return LinearIndex(p.n, row, col-row-1), nil
}

// At retrieves the entry at (row, col); diagonal cells read as 0.
// Complexity: O(1).
func (p *Packed) At(row, col int) (int, error) {
	idx, err := p.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		return 0, nil
	}

	return p.data[idx], nil
}

// Set assigns v at (row, col) and, by symmetry, at (col, row).
// Writing the diagonal returns ErrDiagonal.
// Complexity: O(1).
func (p *Packed) Set(row, col, v int) error {
	idx, err := p.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if idx < 0 {
		return packedErrorf("Set", row, col, ErrDiagonal)
	}
	p.data[idx] = v

	return nil
}

// Row returns a copy of the contiguous block for row i: entries
// (i, i+1) .. (i, n-1). The last row is empty.
func (p *Packed) Row(i int) ([]int, error) {
	if i < 0 || i >= p.n {
		return nil, packedErrorf("Row", i, i, ErrIndexOutOfBounds)
	}
	start := ElementsBeforeRow(p.n, i)
	end := ElementsBeforeRow(p.n, i+1)
	out := make([]int, end-start)
	copy(out, p.data[start:end])

	return out, nil
}

// Data returns a copy of the flat upper-triangular encoding.
func (p *Packed) Data() []int {
	out := make([]int, len(p.data))
	copy(out, p.data)

	return out
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (p *Packed) Clone() *Packed {
	return &Packed{n: p.n, data: p.Data()}
}

// String renders the full symmetric matrix, one row per line:
//
//	[0 1 3]
//	[1 0 2]
//	[3 2 0]
func (p *Packed) String() string {
	var sb strings.Builder
	var i, j, v int
	for i = 0; i < p.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < p.n; j++ {
			v, _ = p.At(i, j) // indices are in range by loop bounds
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
