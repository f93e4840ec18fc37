// SPDX-License-Identifier: MIT
// Package triu: sentinel errors. Every message is prefixed with "triu: ";
// wrap with fmt.Errorf("ctx: %w", ErrX) when context matters.

package triu

import "errors"

var (
	// ErrDecodeBounds is returned when Decode receives fewer than order-1
	// distances.
	ErrDecodeBounds = errors.New("triu: not enough distances to decode")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the packed matrix.
	ErrIndexOutOfBounds = errors.New("triu: index out of bounds")

	// ErrDiagonal indicates a write to the implicit zero diagonal.
	ErrDiagonal = errors.New("triu: diagonal is not stored")

	// ErrInvalidOrder indicates a negative matrix order.
	ErrInvalidOrder = errors.New("triu: order must be >= 0")

	// ErrParse indicates a token in solver output that is not an integer.
	ErrParse = errors.New("triu: cannot parse distance")
)
