// SPDX-License-Identifier: MIT
// Package golomb: sentinel error set shared by the ruler, generator and
// codec packages. Callers match with errors.Is; context is added with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary.

package golomb

import (
	"errors"
	"fmt"
)

var (
	// ErrNotGolombRuler is returned by validated construction when two
	// pairwise distances coincide or a mark is negative.
	ErrNotGolombRuler = errors.New("golomb: sequence is not a Golomb ruler")

	// ErrInvalidOrder indicates a requested order below 1.
	ErrInvalidOrder = errors.New("golomb: order must be >= 1")

	// ErrInvariantViolation prefixes panics raised on internal defects.
	// It is never returned as an ordinary error value.
	ErrInvariantViolation = errors.New("golomb: internal invariant violated")
)

// NotGolombRulerError carries the sequence rejected by New.
type NotGolombRulerError struct {
	Sequence []int
}

// Error implements error.
func (e *NotGolombRulerError) Error() string {
	return fmt.Sprintf("golomb: input sequence %v does not satisfy the Golomb ruler conditions", e.Sequence)
}

// Is reports true for ErrNotGolombRuler so callers can match on the sentinel.
func (e *NotGolombRulerError) Is(target error) bool {
	return target == ErrNotGolombRuler
}

// InvalidOrder wraps ErrInvalidOrder with the offending value.
func InvalidOrder(order int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
}
