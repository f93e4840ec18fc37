// SPDX-License-Identifier: MIT

// Package generator provides tunable options and error definitions for
// constructive Golomb ruler generation.
package generator

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for generation.
var (
	// ErrOrderTooLarge is returned when the requested order would overflow
	// int for the selected algorithm (naive doubling past 2^62).
	ErrOrderTooLarge = errors.New("generator: order too large for int marks")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")

	// ErrUnknownAlgorithm is returned for Algorithm values outside the enum.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")
)

// Algorithm selects the construction used by Generate.
//
//   - AlgoNaive    - doubling recurrence: mark k is 2^(k-1)-1. O(n) time,
//     exponential length.
//   - AlgoImproved - greedy first-fit extension of the order-1 ruler. Polynomial
//     time, much shorter rulers.
type Algorithm int

const (
	// AlgoNaive is the doubling recurrence.
	AlgoNaive Algorithm = iota

	// AlgoImproved is the greedy first-fit extension.
	AlgoImproved
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgoNaive:
		return "naive"
	case AlgoImproved:
		return "improved"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "naive" / "improved" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive":
		return AlgoNaive, nil
	case "improved":
		return AlgoImproved, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Option configures Generate via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for Generate.
type Options struct {
	// Algorithm picks the construction (default AlgoImproved).
	Algorithm Algorithm

	// SkipValidation wraps the result with golomb.NewTrusted instead of
	// golomb.New. Both generators guarantee the property by construction.
	SkipValidation bool

	// OnMark is called for every mark appended beyond the first, with the
	// order reached and the new mark.
	OnMark func(order, mark int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Algorithm = AlgoImproved
//   - validation enabled
//   - no-op OnMark hook.
func DefaultOptions() Options {
	return Options{
		Algorithm:      AlgoImproved,
		SkipValidation: false,
		OnMark:         func(int, int) {},
	}
}

// WithAlgorithm selects the construction.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a != AlgoNaive && a != AlgoImproved {
			o.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrUnknownAlgorithm, int(a))

			return
		}
		o.Algorithm = a
	}
}

// WithSkipValidation trusts the generated sequence without re-checking it.
func WithSkipValidation() Option {
	return func(o *Options) {
		o.SkipValidation = true
	}
}

// WithOnMark registers a callback run for every appended mark.
func WithOnMark(fn func(order, mark int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMark = fn
		}
	}
}

// Comparison is one row of the naive-vs-improved table built by Compare.
type Comparison struct {
	Order          int `json:"order" yaml:"order"`
	NaiveLength    int `json:"naive_length" yaml:"naive_length"`
	ImprovedLength int `json:"improved_length" yaml:"improved_length"`
}
