// SPDX-License-Identifier: MIT

package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ogr/golomb"
)

// TestNextMark_FirstFit checks that the scan returns the smallest feasible
// candidate rather than the one minimizing any later length.
func TestNextMark_FirstFit(t *testing.T) {
	assert.Equal(t, 7, nextMark([]int{0, 1, 3}))
	assert.Equal(t, 12, nextMark([]int{0, 1, 3, 7}))
	// An optimal order-4 prefix extends to the optimal order-5 ruler.
	assert.Equal(t, 11, nextMark([]int{0, 1, 4, 9}))
}

// TestNextMark_ExhaustedPanics forces an empty candidate range; only a
// malformed prev (negative marks) can reach it.
func TestNextMark_ExhaustedPanics(t *testing.T) {
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected panic")
		err, ok := rec.(error)
		require.True(t, ok, "panic value must be an error")
		assert.True(t, errors.Is(err, golomb.ErrInvariantViolation))
	}()

	nextMark([]int{-3, -1})
}

// TestNextMark_OverflowGuard reports -1 instead of wrapping around.
func TestNextMark_OverflowGuard(t *testing.T) {
	assert.Equal(t, -1, nextMark([]int{0, int(^uint(0) >> 1)}))
}
