// SPDX-License-Identifier: MIT

package golomb_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ogr/golomb"
)

// bruteForceGolomb is an independent oracle: collect all i<j distances into
// a slice and look for any repeat by pairwise comparison.
func bruteForceGolomb(seq []int) bool {
	var ds []int
	for i := range seq {
		if seq[i] < 0 {
			return false
		}
		for j := i + 1; j < len(seq); j++ {
			ds = append(ds, golomb.Dist(seq[i], seq[j]))
		}
	}
	for a := range ds {
		for b := a + 1; b < len(ds); b++ {
			if ds[a] == ds[b] {
				return false
			}
		}
	}

	return true
}

// TestIsGolombRuler_Table covers vacuous, valid, colliding and negative inputs.
func TestIsGolombRuler_Table(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want bool
	}{
		{"empty", []int{}, true},
		{"nil", nil, true},
		{"single", []int{5}, true},
		{"pair", []int{0, 1}, true},
		{"order3", []int{0, 1, 3}, true},
		{"order3 unsorted", []int{3, 0, 1}, true},
		{"order4 optimal", []int{0, 1, 4, 6}, true},
		{"order5 optimal", []int{0, 1, 4, 9, 11}, true},
		{"evenly spaced", []int{0, 1, 2}, false},
		{"repeated mark", []int{0, 0}, true},
		{"repeated mark pair", []int{0, 0, 1}, false},
		{"negative", []int{0, -1, 3}, false},
		{"negative single", []int{-1}, false},
		{"late collision", []int{0, 1, 3, 7, 8}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, golomb.IsGolombRuler(tc.seq))
			assert.Equal(t, bruteForceGolomb(tc.seq), golomb.IsGolombRuler(tc.seq), "oracle disagreement")
		})
	}
}

// TestIsGolombRuler_Exhaustive compares against the oracle for every
// 4-mark sequence over 0..6.
func TestIsGolombRuler_Exhaustive(t *testing.T) {
	var seq [4]int
	for seq[0] = 0; seq[0] <= 6; seq[0]++ {
		for seq[1] = 0; seq[1] <= 6; seq[1]++ {
			for seq[2] = 0; seq[2] <= 6; seq[2]++ {
				for seq[3] = 0; seq[3] <= 6; seq[3]++ {
					s := seq[:]
					require.Equal(t, bruteForceGolomb(s), golomb.IsGolombRuler(s), "seq=%v", s)
				}
			}
		}
	}
}

// TestComputeDistances checks the distinct set and collision collapse.
func TestComputeDistances(t *testing.T) {
	got := golomb.ComputeDistances([]int{0, 1, 3})
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, got)

	// 0,1,2 measures 1,2,1 → collision collapses to {1,2}.
	got = golomb.ComputeDistances([]int{0, 1, 2})
	assert.Len(t, got, 2)
	assert.Contains(t, got, 1)
	assert.Contains(t, got, 2)

	assert.Empty(t, golomb.ComputeDistances(nil))
	assert.Empty(t, golomb.ComputeDistances([]int{7}))
}

// TestDist verifies symmetry of the absolute difference.
func TestDist(t *testing.T) {
	assert.Equal(t, 3, golomb.Dist(0, 3))
	assert.Equal(t, 3, golomb.Dist(3, 0))
	assert.Equal(t, 0, golomb.Dist(4, 4))
}

// TestNew_Validated ensures invalid sequences are rejected with the
// offending sequence attached.
func TestNew_Validated(t *testing.T) {
	r, err := golomb.New([]int{0, 1, 2})
	require.Error(t, err)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, golomb.ErrNotGolombRuler)

	var ngr *golomb.NotGolombRulerError
	require.True(t, errors.As(err, &ngr))
	assert.Equal(t, []int{0, 1, 2}, ngr.Sequence)
	assert.Contains(t, err.Error(), "[0 1 2]")

	_, err = golomb.New([]int{0, -1, 3})
	assert.ErrorIs(t, err, golomb.ErrNotGolombRuler)
}

// TestNewTrusted_SkipsValidation stores colliding marks unchanged.
func TestNewTrusted_SkipsValidation(t *testing.T) {
	r := golomb.NewTrusted([]int{0, 1, 2})
	assert.Equal(t, 3, r.Order())
	assert.Equal(t, []int{0, 1, 2}, r.Marks())
}

// TestRuler_Immutable checks that neither the input nor Marks() aliases the
// stored sequence.
func TestRuler_Immutable(t *testing.T) {
	in := []int{0, 1, 3}
	r, err := golomb.New(in)
	require.NoError(t, err)

	in[2] = 99
	assert.Equal(t, []int{0, 1, 3}, r.Marks())

	out := r.Marks()
	out[0] = 42
	assert.Equal(t, 0, r.At(0))
}

// TestRuler_Queries covers Order, Length, Distances, MissingDistances.
func TestRuler_Queries(t *testing.T) {
	r, err := golomb.New([]int{0, 1, 3, 7})
	require.NoError(t, err)

	assert.Equal(t, 4, r.Order())
	assert.Equal(t, 7, r.Length())
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7}, r.Distances())
	assert.Equal(t, []int{5}, r.MissingDistances())
	assert.False(t, r.IsPerfect())
	assert.Equal(t, "[0 1 3 7]", r.String())

	perfect, err := golomb.New([]int{0, 1, 4, 6})
	require.NoError(t, err)
	assert.True(t, perfect.IsPerfect())
	assert.Empty(t, perfect.MissingDistances())
}

// TestRuler_Degenerate covers the empty and single-mark rulers.
func TestRuler_Degenerate(t *testing.T) {
	empty, err := golomb.New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Order())
	assert.Equal(t, 0, empty.Length())
	assert.Empty(t, empty.Distances())
	assert.Empty(t, empty.MissingDistances())

	one, err := golomb.New([]int{5})
	require.NoError(t, err)
	assert.Equal(t, 1, one.Order())
	assert.Equal(t, 0, one.Length())
	assert.True(t, one.IsPerfect())
}

// TestRuler_RepeatedMarks queries a trusted ruler that measures 0.
func TestRuler_RepeatedMarks(t *testing.T) {
	r := golomb.NewTrusted([]int{0, 0, 1})

	assert.Equal(t, 1, r.Length())
	assert.Equal(t, []int{0, 1, 1}, r.Distances())
	require.NotPanics(t, func() {
		assert.Empty(t, r.MissingDistances())
		assert.False(t, r.IsPerfect())
	})

	gap := golomb.NewTrusted([]int{0, 0, 0, 4})
	require.NotPanics(t, func() {
		assert.Equal(t, []int{1, 2, 3}, gap.MissingDistances())
	})
}

// TestRuler_Equal compares by marks and order of marks.
func TestRuler_Equal(t *testing.T) {
	a := golomb.NewTrusted([]int{0, 1, 3})
	b := golomb.NewTrusted([]int{0, 1, 3})
	c := golomb.NewTrusted([]int{0, 2, 3})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var nilRuler *golomb.Ruler
	assert.True(t, nilRuler.Equal(nil))
}

// TestInvalidOrder wraps the sentinel with the offending value.
func TestInvalidOrder(t *testing.T) {
	err := golomb.InvalidOrder(0)
	assert.ErrorIs(t, err, golomb.ErrInvalidOrder)
	assert.Contains(t, err.Error(), "got 0")
}
