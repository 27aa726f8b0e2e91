package stack_test

import (
	"testing"

	"github.com/katalvlaran/larr/core"
	"github.com/katalvlaran/larr/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds the 2×3 fixture used across this file:
// dims ("x","y"), x=["a","b"], y=[1,2,3], values 1..6 row-major.
func grid(t *testing.T) *core.Array {
	t.Helper()
	a, err := core.New([]float64{1, 2, 3, 4, 5, 6}, []string{"x", "y"}, []int{2, 3},
		core.WithCoord("x", []core.Key{"a", "b"}),
		core.WithCoord("y", []core.Key{1, 2, 3}),
		core.WithName("foo"))
	require.NoError(t, err)
	return a
}

// TestStack_Labels verifies the composite dimension's tuple labels come
// out in row-major order over the stacked dims.
func TestStack_Labels(t *testing.T) {
	s, err := stack.Stack(grid(t), "space", []string{"x", "y"})
	require.NoError(t, err)

	assert.Equal(t, []string{"space"}, s.Dims())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, s.Values())

	labels, ok := s.Coord("space")
	require.True(t, ok)
	require.Len(t, labels, 6)
	assert.Equal(t, core.Tuple{"a", 1}, labels[0])
	assert.Equal(t, core.Tuple{"a", 3}, labels[2])
	assert.Equal(t, core.Tuple{"b", 1}, labels[3])

	levels, ok := s.CompositeLevels("space")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, levels)
}

// TestStack_PartialDims stacks a subset of dims; the remaining dims keep
// their relative order in front of the composite.
func TestStack_PartialDims(t *testing.T) {
	a, err := core.New([]float64{1, 2, 3, 4, 5, 6, 7, 8}, []string{"x", "y", "z"}, []int{2, 2, 2},
		core.WithCoord("x", []core.Key{"a", "b"}),
		core.WithCoord("y", []core.Key{1, 2}))
	require.NoError(t, err)

	s, err := stack.Stack(a, "space", []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "space"}, s.Dims())
	assert.Equal(t, []int{2, 4}, s.Shape())

	// Element (z=0, space=(b,1)) was (x=1,y=0,z=0) = 5.
	v, err := s.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

// TestStack_Errors covers the eager validation failures.
func TestStack_Errors(t *testing.T) {
	a := grid(t)

	_, err := stack.Stack(a, "space", nil)
	assert.ErrorIs(t, err, stack.ErrNothingToStack)

	_, err = stack.Stack(a, "x", []string{"y"})
	assert.ErrorIs(t, err, stack.ErrDimExists)

	_, err = stack.Stack(a, "space", []string{"nope"})
	assert.ErrorIs(t, err, core.ErrUnknownDim)
}

// TestUnstack_RoundTrip verifies Unstack(Stack(a)) reproduces a exactly.
func TestUnstack_RoundTrip(t *testing.T) {
	a := grid(t)
	s, err := stack.Stack(a, "space", []string{"x", "y"})
	require.NoError(t, err)

	b, err := stack.Unstack(s, "space")
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "unstack must invert stack\nwant %v\ngot  %v", a, b)
}

// TestUnstack_Errors covers non-composite input and cross-product holes.
func TestUnstack_Errors(t *testing.T) {
	a := grid(t)
	_, err := stack.Unstack(a, "x")
	assert.ErrorIs(t, err, stack.ErrNotComposite)

	// Three of four cells only: a hole in the product.
	holed, err := core.New([]float64{1, 2, 3}, []string{"s"}, []int{3},
		core.WithCoord("s", []core.Key{
			core.Tuple{"a", 1}, core.Tuple{"a", 2}, core.Tuple{"b", 1},
		}))
	require.NoError(t, err)
	require.NoError(t, holed.MarkComposite("s", []string{"x", "y"}))
	_, err = stack.Unstack(holed, "s")
	assert.ErrorIs(t, err, stack.ErrIncompleteProduct)
}
