package reduce_test

import (
	"testing"

	"github.com/katalvlaran/larr/core"
	"github.com/katalvlaran/larr/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds an array or fails the test immediately.
func mustNew(t *testing.T, data []float64, dims []string, shape []int, opts ...core.Option) *core.Array {
	t.Helper()
	a, err := core.New(data, dims, shape, opts...)
	require.NoError(t, err)
	return a
}

// TestSum_CollapsesDim verifies summation over either axis of a 2-D
// array, with unrelated labels carried through.
func TestSum_CollapsesDim(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, []string{"x", "y"}, []int{2, 3},
		core.WithCoord("x", []core.Key{"a", "b"}),
		core.WithCoord("y", []core.Key{10, 20, 30}))

	sy, err := reduce.Sum(a, "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, sy.Dims())
	assert.Equal(t, []float64{6, 15}, sy.Values())
	labels, ok := sy.Coord("x")
	require.True(t, ok)
	assert.Equal(t, []core.Key{"a", "b"}, labels, "unrelated labels survive the reduction")

	sx, err := reduce.Sum(a, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, sx.Dims())
	assert.Equal(t, []float64{5, 7, 9}, sx.Values())

	_, err = reduce.Sum(a, "z")
	assert.ErrorIs(t, err, reduce.ErrUnknownDimension)
}

// TestSum_ToScalar verifies reducing a 1-D array yields a 0-D scalar.
func TestSum_ToScalar(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, []string{"x"}, []int{3})
	s, err := reduce.Sum(a, "x")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Ndim())
	v, err := s.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

// TestMean verifies averaging and the empty-dimension failure.
func TestMean(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, []string{"x", "y"}, []int{2, 2})
	m, err := reduce.Mean(a, "x")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, m.Values())

	empty := mustNew(t, nil, []string{"x"}, []int{0})
	_, err = reduce.Mean(empty, "x")
	assert.ErrorIs(t, err, reduce.ErrEmptyInput)
}

// TestQuantile_Scalar verifies the single-level form: the reduced dim
// disappears and no "quantile" dimension is introduced.
func TestQuantile_Scalar(t *testing.T) {
	a := mustNew(t, []float64{3, 1, 2}, []string{"x"}, []int{3})

	q, err := reduce.Quantile(a, 0.5, "x", reduce.Linear)
	require.NoError(t, err)
	assert.Equal(t, 0, q.Ndim(), "scalar quantile adds no dimension")
	v, err := q.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

// TestQuantiles_Vector verifies the multi-level form: a trailing
// "quantile" dimension labeled with the literal requested levels.
func TestQuantiles_Vector(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, []string{"x"}, []int{4})

	q, err := reduce.Quantiles(a, []float64{0, 0.5, 1}, "x", reduce.Linear)
	require.NoError(t, err)
	assert.Equal(t, []string{"quantile"}, q.Dims())
	assert.Equal(t, []float64{1, 2.5, 4}, q.Values())
	labels, ok := q.Coord("quantile")
	require.True(t, ok)
	assert.Equal(t, []core.Key{0.0, 0.5, 1.0}, labels, "labels are the requested levels, in order")
}

// TestQuantiles_Interpolation covers every recognized method at one
// fractional rank.
func TestQuantiles_Interpolation(t *testing.T) {
	a := mustNew(t, []float64{10, 20}, []string{"x"}, []int{2})
	cases := []struct {
		interp reduce.Interpolation
		want   float64
	}{
		{reduce.Linear, 12.5},
		{reduce.Lower, 10},
		{reduce.Higher, 20},
		{reduce.Nearest, 10},
		{reduce.Midpoint, 15},
	}
	for _, tc := range cases {
		q, err := reduce.Quantile(a, 0.25, "x", tc.interp)
		require.NoError(t, err, tc.interp.String())
		v, err := q.Scalar()
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, tc.interp.String())
	}
}

// TestQuantiles_Validation covers the eager request checks.
func TestQuantiles_Validation(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []string{"x"}, []int{2})

	_, err := reduce.Quantiles(a, nil, "x", reduce.Linear)
	assert.ErrorIs(t, err, reduce.ErrBadQuantile)
	_, err = reduce.Quantiles(a, []float64{1.5}, "x", reduce.Linear)
	assert.ErrorIs(t, err, reduce.ErrBadQuantile)
	_, err = reduce.Quantiles(a, []float64{0.5}, "nope", reduce.Linear)
	assert.ErrorIs(t, err, reduce.ErrUnknownDimension)
}

// TestQuantiles_MultiDim verifies per-cell quantiles on a 2-D array,
// reducing one axis and appending the quantile axis last.
func TestQuantiles_MultiDim(t *testing.T) {
	a := mustNew(t, []float64{1, 4, 2, 5, 3, 6}, []string{"x", "y"}, []int{3, 2},
		core.WithCoord("y", []core.Key{"p", "q"}))

	q, err := reduce.Quantiles(a, []float64{0, 1}, "x", reduce.Linear)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "quantile"}, q.Dims())
	assert.Equal(t, []float64{1, 3, 4, 6}, q.Values())
}
