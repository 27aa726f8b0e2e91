package core_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/larr/core"
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

// TestNew_ShapeValidation verifies that dims/shape/data disagreements are
// rejected eagerly with ErrBadShape.
func TestNew_ShapeValidation(t *testing.T) {
	_, err := core.New([]float64{1, 2}, []string{"x"}, []int{3})
	assert.ErrorIs(t, err, core.ErrBadShape, "data length must match shape product")

	_, err = core.New([]float64{1, 2, 3}, []string{"x", "y"}, []int{3})
	assert.ErrorIs(t, err, core.ErrBadShape, "dims and shape must have equal length")

	_, err = core.New([]float64{1, 2, 3, 4}, []string{"x", "x"}, []int{2, 2})
	assert.ErrorIs(t, err, core.ErrBadShape, "dimension names must be unique")
}

// TestNew_CoordValidation verifies coordinate option failure modes.
func TestNew_CoordValidation(t *testing.T) {
	_, err := core.New([]float64{1, 2}, []string{"x"}, []int{2},
		core.WithCoord("y", []core.Key{1, 2}))
	assert.ErrorIs(t, err, core.ErrUnknownDim, "coords for absent dimensions must be rejected")

	_, err = core.New([]float64{1, 2}, []string{"x"}, []int{2},
		core.WithCoord("x", []core.Key{1}))
	assert.ErrorIs(t, err, core.ErrCoordLength, "label count must equal dimension length")
}

// TestArray_AtSet exercises bounds-checked element access.
func TestArray_AtSet(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, []string{"x", "y"}, []int{2, 3})

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	_, err = a.At(2, 0)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
	_, err = a.At(0)
	assert.ErrorIs(t, err, core.ErrOutOfRange, "index arity must match ndim")

	require.NoError(t, a.Set(42, 0, 1))
	v, err = a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

// TestArray_CopyIsolation verifies that Copy shares nothing with its source.
func TestArray_CopyIsolation(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, []string{"x"}, []int{3},
		core.WithCoord("x", []core.Key{"a", "b", "c"}))
	b := a.Copy()

	require.NoError(t, b.Set(99, 0))
	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the copy must not touch the source")
	assert.False(t, a.Equal(b))
}

// TestArray_EqualIdentical covers label-aware equality and the stricter
// name-aware identity check.
func TestArray_EqualIdentical(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []string{"x"}, []int{2},
		core.WithCoord("x", []core.Key{10, 20}), core.WithName("foo"))
	b := mustNew(t, []float64{1, 2}, []string{"x"}, []int{2},
		core.WithCoord("x", []core.Key{10, 20}), core.WithName("bar"))

	assert.True(t, a.Equal(b), "Equal ignores names")
	assert.False(t, a.Identical(b), "Identical honors names")
	assert.True(t, a.Identical(b.Named("foo")))

	c := mustNew(t, []float64{1, 2}, []string{"x"}, []int{2},
		core.WithCoord("x", []core.Key{10, 21}))
	assert.False(t, a.Equal(c), "differing labels break equality")
}

// TestArray_ZeroDim verifies scalar (0-D) arrays round-trip through
// Scalar and Values.
func TestArray_ZeroDim(t *testing.T) {
	a := mustNew(t, []float64{7}, nil, nil)
	v, err := a.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, []float64{7}, a.Values())

	b := mustNew(t, []float64{1, 2}, []string{"x"}, []int{2})
	_, err = b.Scalar()
	assert.ErrorIs(t, err, core.ErrNotScalar)
}

// TestKeys_Compare covers the ordering rules per kind, including full
// instant comparison for datetimes and lexicographic tuples.
func TestKeys_Compare(t *testing.T) {
	c, ok := core.CompareKeys(1, 2)
	require.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = core.CompareKeys(int64(3), 2.5)
	require.True(t, ok, "numeric kinds compare across widths")
	assert.Equal(t, 1, c)

	c, ok = core.CompareKeys("a", "b")
	require.True(t, ok)
	assert.Equal(t, -1, c)

	t0 := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	c, ok = core.CompareKeys(t0, t0.Add(time.Nanosecond))
	require.True(t, ok)
	assert.Equal(t, -1, c, "datetimes compare by full instant, not calendar unit")

	c, ok = core.CompareKeys(core.Tuple{"a", 1}, core.Tuple{"a", 2})
	require.True(t, ok)
	assert.Equal(t, -1, c, "tuples compare lexicographically")

	_, ok = core.CompareKeys("a", 1)
	assert.False(t, ok, "string vs number has no order")
}

// TestKeys_EqualAndOrderable covers equality and the orderability probe
// used to pick the grouping strategy.
func TestKeys_EqualAndOrderable(t *testing.T) {
	assert.True(t, core.KeysEqual(int32(5), 5.0), "numeric equality is by value")
	assert.True(t, core.KeysEqual(core.Tuple{"a", 1}, core.Tuple{"a", 1}))
	assert.False(t, core.KeysEqual(core.Tuple{"a", 1}, core.Tuple{"a", 1, 2}))

	assert.True(t, core.KeysOrderable([]core.Key{3, 1, 2}))
	assert.True(t, core.KeysOrderable([]core.Key{core.Tuple{"a", 1}, core.Tuple{"b", 2}}))
	assert.False(t, core.KeysOrderable([]core.Key{1, "a"}), "mixed kinds are unorderable")
	assert.False(t, core.KeysOrderable(nil))
}

// TestKeys_NaN: NaN orders after every number and equals only itself, so
// a NaN label can never be folded into a numeric group.
func TestKeys_NaN(t *testing.T) {
	nan := math.NaN()

	c, ok := core.CompareKeys(nan, 1.0)
	require.True(t, ok)
	assert.Equal(t, 1, c, "NaN sorts last")
	c, ok = core.CompareKeys(1.0, nan)
	require.True(t, ok)
	assert.Equal(t, -1, c)
	c, ok = core.CompareKeys(nan, nan)
	require.True(t, ok)
	assert.Equal(t, 0, c)

	assert.True(t, core.KeysEqual(nan, nan))
	assert.False(t, core.KeysEqual(nan, 1.0))
	assert.True(t, core.KeysOrderable([]core.Key{1.0, nan, 2.0}))
}

// TestKeys_TupleArity: tuples of different arity never order against each
// other — a prefix rule would break transitivity of comparability — so
// mixed-arity label lists fall back to first-occurrence grouping.
func TestKeys_TupleArity(t *testing.T) {
	_, ok := core.CompareKeys(core.Tuple{1}, core.Tuple{1, 2})
	assert.False(t, ok)
	assert.False(t, core.KeysOrderable([]core.Key{core.Tuple{1}, core.Tuple{1, 2}}))
}
