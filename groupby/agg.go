// Package groupby: built-in aggregations over the group views. The
// numeric folds live in the reduce package; this file only dispatches
// them per group and routes the results through the combiner.

package groupby

import (
	"github.com/katalvlaran/larr/core"
	"github.com/katalvlaran/larr/reduce"
)

// ReduceFunc is a reduction kernel collapsing one named dimension of an
// array, e.g. reduce.Sum or reduce.Mean.
type ReduceFunc func(a *core.Array, dim string) (*core.Array, error)

// Reduce applies kernel per group over dim and combines the results.
// An empty dim means the grouped dimension. A dim absent from the group
// views surfaces the kernel's error (reduce.ErrUnknownDimension for the
// bundled kernels) unmodified.
func (g *GroupBy) Reduce(kernel ReduceFunc, dim string) (*core.Array, error) {
	if dim == "" {
		dim = g.dim
	}
	return g.Apply(func(view *core.Array, _ ...any) (*core.Array, error) {
		return kernel(view, dim)
	})
}

// Sum sums each group over dim ("" = the grouped dimension) and combines:
// summing over the grouped dimension collapses it into one value per
// group key; summing over another dimension keeps per-element identity
// along the grouped dimension.
func (g *GroupBy) Sum(dim string) (*core.Array, error) {
	return g.Reduce(reduce.Sum, dim)
}

// Mean averages each group over dim ("" = the grouped dimension).
func (g *GroupBy) Mean(dim string) (*core.Array, error) {
	return g.Reduce(reduce.Mean, dim)
}
