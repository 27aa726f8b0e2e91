// Package groupby: the per-group quantile aggregator.
//
// Responsibility here is dispatch and dimension bookkeeping only; the
// interpolation between order statistics is the reduce package's job.

package groupby

import (
	"github.com/katalvlaran/larr/core"
	"github.com/katalvlaran/larr/reduce"
)

// QuantileOptions configures the per-group quantile computation.
type QuantileOptions struct {
	// Dim is the dimension to compute quantiles over; "" means the
	// grouped dimension. It must be present in every group's view.
	Dim string

	// Interpolation resolves quantiles falling between order statistics.
	Interpolation reduce.Interpolation
}

// QuantileOption configures Quantile/Quantiles via functional arguments.
type QuantileOption func(*QuantileOptions)

// WithDim computes the quantiles over the named dimension instead of the
// grouped one.
func WithDim(dim string) QuantileOption {
	return func(o *QuantileOptions) { o.Dim = dim }
}

// WithInterpolation selects the interpolation method (default Linear).
func WithInterpolation(interp reduce.Interpolation) QuantileOption {
	return func(o *QuantileOptions) { o.Interpolation = interp }
}

// Quantile computes a single quantile q ∈ [0,1] per group. The reduced
// dimension collapses; no new dimension appears.
func (g *GroupBy) Quantile(q float64, opts ...QuantileOption) (*core.Array, error) {
	cfg := g.quantileConfig(opts)
	return g.Apply(func(view *core.Array, _ ...any) (*core.Array, error) {
		return reduce.Quantile(view, q, cfg.Dim, cfg.Interpolation)
	})
}

// Quantiles computes the ordered quantile levels qs per group. Alongside
// the reduction, every group result gains a "quantile" dimension of
// length len(qs) labeled with the literal requested probabilities, which
// the combined output keeps as its trailing dimension.
func (g *GroupBy) Quantiles(qs []float64, opts ...QuantileOption) (*core.Array, error) {
	cfg := g.quantileConfig(opts)
	return g.Apply(func(view *core.Array, _ ...any) (*core.Array, error) {
		return reduce.Quantiles(view, qs, cfg.Dim, cfg.Interpolation)
	})
}

func (g *GroupBy) quantileConfig(opts []QuantileOption) QuantileOptions {
	cfg := QuantileOptions{Dim: g.dim, Interpolation: reduce.Linear}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
