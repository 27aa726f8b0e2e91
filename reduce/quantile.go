// Package reduce: quantile kernels.
//
// Quantiles interpolate between order statistics at rank h = (n-1)·q.
// The Interpolation policy names the recognized methods explicitly; there
// is no global default to configure.

package reduce

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/larr/core"
)

// Interpolation selects how a quantile between two order statistics is
// resolved.
type Interpolation int

const (
	// Linear interpolates proportionally between the two statistics.
	Linear Interpolation = iota
	// Lower takes the lower statistic.
	Lower
	// Higher takes the higher statistic.
	Higher
	// Nearest takes the statistic whose rank is closest.
	Nearest
	// Midpoint averages the two statistics.
	Midpoint
)

// String names the interpolation method.
func (ip Interpolation) String() string {
	switch ip {
	case Linear:
		return "linear"
	case Lower:
		return "lower"
	case Higher:
		return "higher"
	case Nearest:
		return "nearest"
	case Midpoint:
		return "midpoint"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(ip))
	}
}

// QuantileDim is the name of the extra dimension introduced by Quantiles.
const QuantileDim = "quantile"

// Quantile collapses dim to the single quantile q ∈ [0,1]. The output has
// no extra dimension: the grouped-out dim simply disappears.
func Quantile(a *core.Array, q float64, dim string, interp Interpolation) (*core.Array, error) {
	out, err := Quantiles(a, []float64{q}, dim, interp)
	if err != nil {
		return nil, err
	}
	return out.Squeeze(QuantileDim)
}

// Quantiles collapses dim to the requested quantile levels, appending a
// new "quantile" dimension of length len(qs) whose labels are the literal
// requested probabilities, in the order supplied.
//
// Stage 1 (Validate): qs non-empty, each in [0,1], dim present, non-empty.
// Stage 2 (Execute): per output cell, sort the values along dim once and
// interpolate every requested level from the sorted run.
// Complexity: O(cells · n·log n) for n = len(dim).
func Quantiles(a *core.Array, qs []float64, dim string, interp Interpolation) (*core.Array, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("reduce.Quantiles(%q): no levels: %w", dim, ErrBadQuantile)
	}
	for _, q := range qs {
		if math.IsNaN(q) || q < 0 || q > 1 {
			return nil, fmt.Errorf("reduce.Quantiles(%q): level %v: %w", dim, q, ErrBadQuantile)
		}
	}
	ax, err := a.AxisOf(dim)
	if err != nil {
		return nil, fmt.Errorf("reduce.Quantiles: %w: %w", err, ErrUnknownDimension)
	}
	srcShape := a.Shape()
	n := srcShape[ax]
	if n == 0 {
		return nil, fmt.Errorf("reduce.Quantiles(%q): %w", dim, ErrEmptyInput)
	}

	// Rotate dim last so each cell's values are one contiguous run.
	order := make([]string, 0, a.Ndim())
	for i, d := range a.Dims() {
		if i == ax {
			continue
		}
		order = append(order, d)
	}
	order = append(order, dim)
	view, err := a.Transpose(order...)
	if err != nil {
		return nil, err
	}
	vals := view.Values()
	cells := len(vals) / n

	data := make([]float64, cells*len(qs))
	scratch := make([]float64, n)
	for c := 0; c < cells; c++ {
		copy(scratch, vals[c*n:(c+1)*n])
		sort.Float64s(scratch)
		for j, q := range qs {
			data[c*len(qs)+j] = interpolate(scratch, q, interp)
		}
	}

	// Output: source dims without dim, then the new quantile dimension.
	outDims := append(append([]string(nil), order[:len(order)-1]...), QuantileDim)
	outShape := make([]int, 0, len(outDims))
	for _, d := range order[:len(order)-1] {
		s, _ := a.SizeOf(d)
		outShape = append(outShape, s)
	}
	outShape = append(outShape, len(qs))

	levels := make([]core.Key, len(qs))
	for j, q := range qs {
		levels[j] = q
	}
	out, err := core.New(data, outDims, outShape,
		core.WithName(a.Name()), core.WithCoord(QuantileDim, levels))
	if err != nil {
		return nil, err
	}
	for _, d := range order[:len(order)-1] {
		if labels, ok := a.Coord(d); ok {
			if err = out.SetCoord(d, labels); err != nil {
				return nil, err
			}
		}
		if lv, ok := a.CompositeLevels(d); ok {
			if err = out.MarkComposite(d, lv); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// interpolate resolves one quantile level from sorted values.
func interpolate(sorted []float64, q float64, interp Interpolation) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	switch interp {
	case Lower:
		return sorted[lo]
	case Higher:
		return sorted[hi]
	case Nearest:
		if h-float64(lo) <= float64(hi)-h {
			return sorted[lo]
		}
		return sorted[hi]
	case Midpoint:
		return (sorted[lo] + sorted[hi]) / 2
	default:
		frac := h - float64(lo)
		return sorted[lo] + frac*(sorted[hi]-sorted[lo])
	}
}
