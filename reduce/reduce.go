// Package reduce: Sum and Mean kernels.

package reduce

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/larr/core"
)

var (
	// ErrUnknownDimension indicates the named dimension is absent from the
	// input array.
	ErrUnknownDimension = errors.New("reduce: unknown dimension")

	// ErrEmptyInput indicates a reduction over a zero-length dimension.
	ErrEmptyInput = errors.New("reduce: empty dimension")

	// ErrBadQuantile indicates a probability outside [0, 1] or an empty
	// probability list.
	ErrBadQuantile = errors.New("reduce: invalid quantile request")
)

// Sum collapses dim, summing along it. The output drops dim (and its
// labels); every other dimension and label is carried unchanged.
//
// Stage 1 (Validate): dimension lookup.
// Stage 2 (Execute): single pass over the input, accumulating per output cell.
// Complexity: O(size · ndim).
func Sum(a *core.Array, dim string) (*core.Array, error) {
	out, accumulate, err := dropDim(a, dim)
	if err != nil {
		return nil, fmt.Errorf("reduce.Sum: %w", err)
	}
	accumulate(func(acc, v float64, _ int) float64 { return acc + v })
	return out, nil
}

// Mean collapses dim, averaging along it. Fails with ErrEmptyInput when
// dim has length zero.
func Mean(a *core.Array, dim string) (*core.Array, error) {
	n, err := a.SizeOf(dim)
	if err != nil {
		return nil, fmt.Errorf("reduce.Mean: %w: %w", err, ErrUnknownDimension)
	}
	if n == 0 {
		return nil, fmt.Errorf("reduce.Mean(%q): %w", dim, ErrEmptyInput)
	}
	out, err := Sum(a, dim)
	if err != nil {
		return nil, err
	}
	inv := 1 / float64(n)
	return out.Scale(inv), nil
}

// dropDim prepares a zero-filled output without dim and returns a fold
// runner: fold(f) applies f(accumulated, value, positionAlongDim) for every
// input element, writing into the matching output cell.
func dropDim(a *core.Array, dim string) (*core.Array, func(f func(acc, v float64, p int) float64), error) {
	ax, err := a.AxisOf(dim)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", err, ErrUnknownDimension)
	}

	srcDims, srcShape := a.Dims(), a.Shape()
	dims := make([]string, 0, len(srcDims)-1)
	shape := make([]int, 0, len(srcDims)-1)
	for i, d := range srcDims {
		if i == ax {
			continue
		}
		dims = append(dims, d)
		shape = append(shape, srcShape[i])
	}
	size := 1
	for _, s := range shape {
		size *= s
	}
	data := make([]float64, size)
	out, err := core.New(data, dims, shape, core.WithName(a.Name()))
	if err != nil {
		return nil, nil, err
	}
	for _, d := range dims {
		if labels, ok := a.Coord(d); ok {
			if err = out.SetCoord(d, labels); err != nil {
				return nil, nil, err
			}
		}
		if lv, ok := a.CompositeLevels(d); ok {
			if err = out.MarkComposite(d, lv); err != nil {
				return nil, nil, err
			}
		}
	}

	// Stride of each surviving source axis inside the flat output.
	outStride := make([]int, len(srcShape))
	acc := 1
	for i := len(srcShape) - 1; i >= 0; i-- {
		if i == ax {
			continue
		}
		outStride[i] = acc
		acc *= srcShape[i]
	}

	vals := a.Values()
	fold := func(f func(acc, v float64, p int) float64) {
		ix := make([]int, len(srcShape))
		for pos := range vals {
			off := 0
			for i, v := range ix {
				off += v * outStride[i]
			}
			data[off] = f(data[off], vals[pos], ix[ax])
			for k := len(ix) - 1; k >= 0; k-- {
				ix[k]++
				if ix[k] < srcShape[k] {
					break
				}
				ix[k] = 0
			}
		}
	}
	return out, fold, nil
}
