// Package core: views and subset extraction along one named dimension.
//
// Slice and Transpose are zero-copy: they alias the receiver's backing
// storage. Take, Squeeze and the assembly helpers always allocate. The
// distinction is the ownership rule callers rely on for non-mutation
// guarantees: whoever needs an isolated buffer calls a copying operation.

package core

import "fmt"

// Slice returns a zero-copy view restricted to positions
// start, start+step, … < stop along dim (half-open, step ≥ 1).
//
// Stage 1 (Validate): axis lookup, bounds, step.
// Stage 2 (Execute): re-derive offset/shape/strides; slice dim's labels.
// Complexity: O(ndim + selected labels).
func (a *Array) Slice(dim string, start, stop, step int) (*Array, error) {
	ax, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}
	if step < 1 || start > stop {
		return nil, fmt.Errorf("core.Slice(%q, %d, %d, %d): %w", dim, start, stop, step, ErrBadSlice)
	}
	if start < 0 || stop > a.shape[ax] {
		return nil, fmt.Errorf("core.Slice(%q, %d, %d, %d): %w", dim, start, stop, step, ErrOutOfRange)
	}

	n := 0
	if stop > start {
		n = (stop - start + step - 1) / step
	}
	out := a.metaClone()
	out.offset += start * out.strides[ax]
	out.shape[ax] = n
	out.strides[ax] *= step

	if labels, ok := a.coords[dim]; ok {
		sub := make([]Key, 0, n)
		for p := start; p < stop; p += step {
			sub = append(sub, labels[p])
		}
		out.coords[dim] = sub
	}
	return out, nil
}

// Take gathers the listed positions along dim into a fresh contiguous
// array (a copy; the result never aliases the receiver's storage).
// Positions may repeat and appear in any order.
// Complexity: O(size of result).
func (a *Array) Take(dim string, positions []int) (*Array, error) {
	ax, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}
	for _, p := range positions {
		if p < 0 || p >= a.shape[ax] {
			return nil, fmt.Errorf("core.Take(%q): position %d of %d: %w", dim, p, a.shape[ax], ErrOutOfRange)
		}
	}

	out := a.metaClone()
	out.shape[ax] = len(positions)
	out.strides = rowMajorStrides(out.shape)
	out.offset = 0
	out.data = make([]float64, out.Size())

	// Gather: walk the output in row-major order, reading through the
	// position list on the gather axis.
	src := make([]int, len(a.dims))
	i := 0
	out.eachIndex(func(ix []int) {
		copy(src, ix)
		src[ax] = positions[ix[ax]]
		off, _ := a.offsetOf(src)
		out.data[i] = a.data[off]
		i++
	})

	if labels, ok := a.coords[dim]; ok {
		sub := make([]Key, len(positions))
		for j, p := range positions {
			sub[j] = labels[p]
		}
		out.coords[dim] = sub
	}
	return out, nil
}

// Transpose returns a zero-copy view with dimensions permuted into the
// given order. Every existing dimension must appear exactly once.
func (a *Array) Transpose(order ...string) (*Array, error) {
	if len(order) != len(a.dims) {
		return nil, fmt.Errorf("core.Transpose: %d names for %d dims: %w", len(order), len(a.dims), ErrDimensionMismatch)
	}
	out := a.metaClone()
	used := make(map[string]struct{}, len(order))
	for i, d := range order {
		ax, err := a.AxisOf(d)
		if err != nil {
			return nil, err
		}
		if _, dup := used[d]; dup {
			return nil, fmt.Errorf("core.Transpose: duplicate dimension %q: %w", d, ErrDimensionMismatch)
		}
		used[d] = struct{}{}
		out.dims[i] = a.dims[ax]
		out.shape[i] = a.shape[ax]
		out.strides[i] = a.strides[ax]
	}
	return out, nil
}

// Squeeze drops a length-1 dimension, returning a fresh contiguous array
// without it (its labels and composite mark are dropped too).
func (a *Array) Squeeze(dim string) (*Array, error) {
	ax, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}
	if a.shape[ax] != 1 {
		return nil, fmt.Errorf("core.Squeeze(%q): length %d: %w", dim, a.shape[ax], ErrDimensionMismatch)
	}

	dims := make([]string, 0, len(a.dims)-1)
	shape := make([]int, 0, len(a.dims)-1)
	for i, d := range a.dims {
		if i == ax {
			continue
		}
		dims = append(dims, d)
		shape = append(shape, a.shape[i])
	}
	out, err := New(a.Values(), dims, shape, WithName(a.name))
	if err != nil {
		return nil, err
	}
	for d, labels := range a.coords {
		if d == dim {
			continue
		}
		out.coords[d] = append([]Key(nil), labels...)
	}
	for d, lv := range a.levels {
		if d == dim {
			continue
		}
		out.levels[d] = append([]string(nil), lv...)
	}
	return out, nil
}
