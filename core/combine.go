// Package core: reassembly primitives — concatenation along an existing
// dimension and stacking along a newly introduced one. Both allocate fresh
// storage and never write through to any input's backing slice.

package core

import "fmt"

// Concat joins parts along an existing dimension, in the order given.
// Every part must have the same dimension names in the same order, and
// matching sizes off the concat axis. The concat dimension's labels are
// concatenated when every part carries them, and dropped otherwise; all
// other metadata is taken from the first part.
// Complexity: O(total size).
func Concat(dim string, parts []*Array) (*Array, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("core.Concat(%q): %w", dim, ErrNoParts)
	}
	first := parts[0]
	ax, err := first.AxisOf(dim)
	if err != nil {
		return nil, err
	}

	total := 0
	haveLabels := true
	for _, p := range parts {
		if err = sameDimsOffAxis(first, p, ax); err != nil {
			return nil, fmt.Errorf("core.Concat(%q): %w", dim, err)
		}
		total += p.shape[ax]
		if _, ok := p.coords[dim]; !ok {
			haveLabels = false
		}
	}

	out := first.metaClone()
	out.shape[ax] = total
	out.strides = rowMajorStrides(out.shape)
	out.offset = 0
	out.data = make([]float64, out.Size())
	delete(out.coords, dim)
	delete(out.levels, dim)

	// Fill block by block along the concat axis.
	dst := make([]int, len(out.dims))
	base := 0
	for _, p := range parts {
		part := p
		part.eachIndex(func(ix []int) {
			copy(dst, ix)
			dst[ax] = base + ix[ax]
			off, _ := part.offsetOf(ix)
			outOff, _ := out.offsetOf(dst)
			out.data[outOff] = part.data[off]
		})
		base += p.shape[ax]
	}

	if haveLabels {
		labels := make([]Key, 0, total)
		for _, p := range parts {
			labels = append(labels, p.coords[dim]...)
		}
		out.coords[dim] = labels
		if lv, ok := first.levels[dim]; ok {
			out.levels[dim] = append([]string(nil), lv...)
		}
	}
	return out, nil
}

// StackNew stacks parts along a newly introduced leading dimension dim,
// labeling it with keys (one key per part). Every part must have the same
// dimensions, shape and no dimension named dim already. Metadata off the
// new axis is taken from the first part.
// Complexity: O(total size).
func StackNew(dim string, keys []Key, parts []*Array) (*Array, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("core.StackNew(%q): %w", dim, ErrNoParts)
	}
	if len(keys) != len(parts) {
		return nil, fmt.Errorf("core.StackNew(%q): %d keys for %d parts: %w",
			dim, len(keys), len(parts), ErrDimensionMismatch)
	}
	first := parts[0]
	if first.HasDim(dim) {
		return nil, fmt.Errorf("core.StackNew: dimension %q already present: %w", dim, ErrDimensionMismatch)
	}
	for _, p := range parts {
		if err := sameDims(first, p); err != nil {
			return nil, fmt.Errorf("core.StackNew(%q): %w", dim, err)
		}
	}

	dims := append([]string{dim}, first.dims...)
	shape := append([]int{len(parts)}, first.shape...)
	data := make([]float64, 0, len(parts)*first.Size())
	for _, p := range parts {
		data = append(data, p.Values()...)
	}

	out, err := New(data, dims, shape, WithName(first.name))
	if err != nil {
		return nil, err
	}
	out.coords[dim] = append([]Key(nil), keys...)
	for d, labels := range first.coords {
		out.coords[d] = append([]Key(nil), labels...)
	}
	for d, lv := range first.levels {
		out.levels[d] = append([]string(nil), lv...)
	}
	return out, nil
}

// sameDims verifies identical dimension names, order and sizes.
func sameDims(a, b *Array) error {
	if len(a.dims) != len(b.dims) {
		return fmt.Errorf("%d vs %d dims: %w", len(a.dims), len(b.dims), ErrDimensionMismatch)
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] || a.shape[i] != b.shape[i] {
			return fmt.Errorf("dimension %q: %w", a.dims[i], ErrDimensionMismatch)
		}
	}
	return nil
}

// sameDimsOffAxis verifies identical dimension names/order and identical
// sizes everywhere except the given axis.
func sameDimsOffAxis(a, b *Array, ax int) error {
	if len(a.dims) != len(b.dims) {
		return fmt.Errorf("%d vs %d dims: %w", len(a.dims), len(b.dims), ErrDimensionMismatch)
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] || (i != ax && a.shape[i] != b.shape[i]) {
			return fmt.Errorf("dimension %q: %w", a.dims[i], ErrDimensionMismatch)
		}
	}
	return nil
}
