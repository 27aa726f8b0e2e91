// Package core: the Array container.
//
// Storage model: a flat float64 slice addressed through offset + strides,
// row-major by construction. Views produced by Slice/Transpose share the
// backing slice and re-derive offset/strides; all other operations allocate.
// Metadata (dims, shape, strides, coords, levels) is copied per derived
// array so no two Arrays share mutable metadata.

package core

import (
	"fmt"
)

// Array is a dense labeled multi-dimensional array of float64 values.
// The zero value is not usable; construct with New.
type Array struct {
	name    string
	dims    []string
	shape   []int
	strides []int // in elements of data
	offset  int
	data    []float64
	coords  map[string][]Key    // labels per dimension; optional per dim
	levels  map[string][]string // constituent dim names per composite dim
}

// Option configures New via functional arguments.
type Option func(*Array) error

// WithName sets the array's name (carried through views and copies,
// ignored by Equal, honored by Identical).
func WithName(name string) Option {
	return func(a *Array) error {
		a.name = name
		return nil
	}
}

// WithCoord attaches coordinate labels to one dimension. The label list
// length must equal that dimension's size.
func WithCoord(dim string, labels []Key) Option {
	return func(a *Array) error {
		return a.setCoordChecked(dim, labels)
	}
}

// WithComposite marks one dimension as a flattened composite of the named
// levels. The dimension must carry Tuple labels of matching arity.
func WithComposite(dim string, levels []string) Option {
	return func(a *Array) error {
		return a.MarkComposite(dim, levels)
	}
}

// New constructs an Array over data with the given dimension names and
// shape. data is row-major and its length must equal the product of shape.
// The returned Array takes ownership of data; callers keeping the slice
// must pass a copy.
//
// Stage 1 (Validate): dims/shape agreement, uniqueness, non-negative sizes.
// Stage 2 (Prepare): derive row-major strides.
// Stage 3 (Finalize): apply options (coords, composite marks, name).
// Complexity: O(ndim + len(options)).
func New(data []float64, dims []string, shape []int, opts ...Option) (*Array, error) {
	if len(dims) != len(shape) {
		return nil, fmt.Errorf("core.New: %d dims vs %d sizes: %w", len(dims), len(shape), ErrBadShape)
	}
	seen := make(map[string]struct{}, len(dims))
	size := 1
	for i, d := range dims {
		if _, dup := seen[d]; dup {
			return nil, fmt.Errorf("core.New: duplicate dimension %q: %w", d, ErrBadShape)
		}
		seen[d] = struct{}{}
		if shape[i] < 0 {
			return nil, fmt.Errorf("core.New: negative size for %q: %w", d, ErrBadShape)
		}
		size *= shape[i]
	}
	if len(data) != size {
		return nil, fmt.Errorf("core.New: %d values for size %d: %w", len(data), size, ErrBadShape)
	}

	a := &Array{
		dims:    append([]string(nil), dims...),
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		data:    data,
		coords:  make(map[string][]Key),
		levels:  make(map[string][]string),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Vector constructs a 1-D labeled array: one dimension dim of len(data)
// carrying labels (labels may be nil for an unlabeled dimension).
func Vector(dim string, data []float64, labels []Key, opts ...Option) (*Array, error) {
	if labels != nil {
		opts = append([]Option{WithCoord(dim, labels)}, opts...)
	}
	return New(data, []string{dim}, []int{len(data)}, opts...)
}

// Name returns the array's name ("" when unnamed).
func (a *Array) Name() string { return a.name }

// Named returns a shallow view of a carrying a different name.
func (a *Array) Named(name string) *Array {
	v := a.metaClone()
	v.name = name
	return v
}

// Ndim returns the number of dimensions.
func (a *Array) Ndim() int { return len(a.dims) }

// Dims returns a copy of the dimension names, in axis order.
func (a *Array) Dims() []string { return append([]string(nil), a.dims...) }

// Shape returns a copy of the per-dimension sizes.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Size returns the total number of elements.
func (a *Array) Size() int {
	n := 1
	for _, s := range a.shape {
		n *= s
	}
	return n
}

// HasDim reports whether dim exists on the array.
func (a *Array) HasDim(dim string) bool {
	_, err := a.AxisOf(dim)
	return err == nil
}

// AxisOf resolves a dimension name to its axis position.
func (a *Array) AxisOf(dim string) (int, error) {
	for i, d := range a.dims {
		if d == dim {
			return i, nil
		}
	}
	return 0, fmt.Errorf("core: dimension %q: %w", dim, ErrUnknownDim)
}

// SizeOf returns the length of one named dimension.
func (a *Array) SizeOf(dim string) (int, error) {
	ax, err := a.AxisOf(dim)
	if err != nil {
		return 0, err
	}
	return a.shape[ax], nil
}

// Coord returns a copy of the coordinate labels of dim, and whether any
// labels are attached.
func (a *Array) Coord(dim string) ([]Key, bool) {
	labels, ok := a.coords[dim]
	if !ok {
		return nil, false
	}
	return append([]Key(nil), labels...), true
}

// SetCoord replaces the coordinate labels of an existing dimension.
func (a *Array) SetCoord(dim string, labels []Key) error {
	return a.setCoordChecked(dim, labels)
}

// DropCoord removes the coordinate labels (and composite mark) of dim.
func (a *Array) DropCoord(dim string) {
	delete(a.coords, dim)
	delete(a.levels, dim)
}

func (a *Array) setCoordChecked(dim string, labels []Key) error {
	ax, err := a.AxisOf(dim)
	if err != nil {
		return err
	}
	if len(labels) != a.shape[ax] {
		return fmt.Errorf("core: %d labels for dimension %q of length %d: %w",
			len(labels), dim, a.shape[ax], ErrCoordLength)
	}
	a.coords[dim] = append([]Key(nil), labels...)
	return nil
}

// MarkComposite records that dim is a flattened composite of the named
// levels. Every label of dim must be a Tuple with len(levels) elements.
func (a *Array) MarkComposite(dim string, levels []string) error {
	if _, err := a.AxisOf(dim); err != nil {
		return err
	}
	labels, ok := a.coords[dim]
	if !ok {
		return fmt.Errorf("core: composite dimension %q has no labels: %w", dim, ErrBadComposite)
	}
	if len(levels) == 0 {
		return fmt.Errorf("core: composite dimension %q with no levels: %w", dim, ErrBadComposite)
	}
	for _, k := range labels {
		t, isTuple := k.(Tuple)
		if !isTuple || len(t) != len(levels) {
			return fmt.Errorf("core: label %v of %q is not a %d-tuple: %w", k, dim, len(levels), ErrBadComposite)
		}
	}
	a.levels[dim] = append([]string(nil), levels...)
	return nil
}

// CompositeLevels returns the constituent dimension names of a composite
// dim, and whether dim is marked composite.
func (a *Array) CompositeLevels(dim string) ([]string, bool) {
	lv, ok := a.levels[dim]
	if !ok {
		return nil, false
	}
	return append([]string(nil), lv...), true
}

// At returns the element at the given multi-index (one index per dim).
func (a *Array) At(ix ...int) (float64, error) {
	off, err := a.offsetOf(ix)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// Set writes one element at the given multi-index. Writes go to the
// array's own backing storage; on a view that storage is shared with the
// parent view.
func (a *Array) Set(v float64, ix ...int) error {
	off, err := a.offsetOf(ix)
	if err != nil {
		return err
	}
	a.data[off] = v
	return nil
}

// Scalar returns the single element of a size-1 (typically 0-D) array.
func (a *Array) Scalar() (float64, error) {
	if a.Size() != 1 {
		return 0, fmt.Errorf("core: size %d: %w", a.Size(), ErrNotScalar)
	}
	return a.data[a.offset], nil
}

// Values materializes the elements in row-major order into a fresh slice.
// Complexity: O(size) (single copy on contiguous arrays).
func (a *Array) Values() []float64 {
	size := a.Size()
	out := make([]float64, size)
	if size == 0 {
		return out
	}
	if a.contiguous() {
		copy(out, a.data[a.offset:a.offset+size])
		return out
	}
	i := 0
	a.eachOffset(func(off int) {
		out[i] = a.data[off]
		i++
	})
	return out
}

// Copy returns a deep, contiguous copy of the array: fresh storage, fresh
// metadata, no aliasing with the receiver.
func (a *Array) Copy() *Array {
	out := a.metaClone()
	out.data = a.Values()
	out.offset = 0
	out.strides = rowMajorStrides(a.shape)
	return out
}

// Equal reports whether b has the same dimensions (names and order),
// shape, coordinate labels and element values as a. Names are ignored.
func (a *Array) Equal(b *Array) bool {
	if b == nil || len(a.dims) != len(b.dims) {
		return false
	}
	for i := range a.dims {
		if a.dims[i] != b.dims[i] || a.shape[i] != b.shape[i] {
			return false
		}
	}
	if len(a.coords) != len(b.coords) {
		return false
	}
	for d, la := range a.coords {
		lb, ok := b.coords[d]
		if !ok || !KeyListsEqual(la, lb) {
			return false
		}
	}
	va, vb := a.Values(), b.Values()
	for i := range va {
		if va[i] != vb[i] {
			return false
		}
	}
	return true
}

// Identical reports Equal plus matching names and composite-level marks.
func (a *Array) Identical(b *Array) bool {
	if !a.Equal(b) || a.name != b.name {
		return false
	}
	if len(a.levels) != len(b.levels) {
		return false
	}
	for d, la := range a.levels {
		lb, ok := b.levels[d]
		if !ok || len(la) != len(lb) {
			return false
		}
		for i := range la {
			if la[i] != lb[i] {
				return false
			}
		}
	}
	return true
}

// String returns a short debug description, not a full rendering.
func (a *Array) String() string {
	return fmt.Sprintf("Array(%q, dims=%v, shape=%v)", a.name, a.dims, a.shape)
}

// ---------- internal plumbing ----------

// metaClone returns a shallow clone: shared data, copied metadata.
func (a *Array) metaClone() *Array {
	out := &Array{
		name:    a.name,
		dims:    append([]string(nil), a.dims...),
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		offset:  a.offset,
		data:    a.data,
		coords:  make(map[string][]Key, len(a.coords)),
		levels:  make(map[string][]string, len(a.levels)),
	}
	for d, labels := range a.coords {
		out.coords[d] = append([]Key(nil), labels...)
	}
	for d, lv := range a.levels {
		out.levels[d] = append([]string(nil), lv...)
	}
	return out
}

// offsetOf computes the flat offset of a multi-index or returns ErrOutOfRange.
func (a *Array) offsetOf(ix []int) (int, error) {
	if len(ix) != len(a.dims) {
		return 0, fmt.Errorf("core: %d indices for %d dims: %w", len(ix), len(a.dims), ErrOutOfRange)
	}
	off := a.offset
	for k, i := range ix {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("core: index %d on dimension %q of length %d: %w",
				i, a.dims[k], a.shape[k], ErrOutOfRange)
		}
		off += i * a.strides[k]
	}
	return off, nil
}

// eachOffset visits every element's flat offset in row-major order.
func (a *Array) eachOffset(fn func(off int)) {
	if a.Size() == 0 {
		return
	}
	if len(a.dims) == 0 {
		fn(a.offset)
		return
	}
	ix := make([]int, len(a.dims))
	for {
		off := a.offset
		for k, i := range ix {
			off += i * a.strides[k]
		}
		fn(off)
		k := len(ix) - 1
		for ; k >= 0; k-- {
			ix[k]++
			if ix[k] < a.shape[k] {
				break
			}
			ix[k] = 0
		}
		if k < 0 {
			return
		}
	}
}

// eachIndex visits every multi-index in row-major order. The slice passed
// to fn is reused between calls.
func (a *Array) eachIndex(fn func(ix []int)) {
	if a.Size() == 0 {
		return
	}
	ix := make([]int, len(a.dims))
	for {
		fn(ix)
		k := len(ix) - 1
		for ; k >= 0; k-- {
			ix[k]++
			if ix[k] < a.shape[k] {
				break
			}
			ix[k] = 0
		}
		if k < 0 {
			return
		}
	}
}

// contiguous reports whether the view is dense row-major over its extent.
func (a *Array) contiguous() bool {
	want := rowMajorStrides(a.shape)
	for i := range want {
		if a.shape[i] > 1 && a.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// rowMajorStrides derives canonical row-major strides for a shape.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}
