// Package stack: the Stack/Unstack transforms.
//
// Invariants:
//   - Stack is lossless: Unstack(Stack(a, d, dims), d).Equal(a) for any a
//     whose dims carry labels.
//   - Unstack validates the full-cross-product property eagerly and fails
//     with ErrIncompleteProduct before allocating the output when a cell
//     would be missing or written twice.

package stack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/larr/core"
)

var (
	// ErrNothingToStack indicates an empty list of dimensions to flatten.
	ErrNothingToStack = errors.New("stack: no dimensions to stack")

	// ErrDimExists indicates the requested composite name is already a
	// dimension of the input.
	ErrDimExists = errors.New("stack: composite dimension already exists")

	// ErrNotComposite indicates Unstack was pointed at a dimension without
	// composite (tuple) labels.
	ErrNotComposite = errors.New("stack: dimension is not composite")

	// ErrIncompleteProduct indicates composite labels that do not cover the
	// cross product of their level values exactly once.
	ErrIncompleteProduct = errors.New("stack: labels do not form a full cross product")
)

// Stack flattens the named dims (in the given order, row-major) into one
// composite dimension newDim appended after the remaining dimensions.
// Dimensions without labels contribute their positions (int keys).
//
// Stage 1 (Validate): dims exist, newDim is fresh, at least one dim given.
// Stage 2 (Execute): transpose stacked dims last, materialize, relabel.
// Complexity: O(size).
func Stack(a *core.Array, newDim string, dims []string) (*core.Array, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("stack.Stack(%q): %w", newDim, ErrNothingToStack)
	}
	if a.HasDim(newDim) {
		return nil, fmt.Errorf("stack.Stack(%q): %w", newDim, ErrDimExists)
	}

	stacked := make(map[string]struct{}, len(dims))
	sizes := make([]int, len(dims))
	levelLabels := make([][]core.Key, len(dims))
	var err error
	for i, d := range dims {
		if sizes[i], err = a.SizeOf(d); err != nil {
			return nil, fmt.Errorf("stack.Stack(%q): %w", newDim, err)
		}
		stacked[d] = struct{}{}
		if labels, ok := a.Coord(d); ok {
			levelLabels[i] = labels
		} else {
			labels = make([]core.Key, sizes[i])
			for p := range labels {
				labels[p] = p
			}
			levelLabels[i] = labels
		}
	}

	// Remaining dims keep their relative order, stacked dims go last.
	order := make([]string, 0, a.Ndim())
	rest := make([]string, 0, a.Ndim()-len(dims))
	for _, d := range a.Dims() {
		if _, isStacked := stacked[d]; !isStacked {
			order = append(order, d)
			rest = append(rest, d)
		}
	}
	order = append(order, dims...)

	view, err := a.Transpose(order...)
	if err != nil {
		return nil, err
	}
	flat := view.Copy()

	// Tuples in row-major order over the stacked dims.
	total := 1
	for _, s := range sizes {
		total *= s
	}
	tuples := make([]core.Key, total)
	ix := make([]int, len(dims))
	for p := 0; p < total; p++ {
		t := make(core.Tuple, len(dims))
		for j := range dims {
			t[j] = levelLabels[j][ix[j]]
		}
		tuples[p] = t
		for k := len(ix) - 1; k >= 0; k-- {
			ix[k]++
			if ix[k] < sizes[k] {
				break
			}
			ix[k] = 0
		}
	}

	outDims := append(append([]string(nil), rest...), newDim)
	outShape := make([]int, 0, len(outDims))
	for _, d := range rest {
		n, _ := flat.SizeOf(d)
		outShape = append(outShape, n)
	}
	outShape = append(outShape, total)

	opts := []core.Option{core.WithName(a.Name()), core.WithCoord(newDim, tuples)}
	out, err := core.New(flat.Values(), outDims, outShape, opts...)
	if err != nil {
		return nil, err
	}
	for _, d := range rest {
		if labels, ok := a.Coord(d); ok {
			if err = out.SetCoord(d, labels); err != nil {
				return nil, err
			}
		}
	}
	if err = out.MarkComposite(newDim, dims); err != nil {
		return nil, err
	}
	return out, nil
}

// Unstack expands a composite dimension back into its constituent
// dimensions, placed at the composite dimension's axis position in level
// order. The composite labels must cover the cross product of their level
// values exactly once.
// Complexity: O(size · ndim).
func Unstack(a *core.Array, dim string) (*core.Array, error) {
	levelNames, ok := a.CompositeLevels(dim)
	if !ok {
		return nil, fmt.Errorf("stack.Unstack(%q): %w", dim, ErrNotComposite)
	}
	labels, _ := a.Coord(dim)
	tuples := make([]core.Tuple, len(labels))
	for i, k := range labels {
		t, isTuple := k.(core.Tuple)
		if !isTuple || len(t) != len(levelNames) {
			return nil, fmt.Errorf("stack.Unstack(%q): label %v: %w", dim, k, ErrNotComposite)
		}
		tuples[i] = t
	}

	// Distinct values per level, in first-appearance order.
	levelVals := make([][]core.Key, len(levelNames))
	cell := make([][]int, len(tuples)) // per-tuple index along each level
	for i, t := range tuples {
		cell[i] = make([]int, len(levelNames))
		for j, v := range t {
			pos := indexOfKey(levelVals[j], v)
			if pos < 0 {
				pos = len(levelVals[j])
				levelVals[j] = append(levelVals[j], v)
			}
			cell[i][j] = pos
		}
	}

	// Full cross product check: one tuple per cell, no repeats, no holes.
	want := 1
	for _, vals := range levelVals {
		want *= len(vals)
	}
	if len(tuples) != want {
		return nil, fmt.Errorf("stack.Unstack(%q): %d labels for %d cells: %w",
			dim, len(tuples), want, ErrIncompleteProduct)
	}
	lvlStrides := levelStrides(levelVals)
	seen := make([]bool, want)
	flatCell := make([]int, len(tuples))
	for i, c := range cell {
		f := 0
		for j, p := range c {
			f += p * lvlStrides[j]
		}
		if seen[f] {
			return nil, fmt.Errorf("stack.Unstack(%q): duplicate label %v: %w", dim, tuples[i], ErrIncompleteProduct)
		}
		seen[f] = true
		flatCell[i] = f
	}

	ax, err := a.AxisOf(dim)
	if err != nil {
		return nil, err
	}

	// Output layout: composite axis replaced in place by the level axes.
	srcDims, srcShape := a.Dims(), a.Shape()
	outDims := make([]string, 0, len(srcDims)-1+len(levelNames))
	outShape := make([]int, 0, cap(outDims))
	for i, d := range srcDims {
		if i == ax {
			for j, lv := range levelNames {
				outDims = append(outDims, lv)
				outShape = append(outShape, len(levelVals[j]))
			}
			continue
		}
		outDims = append(outDims, d)
		outShape = append(outShape, srcShape[i])
	}

	outSize := 1
	for _, s := range outShape {
		outSize *= s
	}
	data := make([]float64, outSize)
	out, err := core.New(data, outDims, outShape, core.WithName(a.Name()))
	if err != nil {
		return nil, err
	}

	// Scatter each source element into its expanded cell.
	outStrides := strideOf(outShape)
	srcVals := a.Values()
	srcIx := make([]int, len(srcDims))
	pos := 0
	for {
		if len(srcVals) == 0 {
			break
		}
		// Destination flat offset: outer indices keep their axes, the
		// composite index expands through its cell decomposition.
		off := 0
		oAx := 0
		for i, v := range srcIx {
			if i == ax {
				c := cell[v]
				for j := range levelNames {
					off += c[j] * outStrides[oAx]
					oAx++
				}
				continue
			}
			off += v * outStrides[oAx]
			oAx++
		}
		data[off] = srcVals[pos]
		pos++
		k := len(srcIx) - 1
		for ; k >= 0; k-- {
			srcIx[k]++
			if srcIx[k] < srcShape[k] {
				break
			}
			srcIx[k] = 0
		}
		if k < 0 {
			break
		}
	}

	for j, lv := range levelNames {
		if err = out.SetCoord(lv, levelVals[j]); err != nil {
			return nil, err
		}
	}
	for _, d := range srcDims {
		if d == dim {
			continue
		}
		if labels, hasLabels := a.Coord(d); hasLabels {
			if err = out.SetCoord(d, labels); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// indexOfKey finds v in vals by full key equality, or -1.
func indexOfKey(vals []core.Key, v core.Key) int {
	for i, w := range vals {
		if core.KeysEqual(w, v) {
			return i
		}
	}
	return -1
}

// levelStrides derives row-major strides over per-level value counts.
func levelStrides(levelVals [][]core.Key) []int {
	strides := make([]int, len(levelVals))
	acc := 1
	for i := len(levelVals) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= len(levelVals[i])
	}
	return strides
}

// strideOf derives row-major strides for an explicit shape.
func strideOf(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}
