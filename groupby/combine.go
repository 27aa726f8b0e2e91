// Package groupby: the result combiner.
//
// Transform results (every group kept the grouped dim at full per-group
// length) are concatenated positionally, put back into the original
// position order, and re-labeled with the original pre-grouping labels —
// each element keeps its identity, so the output reproduces the source
// dimension's coordinate exactly, not the group keys.
//
// Reduce results (every group collapsed the grouped dim) are stacked
// along a new dimension labeled by the distinct group keys and named
// after the grouping key, then transposed so the new dimension sits at
// the grouped dimension's original axis position. When the grouping
// dimension was a flattened composite, the output dimension carries the
// same composite levels so a later Unstack reconstructs the original
// multi-dimensional layout.
//
// Mixing the two shapes across groups is refused.

package groupby

import (
	"fmt"

	"github.com/katalvlaran/larr/core"
)

// combine reassembles tagged per-group results into one labeled array.
func (g *GroupBy) combine(results []groupResult) (*core.Array, error) {
	transform, reduce := 0, 0
	for _, r := range results {
		switch r.kind {
		case kindSameLength:
			transform++
		case kindReduced, kindReducedOne:
			reduce++
		default:
			return nil, fmt.Errorf("groupby: group %v result %v: %w", r.key, r.arr, ErrInconsistentResult)
		}
	}
	switch {
	case transform == len(results):
		return g.combineTransform(results)
	case reduce == len(results):
		return g.combineReduce(results)
	default:
		return nil, fmt.Errorf("groupby: %d transform vs %d reduce results: %w",
			transform, reduce, ErrInconsistentResult)
	}
}

// combineTransform concatenates same-length results and restores the
// original position order and labels along the grouped dimension.
func (g *GroupBy) combineTransform(results []groupResult) (*core.Array, error) {
	parts := make([]*core.Array, len(results))
	for i, r := range results {
		parts[i] = r.arr
	}
	out, err := core.Concat(g.dim, parts)
	if err != nil {
		return nil, err
	}

	if !g.orderedCover() {
		// Groups interleave: permute rows back to their source positions.
		positions := g.flatPositions()
		take := make([]int, len(positions))
		for rank, p := range positions {
			take[p] = rank
		}
		if out, err = out.Take(g.dim, take); err != nil {
			return nil, err
		}
	}

	if err = out.SetCoord(g.dim, g.labels); err != nil {
		return nil, err
	}
	if g.levels != nil {
		if err = out.MarkComposite(g.dim, g.levels); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// combineReduce stacks reduced results along the new group dimension and
// restores the original axis order.
func (g *GroupBy) combineReduce(results []groupResult) (*core.Array, error) {
	parts := make([]*core.Array, len(results))
	var err error
	for i, r := range results {
		if r.kind == kindReducedOne {
			if parts[i], err = r.arr.Squeeze(g.dim); err != nil {
				return nil, err
			}
			continue
		}
		parts[i] = r.arr
	}

	out, err := core.StackNew(g.name, g.keys, parts)
	if err != nil {
		return nil, err
	}
	if g.levels != nil {
		if err = out.MarkComposite(g.name, g.levels); err != nil {
			return nil, err
		}
	}

	// Axis order: the group dimension takes the grouped dimension's
	// original position; result-only dimensions (e.g. "quantile") stay last.
	order := make([]string, 0, out.Ndim())
	for _, d := range g.arr.Dims() {
		switch {
		case d == g.dim:
			order = append(order, g.name)
		case out.HasDim(d):
			order = append(order, d)
		}
	}
	for _, d := range out.Dims() {
		if !contains(order, d) {
			order = append(order, d)
		}
	}
	return out.Transpose(order...)
}

// orderedCover reports whether concatenating the groups in key order
// already visits positions 0..n-1 in order, i.e. the per-group ranges
// consolidate into one unit-step range over the whole dimension.
func (g *GroupBy) orderedCover() bool {
	if cover, ok := coverRanges(g.members); ok {
		return len(cover) == 1 && cover[0].Start == 0 && cover[0].step() == 1
	}
	prev := -1
	for _, p := range g.flatPositions() {
		if p != prev+1 {
			return false
		}
		prev = p
	}
	return true
}

// flatPositions concatenates all memberships in group order.
func (g *GroupBy) flatPositions() []int {
	out := make([]int, 0, len(g.labels))
	for _, m := range g.members {
		out = append(out, m.positions()...)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
