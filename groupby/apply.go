// Package groupby: the apply/reduce engine.
//
// Apply drives the group iterator, calls the user function once per group
// in key order, single-threaded, and hands the tagged results to the
// combiner. Failure is atomic: the first error aborts the call and no
// partial combination is ever returned. User-function errors propagate
// exactly as raised.

package groupby

import "github.com/katalvlaran/larr/core"

// ApplyFunc is a per-group callable: it receives one group's view plus
// any extra arguments forwarded verbatim from Apply, and returns either a
// transformed array retaining the grouped dimension at its full per-group
// length, or a reduced array with that dimension collapsed.
type ApplyFunc func(view *core.Array, args ...any) (*core.Array, error)

// resultKind classifies one group result's relationship to the grouped
// dimension, decided once per result and matched exhaustively by the
// combiner.
type resultKind int

const (
	// kindSameLength: grouped dim present at the group's full member count.
	kindSameLength resultKind = iota
	// kindReduced: grouped dim absent.
	kindReduced
	// kindReducedOne: grouped dim present but collapsed to length 1 for a
	// group with more than one member.
	kindReducedOne
	// kindOther: anything else; combination refuses it.
	kindOther
)

// groupResult is one per-group result tagged with its originating key.
type groupResult struct {
	key  core.Key
	arr  *core.Array
	kind resultKind
}

// Apply calls fn once per group, in key order, forwarding args after the
// view, and combines the per-group results into one array (see combine.go
// for the transform/reduce assembly rules).
//
// The views are backed by the GroupBy's private copy of the source, so fn
// may mutate them freely without corrupting the caller's array.
func (g *GroupBy) Apply(fn ApplyFunc, args ...any) (*core.Array, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	results, err := g.applyCollect(fn, args)
	if err != nil {
		return nil, err
	}
	return g.combine(results)
}

// applyCollect runs the per-group calls and tags each result.
func (g *GroupBy) applyCollect(fn ApplyFunc, args []any) ([]groupResult, error) {
	results := make([]groupResult, 0, len(g.keys))
	it := g.Iter()
	for i := 0; it.Next(); i++ {
		if err := g.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		res, err := fn(it.View(), args...)
		if err != nil {
			// The user's failure, verbatim.
			return nil, err
		}
		results = append(results, groupResult{
			key:  it.Key(),
			arr:  res,
			kind: g.classify(res, g.members[i].size()),
		})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// classify decides one result's kind against its group's member count.
func (g *GroupBy) classify(res *core.Array, groupSize int) resultKind {
	if res == nil {
		return kindOther
	}
	n, err := res.SizeOf(g.dim)
	if err != nil {
		return kindReduced
	}
	switch {
	case n == groupSize:
		return kindSameLength
	case n == 1:
		return kindReducedOne
	default:
		return kindOther
	}
}
