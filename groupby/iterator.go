// Package groupby: the lazy group view iterator.

package groupby

import "github.com/katalvlaran/larr/core"

// GroupIter walks the (key, view) pairs of a GroupBy in key order. Views
// are built on demand and only for the groups actually visited:
//
//	it := g.Iter()
//	for it.Next() {
//		key, view := it.Key(), it.View()
//		…
//	}
//	if err := it.Err(); err != nil { … }
//
// Each call to Iter starts a fresh pass; the underlying indices are fixed
// at construction, so repeated passes yield identical sequences.
type GroupIter struct {
	g    *GroupBy
	pos  int
	view *core.Array
	err  error
}

// Iter returns a fresh iterator over the groups, in key order.
func (g *GroupBy) Iter() *GroupIter {
	return &GroupIter{g: g, pos: -1}
}

// Next advances to the next group, building its view. It returns false
// after the last group or on a view-construction failure (see Err).
func (it *GroupIter) Next() bool {
	if it.err != nil || it.pos+1 >= len(it.g.keys) {
		it.view = nil
		it.pos = len(it.g.keys)
		return false
	}
	it.pos++
	it.view, it.err = it.g.view(it.pos)
	return it.err == nil
}

// Key returns the current group's key.
func (it *GroupIter) Key() core.Key { return it.g.keys[it.pos] }

// View returns the current group's sub-array view.
func (it *GroupIter) View() *core.Array { return it.view }

// Err returns the first view-construction error, if any.
func (it *GroupIter) Err() error { return it.err }

// view builds the sub-array of group i: a zero-copy slice for Range
// membership, a gather copy for explicit position lists. Either way the
// result is backed by the GroupBy's private copy, never caller storage.
func (g *GroupBy) view(i int) (*core.Array, error) {
	m := g.members[i]
	if m.rng != nil {
		return g.arr.Slice(g.dim, m.rng.Start, m.rng.Stop, m.rng.step())
	}
	return g.arr.Take(g.dim, m.idx)
}
