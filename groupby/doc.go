// Package groupby partitions a labeled array along one dimension by the
// distinct values of a label sequence, applies a reduction or transform
// independently to each partition, and reassembles the partial results
// into a single coherent labeled array.
//
// The pipeline, leaves first:
//
//  1. Range consolidation — Consolidate merges an ordered list of index
//     ranges into the minimal equivalent list of maximal ranges.
//  2. Group indices — distinct group keys in sorted order (first-occurrence
//     order for unorderable labels) with, per key, either a position Range
//     (arithmetic-progression membership → zero-copy view later) or an
//     explicit position list (→ gather copy).
//  3. Group views — Iter walks (key, view) pairs lazily, in key order.
//  4. Apply — calls a user function once per group, forwarding extra
//     arguments, collecting results tagged by key; any user error aborts
//     the whole call with no partial result.
//  5. Combine — transform results (grouped dim kept at full per-group
//     length) are concatenated back into the original layout with the
//     original labels restored; reduce results (grouped dim collapsed)
//     are stacked along a new dimension labeled by the group keys.
//
// Usage:
//
//	g, err := groupby.New(arr, "x")              // group by coordinate "x"
//	sums, err := g.Sum("")                       // sum over the grouped dim
//	med, err := g.Quantile(0.5)                  // median per group
//	out, err := g.Apply(func(v *core.Array, args ...any) (*core.Array, error) {
//		return v.Scale(2), nil                   // transform: keeps the dim
//	})
//
// Ownership: New deep-copies the source array once, so user functions may
// freely mutate the views they receive — nothing ever writes through to
// the caller's array. Group indices are recomputed per constructor call;
// a GroupBy holds no state shared with any other value.
//
// All failure modes are package-level sentinel errors matched with
// errors.Is; user-function errors propagate unwrapped.
package groupby
