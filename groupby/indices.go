// Package groupby: the group index builder.
//
// Given the label sequence along the grouped dimension, determine the
// distinct group keys and, per key, the set of member positions — as a
// Range when the positions form an arithmetic progression (unlocking a
// zero-copy view), or as an explicit sorted position list otherwise.
//
// Key order: ascending by the labels' natural order whenever the label
// type admits a total order; first-occurrence order otherwise (and when
// FirstSeen is requested explicitly).
//
// Invariant: memberships partition 0..n-1 exactly — every position lands
// in exactly one group and the union covers the whole dimension.

package groupby

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/larr/core"
)

// membership is one group's position set along the grouped dimension.
// Exactly one representation is populated.
type membership struct {
	rng *Range // arithmetic progression, zero-copy view later
	idx []int  // explicit ascending positions, gather copy later
}

// size returns the number of member positions.
func (m membership) size() int {
	if m.rng != nil {
		return m.rng.Len()
	}
	return len(m.idx)
}

// positions expands the membership into an explicit position list.
func (m membership) positions() []int {
	if m.rng != nil {
		return m.rng.Positions()
	}
	return append([]int(nil), m.idx...)
}

// buildIndices computes (ordered keys, memberships) for labels over a
// dimension of length n.
//
// Stage 1 (Validate): n > 0, labels non-empty, lengths agree.
// Stage 2 (Execute): stable sort path for orderable labels, first-seen
// scan otherwise.
// Stage 3 (Finalize): per-key progression detection.
// Complexity: O(n log n) sorted path, O(n · groups) scan path.
func buildIndices(labels []core.Key, n int, firstSeen bool) ([]core.Key, []membership, error) {
	if n == 0 || len(labels) == 0 {
		return nil, nil, fmt.Errorf("groupby: %d labels over length %d: %w", len(labels), n, ErrEmptyGroup)
	}
	if len(labels) != n {
		return nil, nil, fmt.Errorf("groupby: %d labels over length %d: %w", len(labels), n, ErrLabelLengthMismatch)
	}
	if !firstSeen && core.KeysOrderable(labels) {
		return sortedIndices(labels)
	}
	return scannedIndices(labels)
}

// sortedIndices groups via a stable sort of (label, position) pairs:
// distinct keys ascending, member positions ascending within each key.
func sortedIndices(labels []core.Key) ([]core.Key, []membership, error) {
	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		c, _ := core.CompareKeys(labels[order[i]], labels[order[j]])
		return c < 0
	})

	var (
		keys    []core.Key
		members []membership
	)
	for lo := 0; lo < len(order); {
		hi := lo + 1
		for hi < len(order) && core.KeysEqual(labels[order[lo]], labels[order[hi]]) {
			hi++
		}
		keys = append(keys, labels[order[lo]])
		members = append(members, asMembership(order[lo:hi]))
		lo = hi
	}
	return keys, members, nil
}

// scannedIndices groups by a first-seen distinct-value scan, preserving
// first-occurrence key order. Lookup is by full key equality, so labels
// only need to support equality, not ordering.
func scannedIndices(labels []core.Key) ([]core.Key, []membership, error) {
	var (
		keys    []core.Key
		buckets [][]int
	)
	for p, label := range labels {
		g := -1
		for i, k := range keys {
			if core.KeysEqual(k, label) {
				g = i
				break
			}
		}
		if g < 0 {
			g = len(keys)
			keys = append(keys, label)
			buckets = append(buckets, nil)
		}
		buckets[g] = append(buckets[g], p)
	}
	members := make([]membership, len(buckets))
	for i, b := range buckets {
		members[i] = asMembership(b)
	}
	return keys, members, nil
}

// asMembership detects an arithmetic progression in ascending positions
// and represents it as a Range; otherwise keeps the explicit list.
// The positions slice is copied, never retained.
func asMembership(positions []int) membership {
	if len(positions) == 1 {
		return membership{rng: &Range{Start: positions[0], Stop: positions[0] + 1, Step: 1}}
	}
	step := positions[1] - positions[0]
	uniform := step > 0
	for i := 2; uniform && i < len(positions); i++ {
		uniform = positions[i]-positions[i-1] == step
	}
	if uniform {
		return membership{rng: &Range{Start: positions[0], Stop: positions[len(positions)-1] + 1, Step: step}}
	}
	return membership{idx: append([]int(nil), positions...)}
}

// coverRanges collects the per-key ranges when every membership is a
// Range, consolidated into the minimal chunk list. It reports (nil, false)
// as soon as any membership needs an explicit position list.
func coverRanges(members []membership) ([]Range, bool) {
	ranges := make([]Range, 0, len(members))
	for _, m := range members {
		if m.rng == nil {
			return nil, false
		}
		ranges = append(ranges, *m.rng)
	}
	return consolidateRanges(ranges), true
}
