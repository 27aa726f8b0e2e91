// Package groupby: position ranges and the slice consolidator.

package groupby

import "fmt"

// Range is a half-open interval [Start, Stop) of positions with an
// optional step. Step 0 means unspecified and is equivalent to 1 for both
// iteration and merge compatibility.
type Range struct {
	Start, Stop, Step int
}

// step returns the effective step (1 for unspecified).
func (r Range) step() int {
	if r.Step == 0 {
		return 1
	}
	return r.Step
}

// Len returns the number of positions covered by r. A range with a
// negative step covers nothing.
func (r Range) Len() int {
	if r.Step < 0 || r.Stop <= r.Start {
		return 0
	}
	s := r.step()
	return (r.Stop - r.Start + s - 1) / s
}

// Positions expands r into its explicit position list.
func (r Range) Positions() []int {
	n := r.Len()
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	for p := r.Start; p < r.Stop; p += r.step() {
		out = append(out, p)
	}
	return out
}

// Consolidate merges an ordered sequence of entries into the minimal
// equivalent ordered sequence of maximal ranges. Every entry must be a
// Range; any other entry type fails with ErrTypeConsolidation immediately,
// regardless of where it sits in the sequence — a valid prefix is never
// silently accepted. A Range with a negative Step fails with
// ErrInvalidRange under the same eager discipline.
//
// Two adjacent ranges merge when the first's Stop equals the second's
// Start, their steps are compatible (equal, or both unit/unspecified),
// and the first's Stop lies on its own progression. Non-mergeable entries
// pass through unchanged, order preserved.
// Complexity: O(len(entries)).
func Consolidate(entries []any) ([]Range, error) {
	ranges := make([]Range, len(entries))
	for i, e := range entries {
		r, ok := e.(Range)
		if !ok {
			return nil, fmt.Errorf("groupby.Consolidate: entry %d is %T: %w", i, e, ErrTypeConsolidation)
		}
		if r.Step < 0 {
			return nil, fmt.Errorf("groupby.Consolidate: entry %d has step %d: %w", i, r.Step, ErrInvalidRange)
		}
		ranges[i] = r
	}
	return consolidateRanges(ranges), nil
}

// consolidateRanges is the typed merge pass behind Consolidate.
func consolidateRanges(ranges []Range) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if n := len(out); n > 0 && mergeable(out[n-1], r) {
			out[n-1].Stop = r.Stop
			continue
		}
		out = append(out, r)
	}
	return out
}

// mergeable reports whether b extends a contiguously with a compatible
// step. Beyond equal effective steps, a.Stop must sit on a's own
// progression: otherwise the merged range would expand to a different
// position set than the two originals back to back.
func mergeable(a, b Range) bool {
	if a.Stop != b.Start || a.step() != b.step() {
		return false
	}
	return (a.Stop-a.Start)%a.step() == 0
}
