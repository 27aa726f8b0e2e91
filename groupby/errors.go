// Package groupby: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// groupby package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. User-function errors are the exception:
// they propagate exactly as raised, never wrapped.

package groupby

import "errors"

var (
	// ErrTypeConsolidation is returned by Consolidate when an entry in the
	// input sequence is not a Range. Validation is eager: the first bad
	// entry anywhere in the sequence fails the whole call.
	ErrTypeConsolidation = errors.New("groupby: non-range entry in consolidation input")

	// ErrInvalidRange indicates a Range with a negative step; no position
	// expansion is defined for it.
	ErrInvalidRange = errors.New("groupby: negative range step")

	// ErrEmptyGroup indicates a grouped dimension of length zero or an
	// empty label sequence — there is nothing to partition.
	ErrEmptyGroup = errors.New("groupby: empty dimension or label sequence")

	// ErrLabelLengthMismatch indicates a label sequence whose length does
	// not equal the grouped dimension's length.
	ErrLabelLengthMismatch = errors.New("groupby: label length does not match dimension length")

	// ErrInconsistentResult indicates per-group results that mix transform
	// shape (grouped dim kept at full per-group length) with reduce shape
	// (grouped dim collapsed), or carry the grouped dim at an unexpected
	// length. Combination requires one consistent kind across all groups.
	ErrInconsistentResult = errors.New("groupby: inconsistent result shapes across groups")

	// ErrUnknownGroup indicates that the requested group name is neither a
	// dimension with labels nor resolvable on the array.
	ErrUnknownGroup = errors.New("groupby: unknown group coordinate")

	// ErrUnnamedKey indicates a key array without a name; the name becomes
	// the output's group dimension, so it cannot be empty.
	ErrUnnamedKey = errors.New("groupby: key array has no name")

	// ErrNilFunc indicates Apply was handed a nil callable.
	ErrNilFunc = errors.New("groupby: nil function")
)
