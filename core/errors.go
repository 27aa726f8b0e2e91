// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the core
// package. All methods MUST return these sentinels and tests MUST check them
// via errors.Is. No method panics on user-triggered error conditions.

package core

import "errors"

var (
	// ErrBadShape is returned when dims/shape/data lengths disagree at
	// construction, when a dimension name repeats, or when a size is negative.
	ErrBadShape = errors.New("core: invalid shape")

	// ErrUnknownDim indicates a dimension name absent from the array.
	ErrUnknownDim = errors.New("core: unknown dimension")

	// ErrCoordLength indicates a coordinate label list whose length does not
	// match its dimension's size.
	ErrCoordLength = errors.New("core: coordinate length mismatch")

	// ErrOutOfRange indicates an index or position outside valid bounds.
	ErrOutOfRange = errors.New("core: index out of range")

	// ErrBadSlice indicates an invalid slice request (reversed bounds or a
	// step below 1).
	ErrBadSlice = errors.New("core: invalid slice bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Concat parts with different shapes off the concat axis, or Squeeze
	// on a dimension whose length is not 1.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrBadComposite indicates composite-dimension metadata that does not
	// match the dimension's labels (non-Tuple labels or wrong arity).
	ErrBadComposite = errors.New("core: invalid composite levels")

	// ErrNoParts is returned when Concat or StackNew receives no input arrays.
	ErrNoParts = errors.New("core: no input arrays")

	// ErrNotScalar is returned by Scalar on an array with more than one element.
	ErrNotScalar = errors.New("core: array is not a scalar")
)
