// Package core provides the fundamental labeled multi-dimensional array
// type and its primitives: named dimensions, per-dimension coordinate
// labels, zero-copy views, gather copies, concatenation and stacking.
//
// The Array A is a dense, row-major float64 container with:
//
//   - Named dimensions ("x", "time", …) instead of bare axis numbers
//   - Optional coordinate labels per dimension (ints, floats, strings,
//     time.Time instants, or Tuple composites)
//   - Zero-copy views: Slice (position range with step) and Transpose
//     share backing storage; Take (gather by position list), Copy and
//     Concat always allocate fresh storage
//   - Composite dimensions: a dimension whose labels are Tuples flattening
//     several original dimensions (see MarkComposite / CompositeLevels)
//
// Why use core.Array?
//
//   - Deterministic behavior — no global state, every accessor returns
//     defensive copies of metadata
//   - Explicit ownership — a view aliases its parent's storage and says so;
//     every copying operation is named like one (Take, Copy, Concat)
//   - Value semantics for labels — Key comparison and ordering live here,
//     shared by every package that partitions or sorts by label
//
// Core Methods:
//
//	// Construction
//	New(data []float64, dims []string, shape []int, opts ...Option) (*Array, error)
//
//	// Introspection
//	Dims() []string / Shape() []int / Size() int / AxisOf(dim) (int, error)
//	Coord(dim) ([]Key, bool) / CompositeLevels(dim) ([]string, bool)
//
//	// Element access
//	At(ix ...int) (float64, error) / Set(v float64, ix ...int) error
//	Values() []float64 / Scalar() (float64, error)
//
//	// Views & copies
//	Slice(dim, start, stop, step) / Transpose(order ...string)  — zero-copy
//	Take(dim, positions) / Squeeze(dim) / Copy()                — fresh storage
//
//	// Assembly
//	Concat(dim string, parts []*Array) (*Array, error)
//	StackNew(dim string, keys []Key, parts []*Array) (*Array, error)
//
// All failure modes are package-level sentinel errors matched with
// errors.Is; no method panics on user-triggered conditions.
package core
