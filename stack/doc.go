// Package stack converts between several named dimensions and a single
// composite dimension whose labels are core.Tuple values — the flattening
// used before grouping by a multi-level key, and its exact inverse.
//
// Stack moves the chosen dimensions to the end (row-major over their given
// order), collapses them into one composite dimension, and records the
// constituent names so Unstack can reconstruct the original layout:
//
//	a: dims ("x","y"), labels x=["a","b"], y=[1,2,3]
//	s, _ := stack.Stack(a, "space", []string{"x", "y"})
//	// s: dims ("space"), labels [(a,1) (a,2) (a,3) (b,1) (b,2) (b,3)]
//	b, _ := stack.Unstack(s, "space")
//	// b.Equal(a) == true
//
// Unstack accepts any array whose composite dimension covers the full
// cross product of its level values exactly once — in particular the
// output of a groupby reduction over a stacked dimension, where the
// distinct group keys are the stacked tuples in sorted order.
package stack
