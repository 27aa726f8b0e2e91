// Package core: elementwise transforms. Every transform returns a fresh
// contiguous array; the receiver is never written to.

package core

// Map applies fn to every element, returning a fresh array with the same
// dimensions, labels and name.
// Complexity: O(size).
func (a *Array) Map(fn func(float64) float64) *Array {
	out := a.Copy()
	for i := range out.data {
		out.data[i] = fn(out.data[i])
	}
	return out
}

// Scale multiplies every element by k.
func (a *Array) Scale(k float64) *Array {
	return a.Map(func(v float64) float64 { return v * k })
}

// Shift adds c to every element.
func (a *Array) Shift(c float64) *Array {
	return a.Map(func(v float64) float64 { return v + c })
}
