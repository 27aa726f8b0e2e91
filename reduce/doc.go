// Package reduce provides the numeric reduction kernels over one named
// dimension of a core.Array: Sum, Mean, and quantiles with an explicit
// interpolation policy.
//
// Every kernel is a pure function: it reads the input through its view,
// allocates a fresh output without the reduced dimension, and carries all
// unrelated labels forward unchanged. Kernels never write to the input.
//
// Quantile interpolation between order statistics is selected explicitly
// per call (Linear by default — the convention of most numeric stacks);
// there is no package-level default to mutate.
package reduce
