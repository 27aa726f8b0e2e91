// Package larr is your in-memory toolkit for labeled multi-dimensional
// arrays — named dimensions, coordinate labels, and a split/apply/combine
// groupby engine on top.
//
// 🚀 What is larr?
//
//	A modern, zero-surprise library that brings together:
//		• Core primitives: dense float64 arrays with named dims & coordinate labels
//		• Views: zero-copy slicing & transposition, explicit gather copies
//		• Stacking: flatten several dims into one tuple-labeled composite dim (and back)
//		• Reductions: sum, mean and quantiles collapsing one named dimension
//		• GroupBy: partition along one dim by label, apply per group, recombine
//
// ✨ Why choose larr?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – read-only views of caller data, deterministic key order
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – arbitrary per-group callables via GroupBy.Apply
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    — fundamental Array, Key and Tuple types, views, concat & stack primitives
//	stack/   — composite-dimension flatten (Stack) and its inverse (Unstack)
//	reduce/  — numeric kernels: Sum, Mean, Quantile(s) over one named dim
//	groupby/ — the engine: group indices, lazy group views, Apply, Sum/Mean/Quantile
//
// Quick sketch:
//
//	    x\y │ 10 20 30
//	    ────┼─────────
//	     a  │  1  2  3
//	     b  │  4  5  6
//
//	represents a 2×3 array with dims ("x","y") and labels a,b / 10,20,30.
//
// Dive into README.md for full examples and the feature matrix.
//
//	go get github.com/katalvlaran/larr
package larr
