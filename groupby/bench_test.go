package groupby_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/larr/core"
	"github.com/katalvlaran/larr/groupby"
)

// benchVector builds an N-element vector with labels cycling through k groups.
func benchVector(b *testing.B, n, k int) *core.Array {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n)
	labels := make([]core.Key, n)
	for i := range data {
		data[i] = rng.Float64()
		labels[i] = i % k
	}
	a, err := core.Vector("x", data, labels)
	if err != nil {
		b.Fatalf("build vector: %v", err)
	}
	return a
}

// BenchmarkGroupBy_Build measures index construction alone: sorting N
// positions into k groups and detecting contiguous runs.
func BenchmarkGroupBy_Build(b *testing.B) {
	const (
		N = 100000
		K = 100
	)
	a := benchVector(b, N, K)

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := groupby.New(a, "x"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGroupBy_Sum measures a full group-reduce-combine pass over
// interleaved groups, which exercises the gather path.
func BenchmarkGroupBy_Sum(b *testing.B) {
	const (
		N = 100000
		K = 100
	)
	a := benchVector(b, N, K)
	g, err := groupby.New(a, "x")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := g.Sum(""); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGroupBy_SumContiguous measures the same reduction when every
// group is a contiguous block, which takes the zero-copy slice path.
func BenchmarkGroupBy_SumContiguous(b *testing.B) {
	const (
		N = 100000
		K = 100
	)
	data := make([]float64, N)
	labels := make([]core.Key, N)
	for i := range data {
		data[i] = float64(i)
		labels[i] = i / (N / K)
	}
	a, err := core.Vector("x", data, labels)
	if err != nil {
		b.Fatal(err)
	}
	g, err := groupby.New(a, "x")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := g.Sum(""); err != nil {
			b.Fatal(err)
		}
	}
}
