package stats_test

import (
	"testing"

	"github.com/EgorDm/statrs/stats"
)

// benchSlice builds a deterministic pseudo-random-looking slice
// without any RNG dependency in the benchmark setup.
func benchSlice(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64((i*2654435761)%1000) / 7.0
	}
	return xs
}

// BenchmarkVariance measures the two-pass kernel on 10k elements.
func BenchmarkVariance(b *testing.B) {
	xs := benchSlice(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stats.Variance(xs); err != nil {
			b.Fatalf("Variance failed: %v", err)
		}
	}
}

// BenchmarkQuantile measures sort-dominated quantile estimation.
func BenchmarkQuantile(b *testing.B) {
	xs := benchSlice(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stats.Quantile(xs, 0.99); err != nil {
			b.Fatalf("Quantile failed: %v", err)
		}
	}
}

// BenchmarkRanks measures ranking with the tie-run scan.
func BenchmarkRanks(b *testing.B) {
	xs := benchSlice(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stats.Ranks(xs); err != nil {
			b.Fatalf("Ranks failed: %v", err)
		}
	}
}
