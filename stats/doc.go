// Package stats computes summary and order statistics over finite
// slices of any numeric type.
//
// 🚀 What is stats?
//
//	Two families of generic free functions:
//		• Summary  — Sum, Mean, Variance (population), SampleVariance,
//		  StdDev, SampleStdDev, Min, Max
//		• Order    — OrderStatistic, Median, Quantile, Percentile,
//		  Ranks
//
// ✨ Contracts:
//
//   - Any element type satisfying numeric.Real is accepted; results
//     are reported in the canonical float64 form.
//   - An empty slice is an explicit ErrEmptyInput, and a slice
//     containing NaN or ±Inf is an explicit ErrNonFiniteInput —
//     aggregates over undefined data fail loudly instead of
//     propagating NaN.
//   - Variance uses a two-pass, cancellation-corrected accumulation;
//     the naive Σx² − (Σx)² form is never used.
//   - Quantiles interpolate linearly between the two bracketing order
//     statistics at h = τ·(n−1); Ranks resolves ties by average rank.
//     Both policies are fixed and documented on the functions.
//
// ⚙️ Usage:
//
//	import "github.com/EgorDm/statrs/stats"
//
//	m, err := stats.Mean([]float64{2, 4, 6})    // 4
//	q, err := stats.Quantile(xs, 0.95)
//	r, err := stats.Ranks([]int{3, 1, 3})       // [2.5, 1, 2.5]
//
// The input slice is only read; order functions sort an internal copy.
package stats
