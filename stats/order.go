package stats

import (
	"sort"

	"github.com/EgorDm/statrs/numeric"
)

// sortedCopy validates xs and returns its float64 values ascending.
func sortedCopy[T numeric.Real](xs []T) ([]float64, error) {
	if err := checkFinite(xs); err != nil {
		return nil, err
	}
	s := make([]float64, len(xs))
	for i, x := range xs {
		s[i] = numeric.ToFloat64(x)
	}
	sort.Float64s(s)
	return s, nil
}

// OrderStatistic returns the k-th smallest element, 1-based: k = 1 is
// the minimum and k = n the maximum. Indices outside 1..n yield
// ErrBadOrder.
func OrderStatistic[T numeric.Real](xs []T, k int) (float64, error) {
	s, err := sortedCopy(xs)
	if err != nil {
		return 0, err
	}
	if k < 1 || k > len(s) {
		return 0, ErrBadOrder
	}
	return s[k-1], nil
}

// Quantile estimates the τ-quantile for τ ∈ [0,1].
//
// Policy (fixed): with the sorted sample x₍₁₎ ≤ … ≤ x₍ₙ₎, the
// estimate interpolates linearly between the two bracketing order
// statistics at the fractional position h = τ·(n−1):
//
//	Q(τ) = x₍⌊h⌋₊₁₎ + (h − ⌊h⌋)·(x₍⌊h⌋₊₂₎ − x₍⌊h⌋₊₁₎)
//
// so Q(0) is the minimum, Q(1) the maximum, and Q(0.5) the
// conventional median.
func Quantile[T numeric.Real](xs []T, tau float64) (float64, error) {
	if numeric.IsNaN(tau) || tau < 0 || tau > 1 {
		if err := checkFinite(xs); err != nil {
			return 0, err
		}
		return 0, ErrBadQuantile
	}
	s, err := sortedCopy(xs)
	if err != nil {
		return 0, err
	}
	h := tau * float64(len(s)-1)
	lo := int(h)
	if lo == len(s)-1 {
		return s[lo], nil
	}
	frac := h - float64(lo)
	return s[lo] + frac*(s[lo+1]-s[lo]), nil
}

// Percentile is Quantile with p expressed in percent: p ∈ [0,100].
// Input-validation errors take precedence over a bad level.
func Percentile[T numeric.Real](xs []T, p float64) (float64, error) {
	if numeric.IsNaN(p) || p < 0 || p > 100 {
		if err := checkFinite(xs); err != nil {
			return 0, err
		}
		return 0, ErrBadQuantile
	}
	return Quantile(xs, p/100)
}

// Median returns Quantile(xs, 0.5): the middle order statistic for
// odd n, the midpoint of the two middle ones for even n.
func Median[T numeric.Real](xs []T) (float64, error) {
	return Quantile(xs, 0.5)
}

// Ranks assigns each element its 1-based rank in ascending order.
//
// Policy (fixed): ties receive the average of the ranks they occupy,
// so Ranks([3,1,3]) = [2.5, 1, 2.5]. The result is aligned with the
// input order.
func Ranks[T numeric.Real](xs []T) ([]float64, error) {
	if err := checkFinite(xs); err != nil {
		return nil, err
	}
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	vals := make([]float64, n)
	for i, x := range xs {
		vals[i] = numeric.ToFloat64(x)
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && vals[idx[j+1]] == vals[idx[i]] {
			j++
		}
		// Average rank over the tie run [i..j]; ranks are 1-based.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks, nil
}
