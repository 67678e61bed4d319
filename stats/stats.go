package stats

import (
	"math"

	"github.com/EgorDm/statrs/numeric"
)

// checkFinite converts xs to float64 and rejects empty or non-finite
// input. Shared validation for every aggregate in this package: an
// infinite element would surface as NaN out of the deviation passes
// (Inf − Inf), so it is rejected up front alongside NaN.
func checkFinite[T numeric.Real](xs []T) error {
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	for _, x := range xs {
		v := numeric.ToFloat64(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteInput
		}
	}
	return nil
}

// Sum returns Σxᵢ in the canonical float64 form.
func Sum[T numeric.Real](xs []T) (float64, error) {
	if err := checkFinite(xs); err != nil {
		return 0, err
	}
	var s float64
	for _, x := range xs {
		s += numeric.ToFloat64(x)
	}
	return s, nil
}

// Mean returns the arithmetic mean Σxᵢ/n.
func Mean[T numeric.Real](xs []T) (float64, error) {
	s, err := Sum(xs)
	if err != nil {
		return 0, err
	}
	return s / float64(len(xs)), nil
}

// Variance returns the population variance Σ(xᵢ−μ)²/n using the
// two-pass corrected algorithm: the second pass accumulates both the
// squared deviations and the (ideally zero) residual sum, and the
// residual's square is subtracted to cancel the rounding error the
// first-pass mean introduced. The catastrophic cancellation of the
// naive Σx²−(Σx)²/n form cannot occur.
func Variance[T numeric.Real](xs []T) (float64, error) {
	ss, n, err := sumSquaredDeviations(xs)
	if err != nil {
		return 0, err
	}
	return ss / n, nil
}

// SampleVariance returns the bias-corrected variance Σ(xᵢ−μ)²/(n−1).
// A single observation has no sample variance, so n ≥ 2 is required.
func SampleVariance[T numeric.Real](xs []T) (float64, error) {
	ss, n, err := sumSquaredDeviations(xs)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, ErrEmptyInput
	}
	return ss / (n - 1), nil
}

// StdDev returns √Variance (population).
func StdDev[T numeric.Real](xs []T) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// SampleStdDev returns √SampleVariance.
func SampleStdDev[T numeric.Real](xs []T) (float64, error) {
	v, err := SampleVariance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// sumSquaredDeviations is the shared two-pass kernel: it returns
// Σ(xᵢ−μ)² with the compensation term removed, plus n as float64.
func sumSquaredDeviations[T numeric.Real](xs []T) (ss, n float64, err error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, 0, err
	}
	var sq, comp float64
	for _, x := range xs {
		d := numeric.ToFloat64(x) - mean
		sq += d * d
		comp += d
	}
	n = float64(len(xs))
	return sq - comp*comp/n, n, nil
}

// Min returns the smallest element.
func Min[T numeric.Real](xs []T) (float64, error) {
	if err := checkFinite(xs); err != nil {
		return 0, err
	}
	m := numeric.ToFloat64(xs[0])
	for _, x := range xs[1:] {
		if v := numeric.ToFloat64(x); v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest element.
func Max[T numeric.Real](xs []T) (float64, error) {
	if err := checkFinite(xs); err != nil {
		return 0, err
	}
	m := numeric.ToFloat64(xs[0])
	for _, x := range xs[1:] {
		if v := numeric.ToFloat64(x); v > m {
			m = v
		}
	}
	return m, nil
}
