package dist

import "github.com/EgorDm/statrs/numeric"

// Normal is the Gaussian distribution N(μ, σ²), parameterized by its
// mean and standard deviation. It backs the Gamma sampler's rejection
// step in addition to being a distribution in its own right.
type Normal[T numeric.Float] struct {
	mean   T
	stdDev T
}

// NewNormal constructs N(mean, stdDev²). Both parameters must be
// finite and stdDev must be positive.
func NewNormal[T numeric.Float](mean, stdDev T) (Normal[T], error) {
	if !numeric.IsFinite(mean) || !numeric.IsFinite(stdDev) || stdDev <= 0 {
		return Normal[T]{}, ErrInvalidParams
	}
	return Normal[T]{mean: mean, stdDev: stdDev}, nil
}

// Location returns μ.
func (n Normal[T]) Location() T { return n.mean }

// Scale returns σ.
func (n Normal[T]) Scale() T { return n.stdDev }

// Min returns the lower support bound, −∞.
func (n Normal[T]) Min() T { return numeric.Inf[T](-1) }

// Max returns the upper support bound, +∞.
func (n Normal[T]) Max() T { return numeric.Inf[T](1) }

// Mean returns μ.
func (n Normal[T]) Mean() (T, error) { return n.mean, nil }

// Variance returns σ².
func (n Normal[T]) Variance() (T, error) { return n.stdDev * n.stdDev, nil }

// StdDev returns σ.
func (n Normal[T]) StdDev() (T, error) { return n.stdDev, nil }

// Entropy returns ½·ln(2πeσ²).
func (n Normal[T]) Entropy() (T, error) {
	return 0.5*numeric.Ln2Pi[T]() + 0.5 + numeric.Ln(n.stdDev), nil
}

// Skewness returns 0: the Gaussian is symmetric.
func (n Normal[T]) Skewness() (T, error) { return 0, nil }

// Median returns μ.
func (n Normal[T]) Median() (T, error) { return n.mean, nil }

// Mode returns μ.
func (n Normal[T]) Mode() (T, error) { return n.mean, nil }

// PDF evaluates exp(−(x−μ)²/2σ²)/(σ√(2π)).
func (n Normal[T]) PDF(x T) (T, error) {
	if numeric.IsNaN(x) {
		return 0, ErrDomain
	}
	z := (x - n.mean) / n.stdDev
	return numeric.Exp(-z*z/2) / (n.stdDev * numeric.Sqrt2Pi[T]()), nil
}

// LnPDF evaluates −(x−μ)²/2σ² − ln(σ√(2π)); preferred in the tails
// where PDF underflows.
func (n Normal[T]) LnPDF(x T) (T, error) {
	if numeric.IsNaN(x) {
		return 0, ErrDomain
	}
	z := (x - n.mean) / n.stdDev
	return -z*z/2 - numeric.Ln(n.stdDev) - numeric.LnSqrt2Pi[T](), nil
}

// CDF evaluates Φ((x−μ)/σ) = ½(1 + erf(z/√2)).
func (n Normal[T]) CDF(x T) (T, error) {
	if numeric.IsNaN(x) {
		return 0, ErrDomain
	}
	z := (x - n.mean) / (n.stdDev * numeric.Sqrt2[T]())
	return (1 + numeric.Erf(z)) / 2, nil
}

// Sample draws one variate by the Box–Muller transform: exactly two
// uniforms per draw. A nil src uses the fixed-seed default stream.
func (n Normal[T]) Sample(src Source) T {
	return n.mean + n.stdDev*standardNormal[T](orDefault(src))
}

// standardNormal draws one N(0,1) variate via Box–Muller. The first
// uniform is reflected to (0,1] so the logarithm is always finite.
func standardNormal[T numeric.Float](src Source) T {
	u := T(1 - src.Float64())
	v := T(src.Float64())
	r := numeric.Sqrt(-2 * numeric.Ln(u))
	return r * numeric.Sin(2*numeric.Pi[T]()*v)
}
