package dist

import (
	"github.com/EgorDm/statrs/numeric"
	"github.com/EgorDm/statrs/specfn"
)

// poissonDirectLimit is the rate below which sampling multiplies
// uniforms directly; above it the normal approximation is both faster
// and accurate.
const poissonDirectLimit = 30.0

// Poisson counts events arriving at a fixed mean rate λ.
type Poisson[T numeric.Float] struct {
	rate T
}

// NewPoisson constructs Poisson(rate) for a positive, finite rate.
func NewPoisson[T numeric.Float](rate T) (Poisson[T], error) {
	if numeric.IsNaN(rate) || rate <= 0 || numeric.IsInf(rate, 1) {
		return Poisson[T]{}, ErrInvalidParams
	}
	return Poisson[T]{rate: rate}, nil
}

// Rate returns λ.
func (p Poisson[T]) Rate() T { return p.rate }

// Min returns the lower support bound, 0.
func (p Poisson[T]) Min() T { return 0 }

// Max returns the upper support bound, +∞.
func (p Poisson[T]) Max() T { return numeric.Inf[T](1) }

// Mean returns λ.
func (p Poisson[T]) Mean() (T, error) { return p.rate, nil }

// Variance returns λ.
func (p Poisson[T]) Variance() (T, error) { return p.rate, nil }

// StdDev returns √λ.
func (p Poisson[T]) StdDev() (T, error) {
	return numeric.Sqrt(p.rate), nil
}

// Entropy returns the asymptotic expansion
// ½ln(2πeλ) − 1/(12λ) − 1/(24λ²) − 19/(360λ³).
func (p Poisson[T]) Entropy() (T, error) {
	l := p.rate
	return (numeric.Ln2Pi[T]()+1+numeric.Ln(l))/2 -
		1/(12*l) - 1/(24*l*l) - 19/(360*l*l*l), nil
}

// Skewness returns λ^(−½).
func (p Poisson[T]) Skewness() (T, error) {
	return 1 / numeric.Sqrt(p.rate), nil
}

// Median returns ⌊λ + 1/3 − 0.02/λ⌋, exact for every λ that keeps
// the bracketed term away from an integer boundary.
func (p Poisson[T]) Median() (T, error) {
	return numeric.Floor(p.rate + T(1.0/3.0) - T(0.02)/p.rate), nil
}

// Mode returns ⌊λ⌋.
func (p Poisson[T]) Mode() (T, error) {
	return numeric.Floor(p.rate), nil
}

// PMF evaluates λ^k·e^(−λ)/k!.
func (p Poisson[T]) PMF(k uint64) (T, error) {
	lp, err := p.LnPMF(k)
	if err != nil {
		return 0, err
	}
	return numeric.Exp(lp), nil
}

// LnPMF evaluates k·lnλ − λ − ln k!, stable for counts far above the
// rate where the mass underflows.
func (p Poisson[T]) LnPMF(k uint64) (T, error) {
	return T(k)*numeric.Ln(p.rate) - p.rate - specfn.LnFactorial[T](k), nil
}

// CDF evaluates P(X ≤ k) = Q(k+1, λ), the regularized upper
// incomplete gamma function.
func (p Poisson[T]) CDF(k uint64) (T, error) {
	return specfn.RegIncGammaUpper(T(k+1), p.rate)
}

// Sample draws one variate: Knuth's product of uniforms for small
// rates, the rounded normal approximation above poissonDirectLimit.
// A nil src uses the fixed-seed default stream.
func (p Poisson[T]) Sample(src Source) uint64 {
	src = orDefault(src)
	l := float64(p.rate)
	if l < poissonDirectLimit {
		return poissonKnuth(src, l)
	}
	x := float64(p.rate) + numeric.Sqrt(l)*float64(standardNormal[float64](src))
	if x < 0 {
		return 0
	}
	return uint64(x + 0.5)
}

// poissonKnuth multiplies uniforms until the product drops below
// e^(−λ); the number of factors minus one is Poisson(λ).
func poissonKnuth(src Source, l float64) uint64 {
	limit := numeric.Exp(-l)
	prod := src.Float64()
	var k uint64
	for prod > limit {
		k++
		prod *= src.Float64()
	}
	return k
}
