// Package dist - capability interfaces of the distribution hierarchy.
//
// Each statistic lives in its own single-method interface so a
// distribution advertises exactly the subset that is mathematically
// defined for it, and callers discover capabilities through interface
// satisfaction rather than sentinel "unsupported" returns.
package dist

import "github.com/EgorDm/statrs/numeric"

// Source is the injected uniform-randomness capability: one variate
// in [0,1) per call. *math/rand.Rand satisfies it. Samplers consume a
// Source for the duration of one draw and never retain it.
type Source interface {
	Float64() float64
}

// Min exposes the lower support bound.
type Min[T numeric.Float] interface {
	Min() T
}

// Max exposes the upper support bound.
type Max[T numeric.Float] interface {
	Max() T
}

// Mean exposes the first moment, or ErrUndefined when the current
// parameters have none.
type Mean[T numeric.Float] interface {
	Mean() (T, error)
}

// Variance exposes the second central moment and its square root.
type Variance[T numeric.Float] interface {
	Variance() (T, error)
	StdDev() (T, error)
}

// Skewness exposes the third standardized moment.
type Skewness[T numeric.Float] interface {
	Skewness() (T, error)
}

// Entropy exposes the (differential) entropy in nats.
type Entropy[T numeric.Float] interface {
	Entropy() (T, error)
}

// Median exposes the distribution median.
type Median[T numeric.Float] interface {
	Median() (T, error)
}

// Mode exposes the distribution mode.
type Mode[T numeric.Float] interface {
	Mode() (T, error)
}

// Continuous is the evaluation capability of a distribution with a
// density: point density, log density, cumulative probability, and
// one draw from an injected Source.
type Continuous[T numeric.Float] interface {
	PDF(x T) (T, error)
	LnPDF(x T) (T, error)
	CDF(x T) (T, error)
	Sample(src Source) T
}

// Discrete is the evaluation capability of a distribution with a
// mass function over the non-negative integers.
type Discrete[T numeric.Float] interface {
	PMF(k uint64) (T, error)
	LnPMF(k uint64) (T, error)
	CDF(k uint64) (T, error)
	Sample(src Source) uint64
}
