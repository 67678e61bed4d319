package dist

import (
	"github.com/EgorDm/statrs/numeric"
	"github.com/EgorDm/statrs/specfn"
)

// Binomial counts the successes in n independent trials with success
// probability p each.
type Binomial[T numeric.Float] struct {
	p T
	n uint64
}

// NewBinomial constructs Binomial(n, p). p must lie in [0, 1]; the
// degenerate edges p = 0 and p = 1 are valid point masses.
func NewBinomial[T numeric.Float](n uint64, p T) (Binomial[T], error) {
	if numeric.IsNaN(p) || p < 0 || p > 1 {
		return Binomial[T]{}, ErrInvalidParams
	}
	return Binomial[T]{p: p, n: n}, nil
}

// P returns the success probability.
func (b Binomial[T]) P() T { return b.p }

// N returns the trial count.
func (b Binomial[T]) N() uint64 { return b.n }

// Min returns the lower support bound, 0.
func (b Binomial[T]) Min() T { return 0 }

// Max returns the upper support bound, n.
func (b Binomial[T]) Max() T { return T(b.n) }

// Mean returns np.
func (b Binomial[T]) Mean() (T, error) {
	return T(b.n) * b.p, nil
}

// Variance returns np(1−p).
func (b Binomial[T]) Variance() (T, error) {
	return T(b.n) * b.p * (1 - b.p), nil
}

// StdDev returns √(np(1−p)).
func (b Binomial[T]) StdDev() (T, error) {
	v, err := b.Variance()
	if err != nil {
		return 0, err
	}
	return numeric.Sqrt(v), nil
}

// Entropy returns the ½·ln(2πe·np(1−p)) large-n approximation. The
// point masses at p = 0 and p = 1 carry zero entropy.
func (b Binomial[T]) Entropy() (T, error) {
	if b.p == 0 || b.p == 1 {
		return 0, nil
	}
	v := T(b.n) * b.p * (1 - b.p)
	return (numeric.Ln2Pi[T]() + 1 + numeric.Ln(v)) / 2, nil
}

// Skewness returns (1−2p)/√(np(1−p)); undefined for the point masses
// p = 0 and p = 1, where the variance vanishes.
func (b Binomial[T]) Skewness() (T, error) {
	v := T(b.n) * b.p * (1 - b.p)
	if v == 0 {
		return 0, ErrUndefined
	}
	return (1 - 2*b.p) / numeric.Sqrt(v), nil
}

// Median returns ⌊np⌋.
func (b Binomial[T]) Median() (T, error) {
	return numeric.Floor(T(b.n) * b.p), nil
}

// Mode returns ⌊(n+1)p⌋, clamped to the support edges for the point
// masses.
func (b Binomial[T]) Mode() (T, error) {
	switch b.p {
	case 0:
		return 0, nil
	case 1:
		return T(b.n), nil
	default:
		return numeric.Floor(T(b.n+1) * b.p), nil
	}
}

// PMF evaluates C(n,k)·p^k·(1−p)^(n−k). Counts above n are outside
// the support.
func (b Binomial[T]) PMF(k uint64) (T, error) {
	if k > b.n {
		return 0, ErrDomain
	}
	switch b.p {
	case 0:
		if k == 0 {
			return 1, nil
		}
		return 0, nil
	case 1:
		if k == b.n {
			return 1, nil
		}
		return 0, nil
	}
	lp, err := b.LnPMF(k)
	if err != nil {
		return 0, err
	}
	return numeric.Exp(lp), nil
}

// LnPMF evaluates ln C(n,k) + k·ln p + (n−k)·ln(1−p).
func (b Binomial[T]) LnPMF(k uint64) (T, error) {
	if k > b.n {
		return 0, ErrDomain
	}
	switch b.p {
	case 0:
		if k == 0 {
			return 0, nil
		}
		return numeric.Inf[T](-1), nil
	case 1:
		if k == b.n {
			return 0, nil
		}
		return numeric.Inf[T](-1), nil
	}
	lc, err := specfn.LnChoose[T](b.n, k)
	if err != nil {
		return 0, err
	}
	return lc + T(k)*numeric.Ln(b.p) + T(b.n-k)*numeric.Log1p(-b.p), nil
}

// CDF evaluates P(X ≤ k) = I_{1−p}(n−k, k+1). Counts at or above n
// saturate at 1.
func (b Binomial[T]) CDF(k uint64) (T, error) {
	if k >= b.n {
		return 1, nil
	}
	if b.p == 0 {
		return 1, nil
	}
	if b.p == 1 {
		return 0, nil
	}
	return specfn.RegIncBeta(T(b.n-k), T(k+1), 1-b.p)
}

// Sample draws one variate by running the n trials directly. A nil
// src uses the fixed-seed default stream.
func (b Binomial[T]) Sample(src Source) uint64 {
	src = orDefault(src)
	p := float64(b.p)
	var hits uint64
	for i := uint64(0); i < b.n; i++ {
		if src.Float64() < p {
			hits++
		}
	}
	return hits
}
