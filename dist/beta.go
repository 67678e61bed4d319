package dist

import (
	"github.com/EgorDm/statrs/numeric"
	"github.com/EgorDm/statrs/specfn"
)

// Beta is the beta distribution on [0, 1] with shape parameters
// (α, β), conventionally written Beta(α, β).
type Beta[T numeric.Float] struct {
	shapeA T
	shapeB T
}

// NewBeta constructs Beta(shapeA, shapeB). Both shapes must be
// positive, finite and non-NaN.
func NewBeta[T numeric.Float](shapeA, shapeB T) (Beta[T], error) {
	if numeric.IsNaN(shapeA) || numeric.IsNaN(shapeB) ||
		shapeA <= 0 || shapeB <= 0 ||
		numeric.IsInf(shapeA, 1) || numeric.IsInf(shapeB, 1) {
		return Beta[T]{}, ErrInvalidParams
	}
	return Beta[T]{shapeA: shapeA, shapeB: shapeB}, nil
}

// ShapeA returns α.
func (b Beta[T]) ShapeA() T { return b.shapeA }

// ShapeB returns β.
func (b Beta[T]) ShapeB() T { return b.shapeB }

// Min returns the lower support bound, 0.
func (b Beta[T]) Min() T { return 0 }

// Max returns the upper support bound, 1.
func (b Beta[T]) Max() T { return 1 }

// Mean returns α/(α+β).
func (b Beta[T]) Mean() (T, error) {
	return b.shapeA / (b.shapeA + b.shapeB), nil
}

// Variance returns αβ / ((α+β)²(α+β+1)).
func (b Beta[T]) Variance() (T, error) {
	s := b.shapeA + b.shapeB
	return b.shapeA * b.shapeB / (s * s * (s + 1)), nil
}

// StdDev returns the square root of Variance.
func (b Beta[T]) StdDev() (T, error) {
	v, err := b.Variance()
	if err != nil {
		return 0, err
	}
	return numeric.Sqrt(v), nil
}

// Entropy returns
// lnB(α,β) − (α−1)ψ(α) − (β−1)ψ(β) + (α+β−2)ψ(α+β).
func (b Beta[T]) Entropy() (T, error) {
	lb, err := specfn.LnBeta(b.shapeA, b.shapeB)
	if err != nil {
		return 0, err
	}
	da, err := specfn.Digamma(b.shapeA)
	if err != nil {
		return 0, err
	}
	db, err := specfn.Digamma(b.shapeB)
	if err != nil {
		return 0, err
	}
	ds, err := specfn.Digamma(b.shapeA + b.shapeB)
	if err != nil {
		return 0, err
	}
	return lb - (b.shapeA-1)*da - (b.shapeB-1)*db + (b.shapeA+b.shapeB-2)*ds, nil
}

// Skewness returns 2(β−α)√(α+β+1) / ((α+β+2)√(αβ)).
func (b Beta[T]) Skewness() (T, error) {
	s := b.shapeA + b.shapeB
	return 2 * (b.shapeB - b.shapeA) * numeric.Sqrt(s+1) /
		((s + 2) * numeric.Sqrt(b.shapeA*b.shapeB)), nil
}

// Mode returns (α−1)/(α+β−2). It requires α > 1 and β > 1; otherwise
// the density peaks at a support edge (or both) and the mode is
// undefined.
func (b Beta[T]) Mode() (T, error) {
	if b.shapeA <= 1 || b.shapeB <= 1 {
		return 0, ErrUndefined
	}
	return (b.shapeA - 1) / (b.shapeA + b.shapeB - 2), nil
}

// PDF evaluates x^(α−1)·(1−x)^(β−1) / B(α,β) on [0, 1].
func (b Beta[T]) PDF(x T) (T, error) {
	if numeric.IsNaN(x) || x < 0 || x > 1 {
		return 0, ErrDomain
	}
	if b.shapeA == 1 && b.shapeB == 1 {
		return 1, nil
	}
	// Support edges: the power terms switch between 0, a finite
	// limit and a pole depending on the shapes.
	if x == 0 {
		switch {
		case b.shapeA < 1:
			return numeric.Inf[T](1), nil
		case b.shapeA == 1:
			return b.shapeB, nil
		default:
			return 0, nil
		}
	}
	if x == 1 {
		switch {
		case b.shapeB < 1:
			return numeric.Inf[T](1), nil
		case b.shapeB == 1:
			return b.shapeA, nil
		default:
			return 0, nil
		}
	}
	lb, err := specfn.LnBeta(b.shapeA, b.shapeB)
	if err != nil {
		return 0, err
	}
	return numeric.Exp((b.shapeA-1)*numeric.Ln(x) + (b.shapeB-1)*numeric.Ln(1-x) - lb), nil
}

// LnPDF evaluates (α−1)ln x + (β−1)ln(1−x) − lnB(α,β); preferred for
// large shapes where the density itself underflows.
func (b Beta[T]) LnPDF(x T) (T, error) {
	if numeric.IsNaN(x) || x < 0 || x > 1 {
		return 0, ErrDomain
	}
	if x == 0 || x == 1 {
		p, err := b.PDF(x)
		if err != nil {
			return 0, err
		}
		return numeric.Ln(p), nil
	}
	lb, err := specfn.LnBeta(b.shapeA, b.shapeB)
	if err != nil {
		return 0, err
	}
	return (b.shapeA-1)*numeric.Ln(x) + (b.shapeB-1)*numeric.Ln(1-x) - lb, nil
}

// CDF evaluates the regularized incomplete beta function I_x(α, β).
func (b Beta[T]) CDF(x T) (T, error) {
	if numeric.IsNaN(x) || x < 0 || x > 1 {
		return 0, ErrDomain
	}
	return specfn.RegIncBeta(b.shapeA, b.shapeB, x)
}

// Sample draws one variate as X/(X+Y) for independent gamma draws
// X ~ Gamma(α, 1) and Y ~ Gamma(β, 1). A nil src uses the fixed-seed
// default stream.
func (b Beta[T]) Sample(src Source) T {
	src = orDefault(src)
	x := gammaSample(src, b.shapeA, T(1))
	y := gammaSample(src, b.shapeB, T(1))
	return x / (x + y)
}
