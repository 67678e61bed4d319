package dist

import "github.com/EgorDm/statrs/numeric"

// ChiSquared is the chi-squared distribution with k degrees of
// freedom, i.e. Gamma(k/2, ½); it embeds that gamma and keeps the
// chi-squared closed forms where they are simpler.
type ChiSquared[T numeric.Float] struct {
	Gamma[T]
	freedom T
}

// NewChiSquared constructs χ²(freedom) for a positive, finite degree
// of freedom (fractional values are allowed).
func NewChiSquared[T numeric.Float](freedom T) (ChiSquared[T], error) {
	if numeric.IsNaN(freedom) || freedom <= 0 || numeric.IsInf(freedom, 1) {
		return ChiSquared[T]{}, ErrInvalidParams
	}
	g, err := NewGamma(freedom/2, T(0.5))
	if err != nil {
		return ChiSquared[T]{}, err
	}
	return ChiSquared[T]{Gamma: g, freedom: freedom}, nil
}

// Freedom returns k.
func (c ChiSquared[T]) Freedom() T { return c.freedom }

// Mean returns k.
func (c ChiSquared[T]) Mean() (T, error) { return c.freedom, nil }

// Variance returns 2k.
func (c ChiSquared[T]) Variance() (T, error) { return 2 * c.freedom, nil }

// StdDev returns √(2k).
func (c ChiSquared[T]) StdDev() (T, error) {
	return numeric.Sqrt(2 * c.freedom), nil
}

// Skewness returns √(8/k).
func (c ChiSquared[T]) Skewness() (T, error) {
	return numeric.Sqrt(8 / c.freedom), nil
}

// Median returns the Wilson–Hilferty approximation k·(1 − 2/(9k))³.
func (c ChiSquared[T]) Median() (T, error) {
	t := 1 - 2/(9*c.freedom)
	return c.freedom * t * t * t, nil
}

// Mode returns max(k−2, 0).
func (c ChiSquared[T]) Mode() (T, error) {
	if c.freedom < 2 {
		return 0, nil
	}
	return c.freedom - 2, nil
}
