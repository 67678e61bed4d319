package stats

import "errors"

var (
	// ErrEmptyInput indicates a statistic was requested over an empty
	// slice; every aggregate here is undefined on zero observations.
	ErrEmptyInput = errors.New("stats: input slice must be non-empty")

	// ErrNonFiniteInput indicates the input contains NaN or ±Inf,
	// which makes every aggregate undefined. The error is returned
	// instead of a NaN result so corrupt data cannot flow silently
	// downstream.
	ErrNonFiniteInput = errors.New("stats: input contains non-finite value")

	// ErrBadQuantile indicates a quantile level outside [0,1] (or a
	// percentile outside [0,100]).
	ErrBadQuantile = errors.New("stats: quantile level outside valid range")

	// ErrBadOrder indicates an order-statistic index outside 1..n.
	ErrBadOrder = errors.New("stats: order statistic index out of range")
)
