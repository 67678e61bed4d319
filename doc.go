// Package statrs is a statistical computing core for Go: numerically
// stable special functions, summary statistics and a generic family of
// probability distributions, all sharing one algorithm body across
// float32 and float64.
//
// 🚀 What is statrs?
//
//	A pure-Go library that brings together:
//		• Special functions: Γ / ln Γ, ψ (digamma) and its inverse,
//		  the beta family, regularized incomplete beta & gamma,
//		  factorials and binomial coefficients
//		• Statistics: mean, variance, standard deviation, min/max,
//		  order statistics, quantiles and ranks over any numeric slice
//		• Distributions: Bernoulli, Binomial, Beta, Chi, Chi-squared,
//		  Gamma, Normal and Poisson with validated construction,
//		  capability interfaces and injected-source sampling
//
// ✨ Why choose statrs?
//
//   - One generic implementation per algorithm – no per-width copies
//   - Explicit errors – domain violations and non-convergence are
//     returned, never smuggled out as NaN
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic sampling – the uniform source is always injected,
//     so every draw is reproducible under a seeded *rand.Rand
//
// Everything is organized under five subpackages:
//
//	numeric/ — Float/Signed/Unsigned constraints, per-type constants
//	specfn/  — the special-function layer (gamma, beta, digamma, …)
//	stats/   — Statistics & OrderStatistics over numeric slices
//	dist/    — the distribution hierarchy and concrete distributions
//	prec/    — floating-point comparison helpers used by the tests
//
// Quick taste:
//
//	b, _ := dist.NewBeta(2.0, 5.0)
//	p, _ := b.PDF(0.3)     // closed form via specfn.Beta
//	c, _ := b.CDF(0.3)     // regularized incomplete beta
//
//	go get github.com/EgorDm/statrs
package statrs
