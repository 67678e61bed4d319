// Package specfn implements the special mathematical functions that
// underpin the statrs distributions: the gamma family, the beta
// family, digamma and its inverse, factorials and binomial
// coefficients.
//
// 🚀 What is specfn?
//
//	Pure functions, each written once, generically over
//	numeric.Float:
//		• LnGamma / Gamma        — Lanczos approximation + reflection
//		• Digamma / InvDigamma   — recurrence shift + asymptotic series,
//		  Newton inversion with a trigamma derivative
//		• LnBeta / Beta          — via LnGamma
//		• RegIncBeta / IncBeta   — Lentz continued fraction with a
//		  symmetry transform for fast convergence
//		• RegIncGammaLower/Upper — series / continued-fraction split
//		• Factorial, LnFactorial, Choose, LnChoose
//
// ✨ Design:
//
//   - One algorithm body per function: the series/continued-fraction
//     selection and convergence structure are identical across
//     precisions; only tolerances and constants resolve per type
//     through numeric.Eps and the numeric constant accessors.
//   - Every iterative routine carries a hard iteration cap; exceeding
//     it yields ErrNonConvergence rather than a silently poor
//     estimate.
//   - Arguments outside a function's mathematical domain (poles of Γ,
//     x ∉ [0,1] for the incomplete beta, k > n for Choose) yield
//     ErrDomain, never NaN.
//
// ⚙️ Usage:
//
//	import "github.com/EgorDm/statrs/specfn"
//
//	lg, err := specfn.LnGamma(4.5)
//	ix, err := specfn.RegIncBeta(2.0, 3.0, 0.4)
//
// All functions are referentially transparent and safe for concurrent
// use.
package specfn
