// Package numeric defines the capability sets every generic statrs
// algorithm is bounded by, plus the per-type constants and primitive
// operations those algorithms need.
//
// 🚀 What is numeric?
//
//	Three constraints and their union:
//		• Float    — ~float32 | ~float64
//		• Signed   — ~int … ~int64
//		• Unsigned — ~uint … ~uint64
//		• Real     — any of the above
//
//	plus:
//		• correctly-rounded constants per concrete type
//		  (Pi, Sqrt2Pi, Ln2Pi, EulerGamma, machine Eps, …)
//		• generic wrappers for the math primitives (Sqrt, Ln, Exp,
//		  Pow, Sin, Tan, Floor, IsNaN, …)
//		• lossless conversions to and from the canonical 64-bit
//		  representations, with explicit overflow errors
//
// ✨ Why a separate package?
//
//	A generic special function must fetch "the π appropriate to my
//	type" and "the machine epsilon appropriate to my type" without
//	branching on type identity.  Constant conversion in Go rounds an
//	untyped constant correctly for the destination type, so a single
//	generic accessor yields the right value for float32 and float64
//	alike.  Eps is derived at call time from the type's own rounding
//	behavior rather than tabulated.
//
// ⚙️ Usage:
//
//	import "github.com/EgorDm/statrs/numeric"
//
//	func logistic[T numeric.Float](x T) T {
//		return 1 / (1 + numeric.Exp(-x))
//	}
//
// All functions are pure; the package holds no state.
package numeric
