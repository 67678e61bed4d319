// Package dist implements probability distributions on top of the
// specfn special-function layer: validated parameter records,
// capability interfaces for the moments that are mathematically
// defined, and sampling from an injected uniform source.
//
// 🚀 What is dist?
//
//	Concrete distributions, each generic over numeric.Float:
//		• Discrete   — Bernoulli, Binomial, Poisson
//		• Continuous — Beta, Chi, ChiSquared, Gamma, Normal
//
//	and the capability interfaces they advertise:
//		• Min/Max            — support bounds
//		• Mean, Variance, Skewness, Entropy, Median, Mode
//		• Continuous/Discrete — PDF/PMF, LnPDF/LnPMF, CDF, Sample
//
// ✨ Contracts:
//
//   - Construction validates once: a New* constructor rejects invalid
//     parameters with ErrInvalidParams, and a successfully constructed
//     value is evaluable over its entire support with no further
//     validation. Records are immutable after construction.
//   - A distribution implements only the capability interfaces that
//     are mathematically defined for it; a statistic that exists for
//     the family but not the current parameters (e.g. the mode of
//     Beta(0.5, 0.5)) returns ErrUndefined. There are no sentinel
//     NaN returns.
//   - Evaluation outside the declared support is ErrDomain.
//   - Sampling draws from an injected Source (satisfied by
//     *math/rand.Rand) and never retains it; a nil Source falls back
//     to a fixed-seed deterministic stream, so accidental omission
//     stays reproducible.
//
// ⚙️ Usage:
//
//	import "github.com/EgorDm/statrs/dist"
//
//	b, err := dist.NewBinomial[float64](10, 0.5)
//	p, _ := b.PMF(5)               // 252/1024
//	src := dist.NewSource(42)
//	k := b.Sample(src)             // reproducible draw
//
// All values are safe for concurrent use; only the caller-owned
// Source carries mutable state.
package dist
