// Package numeric - per-type mathematical constants.
//
// Each accessor returns the constant correctly rounded for the
// concrete float type T: the untyped constant literal below carries
// more digits than a float64 mantissa, and Go's constant conversion
// rounds it once, directly to T. A generic caller therefore obtains
// "the π of its own type" without branching on type identity.
package numeric

// Untyped high-precision literals; conversion to T performs the single
// correct rounding for that width.
const (
	pi         = 3.14159265358979323846264338327950288
	e          = 2.71828182845904523536028747135266250
	sqrt2      = 1.41421356237309504880168872420969808
	sqrt2Pi    = 2.50662827463100050241576528481104525
	ln2        = 0.69314718055994530941723212145817657
	ln2Pi      = 1.83787706640934548356065947281123527
	lnSqrt2Pi  = 0.91893853320467274178032973640561764
	eulerGamma = 0.57721566490153286060651209008240243
)

// Pi returns π rounded to T.
func Pi[T Float]() T { return T(pi) }

// E returns Euler's number rounded to T.
func E[T Float]() T { return T(e) }

// Sqrt2 returns √2 rounded to T.
func Sqrt2[T Float]() T { return T(sqrt2) }

// Sqrt2Pi returns √(2π) rounded to T.
func Sqrt2Pi[T Float]() T { return T(sqrt2Pi) }

// Ln2 returns ln(2) rounded to T.
func Ln2[T Float]() T { return T(ln2) }

// Ln2Pi returns ln(2π) rounded to T.
func Ln2Pi[T Float]() T { return T(ln2Pi) }

// LnSqrt2Pi returns ln(√(2π)) rounded to T.
func LnSqrt2Pi[T Float]() T { return T(lnSqrt2Pi) }

// EulerGamma returns the Euler–Mascheroni constant γ rounded to T.
func EulerGamma[T Float]() T { return T(eulerGamma) }

// Eps returns the machine epsilon of T: the distance from 1 to the
// next larger representable value. It is derived from T's own rounding
// behavior, so defined types over float32/float64 get the epsilon of
// their underlying width.
//
// Complexity: O(mantissa bits), i.e. at most 53 halvings.
func Eps[T Float]() T {
	one := T(1)
	eps := one
	for one+eps/2 != one {
		eps /= 2
	}
	return eps
}

// SmallestPositive returns the smallest positive (subnormal) value of
// T, derived by halving until the next halving underflows to zero.
// Continued-fraction evaluators use it to floor near-zero denominators.
func SmallestPositive[T Float]() T {
	tiny := T(1)
	for tiny/2 > 0 {
		tiny /= 2
	}
	return tiny
}
