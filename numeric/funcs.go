// Package numeric - generic wrappers over the math primitives.
//
// Each wrapper evaluates in float64, the canonical double-precision
// form, and rounds once back to T. For float64 the conversion is the
// identity; for float32 the result is the correctly rounded double
// result, which is at least as accurate as a native single-precision
// evaluation would be.
package numeric

import "math"

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns √x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Ln returns the natural logarithm of x.
func Ln[T Float](x T) T { return T(math.Log(float64(x))) }

// Log1p returns ln(1+x), accurate for x near zero.
func Log1p[T Float](x T) T { return T(math.Log1p(float64(x))) }

// Exp returns e**x.
func Exp[T Float](x T) T { return T(math.Exp(float64(x))) }

// Pow returns x**y.
func Pow[T Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Sin returns the sine of x (radians).
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Tan returns the tangent of x (radians).
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Erf returns the error function of x.
func Erf[T Float](x T) T { return T(math.Erf(float64(x))) }

// Floor returns the greatest integer value ≤ x.
func Floor[T Float](x T) T { return T(math.Floor(float64(x))) }

// Round returns the nearest integer value, half away from zero.
func Round[T Float](x T) T { return T(math.Round(float64(x))) }

// Trunc returns the integer part of x.
func Trunc[T Float](x T) T { return T(math.Trunc(float64(x))) }

// Inf returns +∞ for sign ≥ 0, −∞ for sign < 0, typed as T.
func Inf[T Float](sign int) T { return T(math.Inf(sign)) }

// NaN returns an IEEE-754 quiet NaN typed as T.
func NaN[T Float]() T { return T(math.NaN()) }

// IsNaN reports whether x is NaN.
func IsNaN[T Float](x T) bool { return x != x }

// IsInf reports whether x is an infinity of the given sign
// (sign > 0 → +∞ only, sign < 0 → −∞ only, sign == 0 → either).
func IsInf[T Float](x T, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !IsInf(x, 0)
}
