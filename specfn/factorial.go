package specfn

import "github.com/EgorDm/statrs/numeric"

// MaxFactorialArg is the largest n for which n! is finite in float64.
// 171! overflows to +∞ in double precision; float32 callers overflow
// much earlier (35!) through the final rounding conversion.
const MaxFactorialArg = 170

// factCache holds 0!..170! exactly as the nearest float64.
var factCache = buildFactCache()

func buildFactCache() [MaxFactorialArg + 1]float64 {
	var f [MaxFactorialArg + 1]float64
	f[0] = 1
	for i := 1; i <= MaxFactorialArg; i++ {
		f[i] = f[i-1] * float64(i)
	}
	return f
}

// Factorial computes n! rounded to T. Values beyond the representable
// range of T overflow to +∞; use LnFactorial for large n.
func Factorial[T numeric.Float, U numeric.Unsigned](n U) T {
	u := numeric.ToUint64(n)
	if u > MaxFactorialArg {
		return numeric.Inf[T](1)
	}
	return T(factCache[u])
}

// LnFactorial computes ln(n!) = lnΓ(n+1). Finite for every
// representable n, unlike Factorial.
func LnFactorial[T numeric.Float, U numeric.Unsigned](n U) T {
	u := numeric.ToUint64(n)
	if u <= MaxFactorialArg {
		return numeric.Ln(T(factCache[u]))
	}
	return lnGammaPos(T(u) + 1)
}

// LnChoose computes ln C(n,k) = ln n! − ln k! − ln (n−k)!, returning
// ErrDomain when k > n.
func LnChoose[T numeric.Float, U numeric.Unsigned](n, k U) (T, error) {
	if k > n {
		return 0, ErrDomain
	}
	nn := numeric.ToUint64(n)
	kk := numeric.ToUint64(k)
	return LnFactorial[T](nn) - LnFactorial[T](kk) - LnFactorial[T](nn-kk), nil
}

// Choose computes the binomial coefficient C(n,k) = exp(ln C(n,k)),
// returning ErrDomain when k > n. Small arguments route through the
// factorial table, so e.g. C(10,5) comes out exactly 252.
func Choose[T numeric.Float, U numeric.Unsigned](n, k U) (T, error) {
	if k > n {
		return 0, ErrDomain
	}
	nn := numeric.ToUint64(n)
	kk := numeric.ToUint64(k)
	if nn <= MaxFactorialArg {
		return T(factCache[nn] / (factCache[kk] * factCache[nn-kk])), nil
	}
	lc, err := LnChoose[T](nn, kk)
	if err != nil {
		return 0, err
	}
	return numeric.Exp(lc), nil
}
