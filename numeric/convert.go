// Package numeric - conversions to and from the canonical 64-bit forms.
//
// Overflow policy: conversions that cannot represent the input in the
// target type return ErrOverflow. Nothing wraps silently; distribution
// parameter validation depends on that guarantee.
package numeric

import (
	"errors"
	"math"
)

// ErrOverflow indicates a value is not representable in the requested
// target type.
var ErrOverflow = errors.New("numeric: value not representable in target type")

// ToFloat64 converts any Real value to the canonical double-precision
// form. The conversion is exact for every float32, for every signed or
// unsigned value with at most 53 significant bits, and correctly
// rounded otherwise.
func ToFloat64[T Real](x T) float64 { return float64(x) }

// FromFloat64 rounds the canonical double-precision value to T.
func FromFloat64[T Float](x float64) T { return T(x) }

// ToUint64 widens an Unsigned value to the canonical uint64. Always
// lossless.
func ToUint64[T Unsigned](x T) uint64 { return uint64(x) }

// ToInt64 widens a Signed value to the canonical int64. Always
// lossless.
func ToInt64[T Signed](x T) int64 { return int64(x) }

// Int64FromUint64 converts u to int64, returning ErrOverflow when u
// exceeds math.MaxInt64.
func Int64FromUint64(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(u), nil
}

// Uint64FromInt64 converts i to uint64, returning ErrOverflow for
// negative inputs.
func Uint64FromInt64(i int64) (uint64, error) {
	if i < 0 {
		return 0, ErrOverflow
	}
	return uint64(i), nil
}

// Uint64FromFloat converts x to uint64, returning ErrOverflow unless x
// is a finite, non-negative integer value below 2^64.
func Uint64FromFloat[T Float](x T) (uint64, error) {
	f := float64(x)
	if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 || f != math.Trunc(f) {
		return 0, ErrOverflow
	}
	return uint64(f), nil
}
