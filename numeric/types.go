// Package numeric - generic numeric constraints shared across statrs.
package numeric

// Float is the constraint satisfied by both IEEE-754 widths.
// Every transcendental algorithm in statrs is written once against
// this constraint; tolerances and constants resolve per concrete type.
type Float interface {
	~float32 | ~float64
}

// Signed is the constraint satisfied by the built-in signed integer
// widths. Used for counts that may legitimately go negative during
// intermediate arithmetic.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint satisfied by the built-in unsigned
// integer widths. Distribution trial counts and support indices are
// Unsigned so invalid negatives are unrepresentable.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// Real is any numeric type statrs can aggregate: every Real value
// converts to the canonical float64 representation via ToFloat64.
type Real interface {
	Integer | Float
}
