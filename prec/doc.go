// Package prec provides floating-point comparison helpers used across
// the statrs test suites and anywhere "equal up to rounding" is the
// right notion of equality.
//
// Two policies are offered:
//
//   - AlmostEq — absolute difference below a caller-chosen bound;
//     the right tool when the expected magnitude is known (table
//     driven tests against reference values).
//   - RelEq — relative difference below a bound, with the usual guard
//     for results near zero; the right tool for identities such as
//     Γ(x+1) = x·Γ(x) that must hold across many orders of magnitude.
//
// Both treat NaN as unequal to everything, including NaN, and treat
// equal infinities as equal.
package prec
