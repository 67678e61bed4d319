package prec

import "github.com/EgorDm/statrs/numeric"

// AlmostEq reports whether |a−b| < eps. Equal infinities compare
// equal; NaN compares equal to nothing.
func AlmostEq[T numeric.Float](a, b, eps T) bool {
	if numeric.IsNaN(a) || numeric.IsNaN(b) {
		return false
	}
	if numeric.IsInf(a, 0) || numeric.IsInf(b, 0) {
		return a == b
	}
	return numeric.Abs(a-b) < eps
}

// RelEq reports whether a and b agree to within relative tolerance
// tol. For values whose magnitude is below tol the comparison falls
// back to the absolute form, so results near zero do not demand
// impossible relative agreement.
func RelEq[T numeric.Float](a, b, tol T) bool {
	if numeric.IsNaN(a) || numeric.IsNaN(b) {
		return false
	}
	if numeric.IsInf(a, 0) || numeric.IsInf(b, 0) {
		return a == b
	}
	scale := numeric.Abs(a)
	if bb := numeric.Abs(b); bb > scale {
		scale = bb
	}
	if scale < tol {
		return numeric.Abs(a-b) < tol
	}
	return numeric.Abs(a-b) < tol*scale
}
