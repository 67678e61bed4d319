package dist

import "errors"

var (
	// ErrInvalidParams indicates a constructor received parameters
	// outside their valid range (non-positive shape or rate, p outside
	// [0,1], NaN anywhere). Validation happens exactly once, here.
	ErrInvalidParams = errors.New("dist: distribution parameters outside valid range")

	// ErrDomain indicates an evaluation argument outside the
	// distribution's declared support.
	ErrDomain = errors.New("dist: argument outside distribution support")

	// ErrUndefined indicates a statistic that is not mathematically
	// defined for the current parameters (e.g. the mode of a Beta with
	// a shape below 1, or the skewness of a degenerate Binomial).
	ErrUndefined = errors.New("dist: statistic undefined for current parameters")
)
