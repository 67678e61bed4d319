package specfn

import "errors"

var (
	// ErrDomain indicates an argument outside the mathematical domain
	// of the function (a pole of Γ, x ∉ [0,1] for the incomplete beta,
	// k > n for a binomial coefficient, or a NaN input).
	ErrDomain = errors.New("specfn: argument outside function domain")

	// ErrNonConvergence indicates an iterative evaluation exhausted its
	// iteration budget before meeting its tolerance. The partial
	// estimate is withheld: a silently inaccurate special-function
	// value would corrupt every downstream statistic undetectably.
	ErrNonConvergence = errors.New("specfn: iteration budget exhausted before convergence")
)
