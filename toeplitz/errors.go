package toeplitz

import "errors"

// Errors returned by toeplitz solve functions.
var (
	// ErrSingularSystem is returned when n < 1 (an empty a/r pair). A
	// zero pivot during the recursion is not reported by any error.
	ErrSingularSystem = errors.New("toeplitz: system has no free variables (n < 1)")

	// ErrLengthMismatch is returned when a, r, and d are not mutually
	// consistent in length (len(a) == len(r) == len(d)-1).
	ErrLengthMismatch = errors.New("toeplitz: a, r, and d have inconsistent lengths")
)
