package variance

import "errors"

var (
	// ErrInvalidSampleCount is returned when N < 1.
	ErrInvalidSampleCount = errors.New("variance: sample count must be >= 1")
	// ErrInvalidOrder is returned when i is outside [0, N].
	ErrInvalidOrder = errors.New("variance: order must be in [0, N]")
	// ErrUnknownMethod is returned for a Method value outside the
	// four defined constants.
	ErrUnknownMethod = errors.New("variance: unknown method")
)
