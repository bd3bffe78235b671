package stats

import "errors"

var (
	// ErrNoData is returned when an aggregate is requested over an empty error set.
	ErrNoData = errors.New("error set must contain at least one value")
	// ErrInsufficientSample is returned when fewer than two values are available, leaving the sample variance undefined.
	ErrInsufficientSample = errors.New("insufficient sample size: at least two values are required")
)
