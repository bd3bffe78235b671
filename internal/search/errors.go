package search

import "errors"

var (
	// ErrNoNumbers is returned when the candidate pool is empty.
	ErrNoNumbers = errors.New("number pool must contain at least one value")
	// ErrInvalidTarget is returned when the target is zero, NaN, or infinite.
	ErrInvalidTarget = errors.New("target must be a finite non-zero number")
	// ErrNoValidDivisor is returned when every candidate number is zero, leaving no triple with a usable divisor.
	ErrNoValidDivisor = errors.New("no valid divisor in dataset: all candidate numbers are zero")
)
