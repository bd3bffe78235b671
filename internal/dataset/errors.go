package dataset

import "errors"

var (
	// ErrInvalidLayout is returned when the layout values cannot describe any grid.
	ErrInvalidLayout = errors.New("layout rows, set count, and column step must be positive")
	// ErrGridTooSmall is returned when the grid has fewer rows or columns than the layout requires.
	ErrGridTooSmall = errors.New("grid is smaller than the configured layout")
	// ErrMalformedCell is returned when a target or number cell cannot be parsed as a real number.
	ErrMalformedCell = errors.New("cell does not contain a valid number")
)
