// Package dataset loads the fixed-layout tabular input and transforms it
// into the (id, target, numbers) tuples consumed by the analyzer. The
// analyzer itself never depends on the concrete input shape.
package dataset

// Dataset is one group of the input: a target value and the pool of numbers
// available to approximate it.
type Dataset struct {
	ID      string
	Target  float64
	Numbers []float64
}
