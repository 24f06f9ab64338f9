// Package scrubber decouples detection algorithms from raw observation
// sources, presenting data as windows under a configurable windowing policy.
// Scrubbers guarantee no reordering, no duplication and no observation loss,
// and hold no algorithm-specific state.
package scrubber

// Window is a bounded ordered slice of observations currently visible to an
// algorithm, together with the absolute stream index of each observation.
type Window struct {
	Values  []float64
	Indices []int
}

// Scrubber is a pull-based iterator over data windows. ok=false signals that
// the underlying source is exhausted.
type Scrubber interface {
	Next() (window Window, ok bool)
}
