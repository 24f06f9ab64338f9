// Package cpd defines the contracts shared by all change point detection
// algorithms: the batch and online algorithm interfaces and the error
// taxonomy used across the detection core.
package cpd

// Algorithm is the interface for batch change point detection algorithms.
// Both methods must be deterministic given identical input and configuration.
type Algorithm interface {
	// Detect counts change points in the given window.
	Detect(window []float64) (int, error)

	// Localize returns the window-relative indices of change points found
	// in the given window, in ascending order.
	Localize(window []float64) ([]int, error)
}

// OnlineAlgorithm is the interface for online change point detection
// algorithms processing one observation at a time, in strict arrival order.
type OnlineAlgorithm interface {
	// Detect processes a new observation and reports whether a change
	// point was detected after it.
	Detect(value float64) (bool, error)

	// Localize processes a new observation and returns the absolute
	// location of a change point if one was localized after it.
	Localize(value float64) (int, bool, error)

	// Reset restores the algorithm to its pristine state so it can be
	// reused for an independent run.
	Reset()
}
