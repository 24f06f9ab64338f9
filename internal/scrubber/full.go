package scrubber

import "github.com/shiftwatch/shiftwatch/internal/source"

// FullScrubber materializes the entire stream into a single window. It is
// the windowing policy for batch algorithms that want the whole dataset at
// once.
type FullScrubber struct {
	provider source.Provider
	done     bool
}

// NewFullScrubber creates a full-dataset scrubber over the provider.
func NewFullScrubber(provider source.Provider) *FullScrubber {
	return &FullScrubber{provider: provider}
}

// Next materializes and returns the whole remaining stream, then signals
// exhaustion on every subsequent call.
func (s *FullScrubber) Next() (Window, bool) {
	if s.done {
		return Window{}, false
	}
	s.done = true

	var values []float64
	for {
		v, ok := s.provider.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return Window{}, false
	}

	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	return Window{Values: values, Indices: indices}, true
}
