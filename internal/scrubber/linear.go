package scrubber

import (
	"fmt"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
	"github.com/shiftwatch/shiftwatch/internal/source"
)

// LinearScrubber divides a stream into fixed-length windows moved through
// the data by a fraction of their length, so consecutive windows overlap and
// a change point near a window edge is still seen in full by the next one.
type LinearScrubber struct {
	provider     source.Provider
	windowLength int
	shift        int

	window      []float64
	windowStart int
	started     bool
	exhausted   bool
}

// NewLinearScrubber creates a linear scrubber over the provider. The window
// length must be positive; shiftFactor is the fraction of the window length
// the window advances by each step, in (0, 1].
func NewLinearScrubber(provider source.Provider, windowLength int, shiftFactor float64) (*LinearScrubber, error) {
	if windowLength <= 0 {
		return nil, cpd.NewConfigurationError("window length", fmt.Sprintf("must be positive, got %d", windowLength))
	}
	if shiftFactor <= 0 || shiftFactor > 1 {
		return nil, cpd.NewConfigurationError("shift factor", fmt.Sprintf("must be in (0, 1], got %v", shiftFactor))
	}
	shift := int(float64(windowLength) * shiftFactor)
	if shift < 1 {
		shift = 1
	}
	return &LinearScrubber{
		provider:     provider,
		windowLength: windowLength,
		shift:        shift,
	}, nil
}

// Next returns the next data window, advancing by the configured shift.
func (s *LinearScrubber) Next() (Window, bool) {
	if s.exhausted {
		return Window{}, false
	}

	if !s.started {
		s.started = true
		s.window = s.pull(s.windowLength)
		if len(s.window) == 0 {
			s.exhausted = true
			return Window{}, false
		}
		return s.currentWindow(), true
	}

	next := s.pull(s.shift)
	if len(next) == 0 {
		s.exhausted = true
		return Window{}, false
	}

	drop := s.shift
	if drop > len(s.window) {
		drop = len(s.window)
	}
	s.window = append(s.window[drop:], next...)
	s.windowStart += s.shift
	return s.currentWindow(), true
}

func (s *LinearScrubber) pull(n int) []float64 {
	values := make([]float64, 0, n)
	for len(values) < n {
		v, ok := s.provider.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	return values
}

func (s *LinearScrubber) currentWindow() Window {
	values := make([]float64, len(s.window))
	copy(values, s.window)
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = s.windowStart + i
	}
	return Window{Values: values, Indices: indices}
}
