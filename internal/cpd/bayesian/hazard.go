// Package bayesian implements online Bayesian change point detection:
// a run length posterior maintained over pluggable hazard, likelihood,
// detector and localizer strategies.
package bayesian

import (
	"fmt"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// Hazard is the prior probability that a change point occurs given the
// current run length. Implementations are pure and stateless.
type Hazard interface {
	// Probability returns the changepoint probability for a run length.
	// The result is always in (0, 1].
	Probability(runLength int) float64
}

// ConstantHazard models a memoryless change process: every run length has
// the same changepoint probability.
type ConstantHazard struct {
	rate float64
}

// NewConstantHazard creates a constant hazard with the given changepoint
// probability. The rate must be in (0, 1].
func NewConstantHazard(rate float64) (*ConstantHazard, error) {
	if rate <= 0 || rate > 1 {
		return nil, cpd.NewConfigurationError("hazard rate", fmt.Sprintf("must be in (0, 1], got %v", rate))
	}
	return &ConstantHazard{rate: rate}, nil
}

// Probability returns the constant changepoint probability.
func (h *ConstantHazard) Probability(runLength int) float64 {
	return h.rate
}
