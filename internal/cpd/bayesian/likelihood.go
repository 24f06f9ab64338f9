package bayesian

import (
	"fmt"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// Likelihood maintains one set of sufficient statistics per live run length
// hypothesis and derives predictive densities from them. Statistics update
// in closed form; raw history is never replayed.
type Likelihood interface {
	// Learn estimates prior parameters from a learning sample. It must be
	// called before Predictive or Update.
	Learn(sample []float64)

	// Predictive returns the predictive density of the observation under
	// every live hypothesis, oldest prior first. The returned slice has one
	// entry per hypothesis and is aligned with the engine's posterior.
	Predictive(value float64) []float64

	// Update advances the statistics of all surviving hypotheses with the
	// observation and seeds the newly born run-length-0 hypothesis from the
	// learned prior.
	Update(value float64)

	// Prune discards all hypotheses except those at the given ascending
	// positions, keeping the statistics aligned with a pruned posterior.
	Prune(keep []int)

	// Reset clears all learned parameters and statistics.
	Reset()
}

var likelihoodRegistry = make(map[string]func() Likelihood)

// RegisterLikelihood adds a likelihood constructor to the registry.
func RegisterLikelihood(name string, ctor func() Likelihood) {
	likelihoodRegistry[name] = ctor
}

// NewLikelihood creates a fresh likelihood by registered name.
func NewLikelihood(name string) (Likelihood, error) {
	if ctor, ok := likelihoodRegistry[name]; ok {
		return ctor(), nil
	}
	return nil, cpd.NewConfigurationError("likelihood", fmt.Sprintf("unknown likelihood: %s", name))
}

// ListLikelihoods returns the names of all registered likelihoods.
func ListLikelihoods() []string {
	names := make([]string, 0, len(likelihoodRegistry))
	for name := range likelihoodRegistry {
		names = append(names, name)
	}
	return names
}
