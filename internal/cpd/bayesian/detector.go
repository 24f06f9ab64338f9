package bayesian

import (
	"fmt"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// Detector decides, from the run length posterior, whether a change point
// has just occurred. It is invoked once per observation, after the posterior
// update for that observation.
type Detector interface {
	// Detect reports whether the posterior indicates a change point.
	Detect(posterior []float64) bool

	// Reset clears any accumulated detector state.
	Reset()
}

// ThresholdDetector signals a change point when the probability of the
// maximal run length drops below a configured threshold: sustained runs keep
// most of the posterior mass on the longest hypothesis, and a change drains
// it.
type ThresholdDetector struct {
	threshold float64
}

// NewThresholdDetector creates a threshold detector. The threshold must be
// in [0, 1].
func NewThresholdDetector(threshold float64) (*ThresholdDetector, error) {
	if threshold < 0 || threshold > 1 {
		return nil, cpd.NewConfigurationError("detector threshold", fmt.Sprintf("must be in [0, 1], got %v", threshold))
	}
	return &ThresholdDetector{threshold: threshold}, nil
}

// Detect reports whether the maximal run length's probability dropped below
// the threshold.
func (d *ThresholdDetector) Detect(posterior []float64) bool {
	return len(posterior) > 0 && posterior[len(posterior)-1] < d.threshold
}

// Reset is a no-op: the detector carries no state beyond its threshold.
func (d *ThresholdDetector) Reset() {}
