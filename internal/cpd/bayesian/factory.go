package bayesian

import (
	"github.com/shiftwatch/shiftwatch/internal/config"
)

// NewOnlineFromConfig assembles an online engine with the canonical
// strategies: constant hazard, the configured likelihood family, threshold
// detector and argmax localizer.
func NewOnlineFromConfig(cfg config.DetectionConfig) (*Online, error) {
	hazard, err := NewConstantHazard(cfg.HazardRate)
	if err != nil {
		return nil, err
	}
	likelihood, err := NewLikelihood(cfg.Likelihood)
	if err != nil {
		return nil, err
	}
	detector, err := NewThresholdDetector(cfg.Threshold)
	if err != nil {
		return nil, err
	}
	return NewOnline(hazard, likelihood, detector, NewArgmaxLocalizer(), Options{
		LearningSampleSize: cfg.LearningSampleSize,
		PruningFloor:       cfg.PruningFloor,
	})
}

// NewBatchFromConfig assembles the batch variant with the same canonical
// strategies.
func NewBatchFromConfig(cfg config.DetectionConfig) (*Batch, error) {
	hazard, err := NewConstantHazard(cfg.HazardRate)
	if err != nil {
		return nil, err
	}
	likelihood, err := NewLikelihood(cfg.Likelihood)
	if err != nil {
		return nil, err
	}
	detector, err := NewThresholdDetector(cfg.Threshold)
	if err != nil {
		return nil, err
	}
	return NewBatch(hazard, likelihood, detector, NewArgmaxLocalizer(), cfg.LearningSampleSize)
}
