package bayesian

import (
	"fmt"
	"math"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// Batch is the offline variant of the Bayesian engine. It drives the same
// four strategies over a materialized window, restarting learning after each
// located change point until the window is exhausted.
type Batch struct {
	hazard     Hazard
	likelihood Likelihood
	detector   Detector
	localizer  Localizer

	learningSteps int
}

// NewBatch creates a batch Bayesian change point detection algorithm.
func NewBatch(hazard Hazard, likelihood Likelihood, detector Detector, localizer Localizer, learningSteps int) (*Batch, error) {
	if learningSteps <= 0 {
		return nil, cpd.NewConfigurationError("learning steps", fmt.Sprintf("must be positive, got %d", learningSteps))
	}
	return &Batch{
		hazard:        hazard,
		likelihood:    likelihood,
		detector:      detector,
		localizer:     localizer,
		learningSteps: learningSteps,
	}, nil
}

// Detect counts change points in the window.
func (b *Batch) Detect(window []float64) (int, error) {
	changePoints, err := b.Localize(window)
	if err != nil {
		return 0, err
	}
	return len(changePoints), nil
}

// Localize returns window-relative change point indices in ascending order.
// After each located change point the scan restarts from it, so one run
// finds every regime boundary in the window.
func (b *Batch) Localize(window []float64) ([]int, error) {
	var changePoints []int

	start := 0
	for start+b.learningSteps < len(window) {
		segment := window[start:]
		location, found, err := b.scanSegment(segment)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		absolute := start + location
		changePoints = append(changePoints, absolute)
		if absolute <= start {
			// Guard against a localization that does not advance the scan.
			start++
		} else {
			start = absolute
		}
	}

	b.likelihood.Reset()
	b.detector.Reset()
	return changePoints, nil
}

// scanSegment learns priors on the segment's head, runs the posterior
// recursion over the rest, and returns the segment-relative location of the
// first detected change point.
func (b *Batch) scanSegment(segment []float64) (int, bool, error) {
	b.likelihood.Reset()
	b.detector.Reset()
	b.likelihood.Learn(segment[:b.learningSteps])

	posterior := []float64{1.0}
	runLengths := []int{0}

	for i := b.learningSteps; i < len(segment); i++ {
		value := segment[i]
		predictive := b.likelihood.Predictive(value)

		probs := make([]float64, len(posterior)+1)
		lengths := make([]int, len(runLengths)+1)
		var resetMass, sum float64
		for j, p := range posterior {
			hazard := b.hazard.Probability(runLengths[j])
			joint := p * predictive[j]
			probs[j+1] = joint * (1.0 - hazard)
			resetMass += joint * hazard
			lengths[j+1] = runLengths[j] + 1
		}
		probs[0] = resetMass
		lengths[0] = 0

		for _, p := range probs {
			sum += p
		}
		if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
			return 0, false, &cpd.NumericDegeneracyError{Time: i + 1}
		}
		for j := range probs {
			probs[j] /= sum
		}

		posterior = probs
		runLengths = lengths
		b.likelihood.Update(value)

		if b.detector.Detect(posterior) {
			runLength := b.localizer.Locate(posterior, runLengths)
			return i + 1 - runLength, true, nil
		}
	}

	return 0, false, nil
}
