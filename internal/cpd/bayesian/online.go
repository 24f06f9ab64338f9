package bayesian

import (
	"fmt"
	"math"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// Options tune the online engine around its four strategies.
type Options struct {
	// LearningSampleSize is the number of observations consumed to learn
	// prior parameters before detection is enabled. Must be positive.
	LearningSampleSize int

	// PruningFloor drops run length hypotheses whose posterior probability
	// falls below it, bounding memory and time on long runs. 0 disables
	// pruning entirely, which exactness-sensitive tests rely on.
	PruningFloor float64
}

// Online is the Bayesian online change point detection engine. It owns the
// run length posterior and sequentially applies the hazard, likelihood,
// detector and localizer strategies on each new observation.
//
// The engine is single-threaded: each observation's step runs to completion
// before the next one is accepted, and the posterior is never shared.
type Online struct {
	hazard     Hazard
	likelihood Likelihood
	detector   Detector
	localizer  Localizer
	opts       Options

	training     bool
	trainingData []float64
	history      []float64
	currentTime  int

	posterior  []float64
	runLengths []int

	wasChangePoint bool
	changePoint    int
	hasChangePoint bool
}

// NewOnline creates an online engine from its four strategies and options.
func NewOnline(hazard Hazard, likelihood Likelihood, detector Detector, localizer Localizer, opts Options) (*Online, error) {
	if opts.LearningSampleSize <= 0 {
		return nil, cpd.NewConfigurationError("learning sample size", fmt.Sprintf("must be positive, got %d", opts.LearningSampleSize))
	}
	if opts.PruningFloor < 0 || opts.PruningFloor >= 1 {
		return nil, cpd.NewConfigurationError("pruning floor", fmt.Sprintf("must be in [0, 1), got %v", opts.PruningFloor))
	}
	return &Online{
		hazard:     hazard,
		likelihood: likelihood,
		detector:   detector,
		localizer:  localizer,
		opts:       opts,
		training:   true,
	}, nil
}

// Reset restores the engine to its pristine state so it can drive an
// independent run.
func (o *Online) Reset() {
	o.training = true
	o.trainingData = nil
	o.history = nil
	o.currentTime = 0
	o.posterior = nil
	o.runLengths = nil
	o.wasChangePoint = false
	o.changePoint = 0
	o.hasChangePoint = false
	o.likelihood.Reset()
	o.detector.Reset()
}

// Detect processes one observation and reports whether a change point was
// detected after it.
func (o *Online) Detect(value float64) (bool, error) {
	if err := o.processPoint(value, false); err != nil {
		return false, err
	}
	result := o.wasChangePoint
	o.wasChangePoint = false
	return result, nil
}

// Localize processes one observation and returns the absolute location of a
// change point if one was localized after it.
func (o *Online) Localize(value float64) (int, bool, error) {
	if err := o.processPoint(value, true); err != nil {
		return 0, false, err
	}
	location, found := o.changePoint, o.hasChangePoint
	o.wasChangePoint = false
	o.changePoint = 0
	o.hasChangePoint = false
	return location, found, nil
}

// Posterior returns a copy of the current run length posterior along with
// the run length each entry corresponds to. Before Bayesian modeling starts
// the posterior is the single-point distribution {P[0]=1}.
func (o *Online) Posterior() ([]float64, []int) {
	if o.posterior == nil {
		return []float64{1.0}, []int{0}
	}
	probs := make([]float64, len(o.posterior))
	copy(probs, o.posterior)
	lengths := make([]int, len(o.runLengths))
	copy(lengths, o.runLengths)
	return probs, lengths
}

func (o *Online) processPoint(value float64, withLocalization bool) error {
	o.history = append(o.history, value)
	o.currentTime++

	if o.training {
		o.train(value)
		return nil
	}

	if err := o.bayesianUpdate(value); err != nil {
		return err
	}

	if !o.detector.Detect(o.posterior) {
		o.prune()
		return nil
	}

	o.wasChangePoint = true
	if withLocalization {
		return o.handleLocalization()
	}
	o.handleDetection()
	return nil
}

// train accumulates the learning sample; once complete, priors are learned
// and the posterior becomes the single-point distribution {P[0]=1}.
func (o *Online) train(value float64) {
	o.trainingData = append(o.trainingData, value)
	if len(o.trainingData) < o.opts.LearningSampleSize {
		return
	}
	o.likelihood.Reset()
	o.detector.Reset()
	o.likelihood.Learn(o.trainingData)
	o.training = false
	o.posterior = []float64{1.0}
	o.runLengths = []int{0}
}

// bayesianUpdate performs one step of the run length posterior recursion:
// growth terms for continuing runs, a reset term for a new run starting now,
// then normalization and the conjugate statistics update.
func (o *Online) bayesianUpdate(value float64) error {
	predictive := o.likelihood.Predictive(value)

	probs := make([]float64, len(o.posterior)+1)
	lengths := make([]int, len(o.runLengths)+1)
	var resetMass, sum float64
	for i, p := range o.posterior {
		hazard := o.hazard.Probability(o.runLengths[i])
		joint := p * predictive[i]
		probs[i+1] = joint * (1.0 - hazard)
		resetMass += joint * hazard
		lengths[i+1] = o.runLengths[i] + 1
	}
	probs[0] = resetMass
	lengths[0] = 0

	for _, p := range probs {
		sum += p
	}
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return &cpd.NumericDegeneracyError{Time: o.currentTime}
	}
	for i := range probs {
		probs[i] /= sum
	}

	o.posterior = probs
	o.runLengths = lengths
	o.likelihood.Update(value)
	return nil
}

// prune compacts away hypotheses whose posterior mass fell below the floor
// and renormalizes. The run length index vector keeps the localizer exact.
func (o *Online) prune() {
	if o.opts.PruningFloor <= 0 || len(o.posterior) == 0 {
		return
	}
	keep := make([]int, 0, len(o.posterior))
	for i, p := range o.posterior {
		if p >= o.opts.PruningFloor {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(o.posterior) {
		return
	}
	if len(keep) == 0 {
		// The floor exceeded every entry; pruning must never empty the
		// posterior, so it is skipped for this step.
		return
	}

	probs := make([]float64, 0, len(keep))
	lengths := make([]int, 0, len(keep))
	var sum float64
	for _, i := range keep {
		probs = append(probs, o.posterior[i])
		lengths = append(lengths, o.runLengths[i])
		sum += o.posterior[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	o.posterior = probs
	o.runLengths = lengths
	o.likelihood.Prune(keep)
}

// handleLocalization resolves the change point location, retains the tail of
// history that belongs to the new regime, and retrains on it. If the
// retained tail already covers a full learning sample, the engine relearns
// immediately and replays the remainder through the posterior recursion.
// A run length of 0 places the change at the current observation: the
// retained tail is empty and learning restarts from scratch on whatever
// arrives next.
func (o *Online) handleLocalization() error {
	runLength := o.localizer.Locate(o.posterior, o.runLengths)
	location := o.currentTime - runLength

	tail := len(o.history) - runLength
	if tail < 0 {
		tail = 0
	}
	retained := make([]float64, len(o.history)-tail)
	copy(retained, o.history[tail:])
	o.history = retained
	o.trainingData = append([]float64(nil), retained...)

	o.changePoint = location
	o.hasChangePoint = true

	o.likelihood.Reset()
	o.detector.Reset()
	o.training = true
	o.posterior = nil
	o.runLengths = nil

	if len(o.trainingData) < o.opts.LearningSampleSize {
		return nil
	}

	o.trainingData = o.trainingData[:o.opts.LearningSampleSize]
	o.likelihood.Learn(o.trainingData)
	o.training = false
	o.posterior = []float64{1.0}
	o.runLengths = []int{0}

	for _, v := range o.history[o.opts.LearningSampleSize:] {
		if err := o.bayesianUpdate(v); err != nil {
			return err
		}
	}
	return nil
}

// handleDetection restarts learning from the most recent observation only;
// detection without localization does not resolve where the change was.
func (o *Online) handleDetection() {
	last := o.history[len(o.history)-1]
	o.history = []float64{last}
	o.trainingData = []float64{last}

	o.likelihood.Reset()
	o.detector.Reset()
	o.training = true
	o.posterior = nil
	o.runLengths = nil
}
