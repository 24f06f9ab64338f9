package bayesian

// Localizer resolves the posterior into the single most likely run length
// once a detector has signaled a change.
type Localizer interface {
	// Locate returns the most probable run length. The runLengths slice
	// maps each posterior position to its true run length, which keeps
	// localization exact when the posterior has been pruned.
	Locate(posterior []float64, runLengths []int) int
}

// ArgmaxLocalizer picks the most probable non-maximal run length. The
// maximal run length is excluded because it encodes "no change yet". Ties
// break toward the smallest run length, favoring the newest plausible change
// point; this rule is fixed for reproducibility.
type ArgmaxLocalizer struct{}

// NewArgmaxLocalizer creates an argmax localizer.
func NewArgmaxLocalizer() *ArgmaxLocalizer {
	return &ArgmaxLocalizer{}
}

// Locate returns the run length with the highest posterior probability,
// excluding the maximal one. A single-entry posterior resolves to its own
// run length.
func (l *ArgmaxLocalizer) Locate(posterior []float64, runLengths []int) int {
	if len(posterior) == 0 {
		return 0
	}
	if len(posterior) == 1 {
		return runLengths[0]
	}
	best := 0
	for i := 1; i < len(posterior)-1; i++ {
		if posterior[i] > posterior[best] {
			best = i
		}
	}
	return runLengths[best]
}
