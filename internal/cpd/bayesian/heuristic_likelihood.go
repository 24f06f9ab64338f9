package bayesian

import "math"

// HeuristicLikelihood selects between the Gaussian and exponential conjugate
// families at learning time: both are trained on the learning sample, the
// sample's probability under each learned prior is compared, and the more
// probable family serves the rest of the run. Ties resolve to Gaussian.
type HeuristicLikelihood struct {
	inner Likelihood
}

// NewHeuristicLikelihood creates an untrained heuristic likelihood.
func NewHeuristicLikelihood() *HeuristicLikelihood {
	return &HeuristicLikelihood{}
}

func init() {
	RegisterLikelihood("heuristic", func() Likelihood { return NewHeuristicLikelihood() })
}

// Learn trains both candidate families on the sample and keeps the one that
// assigns the sample the higher prior probability.
func (h *HeuristicLikelihood) Learn(sample []float64) {
	gaussian := NewGaussianConjugate()
	exponential := NewExponentialConjugate()
	gaussian.Learn(sample)
	exponential.Learn(sample)

	if gaussian.priorLogLikelihood(sample) >= exponential.priorLogLikelihood(sample) {
		h.inner = gaussian
	} else {
		h.inner = exponential
	}
}

// Predictive delegates to the selected family.
func (h *HeuristicLikelihood) Predictive(value float64) []float64 {
	if h.inner == nil {
		return nil
	}
	return h.inner.Predictive(value)
}

// Update delegates to the selected family.
func (h *HeuristicLikelihood) Update(value float64) {
	if h.inner == nil {
		return
	}
	h.inner.Update(value)
}

// Prune delegates to the selected family.
func (h *HeuristicLikelihood) Prune(keep []int) {
	if h.inner == nil {
		return
	}
	h.inner.Prune(keep)
}

// Reset discards the selected family; the next Learn chooses again.
func (h *HeuristicLikelihood) Reset() {
	h.inner = nil
}

// priorLogLikelihood is the log probability of the sample under the learned
// prior, i.e. the run-length-0 predictive applied to every observation.
func (g *GaussianConjugate) priorLogLikelihood(sample []float64) float64 {
	if g.kappa0 <= 0 || g.alpha0 <= 0 {
		return math.Inf(-1)
	}
	df := 2.0 * g.alpha0
	scale := math.Sqrt(g.beta0 * (g.kappa0 + 1.0) / (g.alpha0 * g.kappa0))
	var sum float64
	for _, v := range sample {
		sum += math.Log(studentTPDF(v, df, g.mu0, scale))
	}
	return sum
}

// priorLogLikelihood is the log probability of the sample under the learned
// prior. Observations outside the support make it -Inf, so the exponential
// family never wins on data with negative values.
func (e *ExponentialConjugate) priorLogLikelihood(sample []float64) float64 {
	var sum float64
	for _, v := range sample {
		sum += math.Log(lomaxPDF(v, e.shape0, e.scale0))
	}
	return sum
}
