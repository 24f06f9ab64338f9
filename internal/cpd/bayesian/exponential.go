package bayesian

import "math"

// ExponentialConjugate is an exponential likelihood with a conjugate gamma
// prior. The predictive density is a Lomax distribution with posterior shape
// and scale. Its support is [0, +inf); observations below zero get density 0.
type ExponentialConjugate struct {
	shape0 float64
	scale0 float64

	shapes []float64
	scales []float64
}

// NewExponentialConjugate creates an untrained exponential likelihood.
func NewExponentialConjugate() *ExponentialConjugate {
	return &ExponentialConjugate{}
}

func init() {
	RegisterLikelihood("exponential", func() Likelihood { return NewExponentialConjugate() })
}

// Learn estimates the gamma prior from the sample size and sum.
func (e *ExponentialConjugate) Learn(sample []float64) {
	var sum float64
	for _, v := range sample {
		sum += v
	}
	e.shape0 = float64(len(sample))
	e.scale0 = sum
	e.shapes = []float64{e.shape0}
	e.scales = []float64{e.scale0}
}

// Predictive returns Lomax densities of the observation under every
// hypothesis.
func (e *ExponentialConjugate) Predictive(value float64) []float64 {
	probs := make([]float64, len(e.shapes))
	for i := range e.shapes {
		probs[i] = lomaxPDF(value, e.shapes[i], e.scales[i])
	}
	return probs
}

// Update computes posterior parameters for all hypotheses and re-seeds the
// run-length-0 hypothesis with the learned prior.
func (e *ExponentialConjugate) Update(value float64) {
	n := len(e.shapes)
	shapes := make([]float64, n+1)
	scales := make([]float64, n+1)
	shapes[0] = e.shape0
	scales[0] = e.scale0
	for i := 0; i < n; i++ {
		shapes[i+1] = e.shapes[i] + 1.0
		scales[i+1] = e.scales[i] + value
	}
	e.shapes, e.scales = shapes, scales
}

// Prune keeps only the hypotheses at the given positions.
func (e *ExponentialConjugate) Prune(keep []int) {
	e.shapes = compactFloat64(e.shapes, keep)
	e.scales = compactFloat64(e.scales, keep)
}

// Reset clears all learned parameters.
func (e *ExponentialConjugate) Reset() {
	e.shape0, e.scale0 = 0, 0
	e.shapes, e.scales = nil, nil
}

// lomaxPDF evaluates the Lomax density in the log domain and returns a
// linear-scale density. Out-of-support and degenerate inputs yield 0.
func lomaxPDF(x, shape, scale float64) float64 {
	if x < 0 || shape <= 0 || scale <= 0 {
		return 0
	}
	logPDF := math.Log(shape) - math.Log(scale) - (shape+1.0)*math.Log1p(x/scale)
	pdf := math.Exp(logPDF)
	if math.IsNaN(pdf) {
		return 0
	}
	return pdf
}
