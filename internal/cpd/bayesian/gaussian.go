package bayesian

import "math"

// GaussianConjugate is a Gaussian likelihood with unknown mean and variance.
// It keeps a normal-inverse-gamma conjugate prior per hypothesis, so the
// predictive density is a Student's t-distribution with posterior parameters.
// Priors are estimated from a learning sample and updated in closed form.
type GaussianConjugate struct {
	mu0    float64
	kappa0 float64
	alpha0 float64
	beta0  float64

	mu    []float64
	kappa []float64
	alpha []float64
	beta  []float64
}

// NewGaussianConjugate creates an untrained Gaussian likelihood.
func NewGaussianConjugate() *GaussianConjugate {
	return &GaussianConjugate{}
}

func init() {
	RegisterLikelihood("gaussian", func() Likelihood { return NewGaussianConjugate() })
}

// Learn estimates prior parameters from the sample: the mean is treated as
// estimated from len(sample) observations and the precision from the sample's
// sum of squared deviations.
func (g *GaussianConjugate) Learn(sample []float64) {
	n := float64(len(sample))
	var sum float64
	for _, v := range sample {
		sum += v
	}
	mean := sum / n

	var sumSq float64
	for _, v := range sample {
		diff := v - mean
		sumSq += diff * diff
	}

	g.mu0 = mean
	g.kappa0 = n
	g.alpha0 = n / 2.0
	g.beta0 = sumSq / 2.0

	g.mu = []float64{g.mu0}
	g.kappa = []float64{g.kappa0}
	g.alpha = []float64{g.alpha0}
	g.beta = []float64{g.beta0}
}

// Predictive returns Student's t densities of the observation under every
// hypothesis, with 2*alpha degrees of freedom and posterior location/scale.
func (g *GaussianConjugate) Predictive(value float64) []float64 {
	probs := make([]float64, len(g.mu))
	for i := range g.mu {
		df := 2.0 * g.alpha[i]
		scale := math.Sqrt(g.beta[i] * (g.kappa[i] + 1.0) / (g.alpha[i] * g.kappa[i]))
		probs[i] = studentTPDF(value, df, g.mu[i], scale)
	}
	return probs
}

// Update computes posterior parameters for all hypotheses and re-seeds the
// run-length-0 hypothesis with the learned prior.
func (g *GaussianConjugate) Update(value float64) {
	n := len(g.mu)
	mu := make([]float64, n+1)
	kappa := make([]float64, n+1)
	alpha := make([]float64, n+1)
	beta := make([]float64, n+1)

	mu[0] = g.mu0
	kappa[0] = g.kappa0
	alpha[0] = g.alpha0
	beta[0] = g.beta0

	for i := 0; i < n; i++ {
		diff := value - g.mu[i]
		mu[i+1] = (g.mu[i]*g.kappa[i] + value) / (g.kappa[i] + 1.0)
		kappa[i+1] = g.kappa[i] + 1.0
		alpha[i+1] = g.alpha[i] + 0.5
		beta[i+1] = g.beta[i] + g.kappa[i]*diff*diff/(2.0*g.kappa[i]+1.0)
	}

	g.mu, g.kappa, g.alpha, g.beta = mu, kappa, alpha, beta
}

// Prune keeps only the hypotheses at the given positions.
func (g *GaussianConjugate) Prune(keep []int) {
	g.mu = compactFloat64(g.mu, keep)
	g.kappa = compactFloat64(g.kappa, keep)
	g.alpha = compactFloat64(g.alpha, keep)
	g.beta = compactFloat64(g.beta, keep)
}

// Reset clears all learned parameters.
func (g *GaussianConjugate) Reset() {
	g.mu0, g.kappa0, g.alpha0, g.beta0 = 0, 0, 0, 0
	g.mu, g.kappa, g.alpha, g.beta = nil, nil, nil, nil
}

// studentTPDF evaluates the Student's t density in the log domain to avoid
// underflow at large observation counts, returning a linear-scale density.
func studentTPDF(x, df, loc, scale float64) float64 {
	if scale <= 0 || df <= 0 {
		return 0
	}
	z := (x - loc) / scale
	lgNum, _ := math.Lgamma((df + 1.0) / 2.0)
	lgDen, _ := math.Lgamma(df / 2.0)
	logPDF := lgNum - lgDen -
		0.5*math.Log(df*math.Pi) - math.Log(scale) -
		(df+1.0)/2.0*math.Log1p(z*z/df)
	pdf := math.Exp(logPDF)
	if math.IsNaN(pdf) {
		return 0
	}
	return pdf
}

func compactFloat64(values []float64, keep []int) []float64 {
	out := make([]float64, 0, len(keep))
	for _, i := range keep {
		out = append(out, values[i])
	}
	return out
}
