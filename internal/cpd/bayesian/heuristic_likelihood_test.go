package bayesian

import (
	"math/rand"
	"testing"
)

func exponentialSample(r *rand.Rand, n int, rate float64) []float64 {
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = r.ExpFloat64() / rate
	}
	return sample
}

func TestHeuristicLikelihood_Registered(t *testing.T) {
	l, err := NewLikelihood("heuristic")
	if err != nil {
		t.Fatalf("Expected heuristic to be registered, got %v", err)
	}
	if _, ok := l.(*HeuristicLikelihood); !ok {
		t.Errorf("Expected *HeuristicLikelihood, got %T", l)
	}
}

func TestHeuristicLikelihood_SelectsGaussianOnGaussianData(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	h := NewHeuristicLikelihood()
	h.Learn(gaussianSample(r, 20, 0.0, 1.0))

	if _, ok := h.inner.(*GaussianConjugate); !ok {
		t.Errorf("Expected Gaussian family for Gaussian data, got %T", h.inner)
	}
}

func TestHeuristicLikelihood_SelectsExponentialOnExponentialData(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	h := NewHeuristicLikelihood()
	h.Learn(exponentialSample(r, 20, 1.0))

	if _, ok := h.inner.(*ExponentialConjugate); !ok {
		t.Errorf("Expected exponential family for exponential data, got %T", h.inner)
	}
}

func TestHeuristicLikelihood_NegativeValuesExcludeExponential(t *testing.T) {
	// The exponential support is [0, inf); any negative observation makes
	// the sample impossible under it.
	h := NewHeuristicLikelihood()
	h.Learn([]float64{-1.0, 0.5, 1.5, -0.2, 0.9})

	if _, ok := h.inner.(*GaussianConjugate); !ok {
		t.Errorf("Expected Gaussian family for data with negative values, got %T", h.inner)
	}
}

func TestHeuristicLikelihood_DelegatesToSelection(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	h := NewHeuristicLikelihood()
	h.Learn(gaussianSample(r, 20, 0.0, 1.0))

	if got := len(h.Predictive(0.0)); got != 1 {
		t.Fatalf("Expected 1 hypothesis after learning, got %d", got)
	}
	h.Update(0.5)
	if got := len(h.Predictive(0.0)); got != 2 {
		t.Fatalf("Expected 2 hypotheses after update, got %d", got)
	}
	h.Prune([]int{1})
	if got := len(h.Predictive(0.0)); got != 1 {
		t.Fatalf("Expected 1 hypothesis after pruning, got %d", got)
	}
}

func TestHeuristicLikelihood_ResetDiscardsSelection(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	h := NewHeuristicLikelihood()
	h.Learn(gaussianSample(r, 20, 0.0, 1.0))
	h.Reset()

	if h.inner != nil {
		t.Error("Expected no selected family after reset")
	}
	if h.Predictive(1.0) != nil {
		t.Error("Expected no predictions before relearning")
	}

	// Relearning on different data may pick the other family
	r = rand.New(rand.NewSource(5))
	h.Learn(exponentialSample(r, 20, 2.0))
	if _, ok := h.inner.(*ExponentialConjugate); !ok {
		t.Errorf("Expected exponential family after relearning, got %T", h.inner)
	}
}

func TestHeuristicLikelihood_EngineIntegration(t *testing.T) {
	hazard, _ := NewConstantHazard(1.0 / 500.0)
	detector, _ := NewThresholdDetector(0.04)
	engine, err := NewOnline(hazard, NewHeuristicLikelihood(), detector, NewArgmaxLocalizer(), Options{LearningSampleSize: 20})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	points := localizeAll(t, engine, twoRegimeSeries(42))
	if len(points) != 1 {
		t.Fatalf("Expected exactly one change point, got %v", points)
	}
	if points[0] < 95 || points[0] > 105 {
		t.Errorf("Expected change point near 100, got %d", points[0])
	}
}
