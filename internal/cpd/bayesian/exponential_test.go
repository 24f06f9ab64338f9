package bayesian

import (
	"math"
	"testing"
)

func TestExponentialConjugate_Learn(t *testing.T) {
	e := NewExponentialConjugate()
	e.Learn([]float64{1, 2, 3, 4})

	if e.shape0 != 4 {
		t.Errorf("Expected shape=4, got %v", e.shape0)
	}
	if e.scale0 != 10 {
		t.Errorf("Expected scale=10, got %v", e.scale0)
	}
	if len(e.Predictive(1.0)) != 1 {
		t.Errorf("Expected 1 hypothesis after learning")
	}
}

func TestExponentialConjugate_PredictiveSupport(t *testing.T) {
	e := NewExponentialConjugate()
	e.Learn([]float64{1, 2, 3, 4})

	if got := e.Predictive(2.0)[0]; got <= 0 {
		t.Errorf("Expected positive density for x=2, got %v", got)
	}
	if got := e.Predictive(-1.0)[0]; got != 0 {
		t.Errorf("Expected zero density for negative x, got %v", got)
	}
}

func TestExponentialConjugate_Update(t *testing.T) {
	e := NewExponentialConjugate()
	e.Learn([]float64{1, 2, 3, 4})
	e.Update(5.0)

	if len(e.shapes) != 2 {
		t.Fatalf("Expected 2 hypotheses after update, got %d", len(e.shapes))
	}
	if e.shapes[0] != e.shape0 || e.scales[0] != e.scale0 {
		t.Errorf("Expected hypothesis 0 to hold prior parameters")
	}
	if e.shapes[1] != 5 {
		t.Errorf("Expected shape=5, got %v", e.shapes[1])
	}
	if e.scales[1] != 15 {
		t.Errorf("Expected scale=15, got %v", e.scales[1])
	}
}

func TestExponentialConjugate_Prune(t *testing.T) {
	e := NewExponentialConjugate()
	e.Learn([]float64{1, 2})
	e.Update(1.0)
	e.Update(1.0)

	e.Prune([]int{1, 2})
	if len(e.shapes) != 2 {
		t.Fatalf("Expected 2 hypotheses after pruning, got %d", len(e.shapes))
	}
}

func TestLomaxPDF(t *testing.T) {
	// shape=1, scale=1: pdf(x) = 1/(1+x)^2
	got := lomaxPDF(1.0, 1.0, 1.0)
	if math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Expected 0.25, got %v", got)
	}

	if lomaxPDF(-0.1, 1, 1) != 0 {
		t.Errorf("Expected 0 outside the support")
	}
	if lomaxPDF(1, 0, 1) != 0 {
		t.Errorf("Expected 0 for degenerate shape")
	}
	if lomaxPDF(1, 1, 0) != 0 {
		t.Errorf("Expected 0 for degenerate scale")
	}
}
