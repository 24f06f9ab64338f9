package bayesian

import (
	"errors"
	"testing"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

func TestNewConstantHazard(t *testing.T) {
	h, err := NewConstantHazard(0.002)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h == nil {
		t.Fatal("Expected non-nil ConstantHazard")
	}
}

func TestNewConstantHazard_InvalidRate(t *testing.T) {
	for _, rate := range []float64{0, -0.5, 1.5} {
		_, err := NewConstantHazard(rate)
		if err == nil {
			t.Errorf("Expected error for rate=%v", rate)
			continue
		}
		var cfgErr *cpd.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("Expected ConfigurationError for rate=%v, got %T", rate, err)
		}
	}
}

func TestConstantHazard_Probability(t *testing.T) {
	h, err := NewConstantHazard(0.01)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Constant for every run length, and idempotent
	for _, runLength := range []int{0, 1, 10, 1000} {
		if got := h.Probability(runLength); got != 0.01 {
			t.Errorf("Expected 0.01 for run length %d, got %v", runLength, got)
		}
		if got := h.Probability(runLength); got != 0.01 {
			t.Errorf("Expected repeated call to return 0.01, got %v", got)
		}
	}
}

func TestConstantHazard_UpperBound(t *testing.T) {
	h, err := NewConstantHazard(1.0)
	if err != nil {
		t.Fatalf("Expected rate=1.0 to be accepted, got %v", err)
	}
	if got := h.Probability(5); got != 1.0 {
		t.Errorf("Expected 1.0, got %v", got)
	}
}
