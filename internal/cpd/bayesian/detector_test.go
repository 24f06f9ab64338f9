package bayesian

import "testing"

func TestNewThresholdDetector_Validation(t *testing.T) {
	for _, threshold := range []float64{-0.1, 1.1} {
		if _, err := NewThresholdDetector(threshold); err == nil {
			t.Errorf("Expected error for threshold=%v", threshold)
		}
	}
	for _, threshold := range []float64{0, 0.04, 1} {
		if _, err := NewThresholdDetector(threshold); err != nil {
			t.Errorf("Expected threshold=%v to be accepted, got %v", threshold, err)
		}
	}
}

func TestThresholdDetector_Detect(t *testing.T) {
	d, err := NewThresholdDetector(0.04)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Mass still concentrated on the maximal run length: no change
	if d.Detect([]float64{0.02, 0.03, 0.95}) {
		t.Errorf("Expected no detection when the maximal run length holds the mass")
	}

	// Mass drained from the maximal run length: change
	if !d.Detect([]float64{0.5, 0.49, 0.01}) {
		t.Errorf("Expected detection when the maximal run length mass dropped")
	}

	// Boundary: equality does not fire
	if d.Detect([]float64{0.96, 0.04}) {
		t.Errorf("Expected no detection at exactly the threshold")
	}

	if d.Detect(nil) {
		t.Errorf("Expected no detection for an empty posterior")
	}
}

func TestThresholdDetector_ZeroThreshold(t *testing.T) {
	d, err := NewThresholdDetector(0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Nothing is strictly below zero: detection impossible
	if d.Detect([]float64{1.0, 0.0}) {
		t.Errorf("Expected threshold=0 to never detect")
	}
}
