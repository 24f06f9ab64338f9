package solver

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestResult_String(t *testing.T) {
	r := newResult([]int{42, 7, 100}, nil, time.Second)
	if got := r.String(); got != "Located change points: [7, 42, 100]" {
		t.Errorf("Unexpected rendering: %q", got)
	}
}

func TestResult_StringEmpty(t *testing.T) {
	r := newResult(nil, nil, 0)
	if got := r.String(); got != "Located change points: []" {
		t.Errorf("Unexpected rendering: %q", got)
	}
}

func TestNewResult_SortsAndDeduplicates(t *testing.T) {
	r := newResult([]int{5, 1, 5, 3, 1}, nil, 0)

	want := []int{1, 3, 5}
	if len(r.ChangePoints) != len(want) {
		t.Fatalf("Expected %v, got %v", want, r.ChangePoints)
	}
	for i := range want {
		if r.ChangePoints[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, r.ChangePoints)
		}
	}
}

func TestNewResult_AssignsRunID(t *testing.T) {
	a := newResult(nil, nil, 0)
	b := newResult(nil, nil, 0)
	if a.RunID == uuid.Nil || b.RunID == uuid.Nil {
		t.Error("Expected non-nil run IDs")
	}
	if a.RunID == b.RunID {
		t.Error("Expected distinct run IDs")
	}
}

func TestResult_Diff(t *testing.T) {
	r := newResult([]int{10, 20, 30}, []int{20, 40}, 0)

	diff, err := r.Diff()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []int{10, 30, 40}
	if len(diff) != len(want) {
		t.Fatalf("Expected %v, got %v", want, diff)
	}
	for i := range want {
		if diff[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, diff)
		}
	}
}

func TestResult_DiffWithoutExpected(t *testing.T) {
	r := newResult([]int{1}, nil, 0)
	if _, err := r.Diff(); err == nil {
		t.Error("Expected error when no expected change points are set")
	}
}

func TestResult_DiffIdentical(t *testing.T) {
	r := newResult([]int{1, 2}, []int{1, 2}, 0)
	diff, err := r.Diff()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(diff) != 0 {
		t.Errorf("Expected empty diff, got %v", diff)
	}
}
