// Package solver wires scrubbers and detection algorithms together, drives
// full runs to completion and packages located change points with timing.
package solver

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of one completed detection run. It is read-only
// after creation: a failed run yields an error and no Result, never a
// truncated change point list presented as complete.
type Result struct {
	// RunID identifies this run across reports and logs.
	RunID uuid.UUID

	// ChangePoints are the located change point indices, ascending and
	// de-duplicated.
	ChangePoints []int

	// Expected holds the reference change points for labeled data, if any.
	Expected []int

	// Elapsed is the wall-clock computation time of the run.
	Elapsed time.Duration
}

func newResult(changePoints, expected []int, elapsed time.Duration) *Result {
	return &Result{
		RunID:        uuid.New(),
		ChangePoints: sortedUnique(changePoints),
		Expected:     expected,
		Elapsed:      elapsed,
	}
}

// String renders the located change points in the format consumed by
// external reporters.
func (r *Result) String() string {
	points := make([]string, len(r.ChangePoints))
	for i, cp := range r.ChangePoints {
		points[i] = fmt.Sprintf("%d", cp)
	}
	return fmt.Sprintf("Located change points: [%s]", strings.Join(points, ", "))
}

// Diff returns the symmetric difference between located and expected change
// points, sorted ascending. It requires Expected to be set.
func (r *Result) Diff() ([]int, error) {
	if r.Expected == nil {
		return nil, fmt.Errorf("result has no expected change points to diff against")
	}
	located := make(map[int]struct{}, len(r.ChangePoints))
	for _, cp := range r.ChangePoints {
		located[cp] = struct{}{}
	}
	expected := make(map[int]struct{}, len(r.Expected))
	for _, cp := range r.Expected {
		expected[cp] = struct{}{}
	}

	var diff []int
	for cp := range located {
		if _, ok := expected[cp]; !ok {
			diff = append(diff, cp)
		}
	}
	for cp := range expected {
		if _, ok := located[cp]; !ok {
			diff = append(diff, cp)
		}
	}
	sort.Ints(diff)
	return diff, nil
}

func sortedUnique(points []int) []int {
	if len(points) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(points))
	out := make([]int, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
