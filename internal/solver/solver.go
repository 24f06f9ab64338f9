package solver

import (
	"time"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
	"github.com/shiftwatch/shiftwatch/internal/logging"
	"github.com/shiftwatch/shiftwatch/internal/scrubber"
	"github.com/shiftwatch/shiftwatch/internal/source"
)

// Solver drives a batch algorithm over the windows a scrubber yields and
// assembles a Result. A solver is single-use per run but re-runnable on a
// fresh scrubber/algorithm pair with no leaked state.
type Solver struct {
	scrubber  scrubber.Scrubber
	algorithm cpd.Algorithm

	// Expected optionally carries reference change points for labeled data;
	// they are attached to the Result unchanged.
	Expected []int
}

// New creates a batch solver.
func New(scr scrubber.Scrubber, algorithm cpd.Algorithm) *Solver {
	return &Solver{scrubber: scr, algorithm: algorithm}
}

// Run drives the full stream to completion, mapping window-relative change
// points to absolute stream indices.
func (s *Solver) Run() (*Result, error) {
	logger := logging.Global()
	logger.Debug("batch detection run started")

	start := time.Now()
	var changePoints []int
	for {
		window, ok := s.scrubber.Next()
		if !ok {
			break
		}
		relative, err := s.algorithm.Localize(window.Values)
		if err != nil {
			logger.Error("batch detection run failed", "error", err)
			return nil, err
		}
		for _, r := range relative {
			changePoints = append(changePoints, window.Indices[r])
		}
	}
	elapsed := time.Since(start)

	result := newResult(changePoints, s.Expected, elapsed)
	logger.Debug("batch detection run completed",
		"run_id", result.RunID.String(),
		"change_points", len(result.ChangePoints),
		"elapsed", elapsed)
	return result, nil
}

// OnlineSolver drives an online algorithm one observation at a time over a
// sample source and assembles a Result.
type OnlineSolver struct {
	provider  source.Provider
	algorithm cpd.OnlineAlgorithm

	// Expected optionally carries reference change points for labeled data.
	Expected []int
}

// NewOnline creates an online solver.
func NewOnline(provider source.Provider, algorithm cpd.OnlineAlgorithm) *OnlineSolver {
	return &OnlineSolver{provider: provider, algorithm: algorithm}
}

// Run resets the algorithm, consumes the source to exhaustion and collects
// every localized change point.
func (s *OnlineSolver) Run() (*Result, error) {
	logger := logging.Global()
	logger.Debug("online detection run started")

	s.algorithm.Reset()
	start := time.Now()
	var changePoints []int
	for {
		value, ok := s.provider.Next()
		if !ok {
			break
		}
		location, found, err := s.algorithm.Localize(value)
		if err != nil {
			logger.Error("online detection run failed", "error", err)
			return nil, err
		}
		if found {
			changePoints = append(changePoints, location)
		}
	}
	elapsed := time.Since(start)

	result := newResult(changePoints, s.Expected, elapsed)
	logger.Debug("online detection run completed",
		"run_id", result.RunID.String(),
		"change_points", len(result.ChangePoints),
		"elapsed", elapsed)
	return result, nil
}

// Count resets the algorithm and counts detections without localization.
func (s *OnlineSolver) Count() (int, error) {
	s.algorithm.Reset()
	count := 0
	for {
		value, ok := s.provider.Next()
		if !ok {
			break
		}
		detected, err := s.algorithm.Detect(value)
		if err != nil {
			return 0, err
		}
		if detected {
			count++
		}
	}
	return count, nil
}
