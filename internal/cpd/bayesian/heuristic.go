package bayesian

import (
	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// LinearHeuristic wraps an online engine and periodically prepares a fresh
// duplicate, switching to it once trained. This bounds per-step cost on long
// streams, since the inner engine's posterior never grows past the rotation
// period, at the price of some information loss around switches.
type LinearHeuristic struct {
	factory func() cpd.OnlineAlgorithm

	timeBeforeDuplicateStart int
	duplicatePreparationTime int

	main      cpd.OnlineAlgorithm
	duplicate cpd.OnlineAlgorithm

	time          int
	lastStartTime int
}

// NewLinearHeuristic creates the heuristic around a factory producing fresh,
// identically configured engines. timeBeforeDuplicateStart must exceed
// duplicatePreparationTime, which must be positive.
func NewLinearHeuristic(factory func() cpd.OnlineAlgorithm, timeBeforeDuplicateStart, duplicatePreparationTime int) (*LinearHeuristic, error) {
	if duplicatePreparationTime <= 0 || timeBeforeDuplicateStart <= duplicatePreparationTime {
		return nil, cpd.NewConfigurationError(
			"duplicate rotation times",
			"timeBeforeDuplicateStart must be greater than duplicatePreparationTime, which must be positive",
		)
	}
	return &LinearHeuristic{
		factory:                  factory,
		timeBeforeDuplicateStart: timeBeforeDuplicateStart,
		duplicatePreparationTime: duplicatePreparationTime,
		main:                     factory(),
	}, nil
}

// Reset restores the heuristic and its inner engine to a pristine state.
func (h *LinearHeuristic) Reset() {
	h.main = h.factory()
	h.duplicate = nil
	h.time = 0
	h.lastStartTime = 0
}

// Detect processes an observation through the main engine and reports
// whether it detected a change point.
func (h *LinearHeuristic) Detect(value float64) (bool, error) {
	detected, err := h.main.Detect(value)
	if err != nil {
		return false, err
	}
	if detected {
		h.lastStartTime = h.time
		h.duplicate = nil
		h.time++
		return true, nil
	}

	if err := h.prepareDuplicate(value, false); err != nil {
		return false, err
	}
	h.time++
	return false, nil
}

// Localize processes an observation through the main engine and returns the
// absolute change point location if one was localized. The inner engine
// reports locations in its own time frame, offset here by its start time.
func (h *LinearHeuristic) Localize(value float64) (int, bool, error) {
	location, found, err := h.main.Localize(value)
	if err != nil {
		return 0, false, err
	}
	if found {
		changePoint := h.lastStartTime + location
		h.lastStartTime = changePoint
		h.duplicate = nil
		h.time++
		return changePoint, true, nil
	}

	if err := h.prepareDuplicate(value, true); err != nil {
		return 0, false, err
	}
	h.time++
	return 0, false, nil
}

// prepareDuplicate manages the creation, training and eventual promotion of
// the duplicating engine.
func (h *LinearHeuristic) prepareDuplicate(value float64, withLocalization bool) error {
	workTime := h.time - h.lastStartTime
	stageEnd := h.timeBeforeDuplicateStart + h.duplicatePreparationTime

	switch {
	case workTime == h.timeBeforeDuplicateStart:
		h.duplicate = h.factory()

	case workTime > h.timeBeforeDuplicateStart && workTime < stageEnd:
		if h.duplicate == nil {
			return nil
		}
		var err error
		if withLocalization {
			_, _, err = h.duplicate.Localize(value)
		} else {
			_, err = h.duplicate.Detect(value)
		}
		if err != nil {
			return err
		}

	case workTime == stageEnd:
		if h.duplicate != nil {
			h.main = h.duplicate
			h.duplicate = nil
			h.lastStartTime = h.time - h.duplicatePreparationTime
		}
	}
	return nil
}
