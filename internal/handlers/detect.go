package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/shiftwatch/shiftwatch/internal/config"
	"github.com/shiftwatch/shiftwatch/internal/cpd"
	"github.com/shiftwatch/shiftwatch/internal/cpd/bayesian"
	"github.com/shiftwatch/shiftwatch/internal/models"
	"github.com/shiftwatch/shiftwatch/internal/solver"
	"github.com/shiftwatch/shiftwatch/internal/source"
)

// Detect runs online Bayesian change point detection over a submitted
// series and returns the located change points.
func (h *Handler) Detect(c *fiber.Ctx) error {
	var req models.DetectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_BODY", Message: err.Error()},
		})
	}
	if len(req.Values) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{Code: "EMPTY_SERIES", Message: "values must not be empty"},
		})
	}

	detection := h.applyTuning(req.Tuning)
	engine, err := bayesian.NewOnlineFromConfig(detection)
	if err != nil {
		var cfgErr *cpd.ConfigurationError
		if errors.As(err, &cfgErr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: models.ErrorDetail{Code: "INVALID_CONFIGURATION", Message: err.Error()},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{Code: "ENGINE_SETUP_FAILED", Message: err.Error()},
		})
	}

	run := solver.NewOnline(source.NewSliceProvider(req.Values), engine)
	result, err := run.Run()
	if err != nil {
		var degErr *cpd.NumericDegeneracyError
		if errors.As(err, &degErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
				Error: models.ErrorDetail{Code: "NUMERIC_DEGENERACY", Message: err.Error()},
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{Code: "DETECTION_FAILED", Message: err.Error()},
		})
	}

	h.logger.Info("detection run completed",
		"run_id", result.RunID.String(),
		"observations", len(req.Values),
		"change_points", len(result.ChangePoints))

	changePoints := result.ChangePoints
	if changePoints == nil {
		changePoints = []int{}
	}
	return c.JSON(models.DetectResponse{
		RunID:          result.RunID.String(),
		ChangePoints:   changePoints,
		ElapsedSeconds: result.Elapsed.Seconds(),
		Rendered:       result.String(),
	})
}

// applyTuning merges per-request overrides over the configured detection
// parameters.
func (h *Handler) applyTuning(tuning *models.DetectionTuning) config.DetectionConfig {
	detection := h.cfg.Detection
	if tuning == nil {
		return detection
	}
	if tuning.HazardRate != 0 {
		detection.HazardRate = tuning.HazardRate
	}
	if tuning.Likelihood != "" {
		detection.Likelihood = tuning.Likelihood
	}
	if tuning.Threshold != 0 {
		detection.Threshold = tuning.Threshold
	}
	if tuning.LearningSampleSize != 0 {
		detection.LearningSampleSize = tuning.LearningSampleSize
	}
	if tuning.PruningFloor != 0 {
		detection.PruningFloor = tuning.PruningFloor
	}
	return detection
}
