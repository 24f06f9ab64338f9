// Package models defines the request and response types of the detection
// HTTP API.
package models

// DetectRequest represents a change point detection request over a
// submitted series.
type DetectRequest struct {
	// Values is the ordered series of observations to scan.
	Values []float64 `json:"values"`

	// Tuning optionally overrides the configured detection parameters for
	// this request only.
	Tuning *DetectionTuning `json:"tuning,omitempty"`
}

// DetectionTuning carries per-request overrides of the detection
// configuration. Zero-valued fields keep the configured value.
type DetectionTuning struct {
	HazardRate         float64 `json:"hazard_rate,omitempty"`
	Likelihood         string  `json:"likelihood,omitempty"`
	Threshold          float64 `json:"threshold,omitempty"`
	LearningSampleSize int     `json:"learning_sample_size,omitempty"`
	PruningFloor       float64 `json:"pruning_floor,omitempty"`
}

// DetectResponse represents a completed detection run.
type DetectResponse struct {
	RunID          string  `json:"run_id"`
	ChangePoints   []int   `json:"change_points"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Rendered       string  `json:"rendered"`
}

// HealthResponse represents health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}
