package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
	if cfg.Detection.Likelihood != "gaussian" {
		t.Errorf("Expected gaussian default likelihood, got %q", cfg.Detection.Likelihood)
	}
	if cfg.Detection.HazardRate != 1.0/500.0 {
		t.Errorf("Expected default hazard rate 1/500, got %v", cfg.Detection.HazardRate)
	}
	if cfg.Detection.PruningFloor != 0 {
		t.Errorf("Expected pruning disabled by default, got %v", cfg.Detection.PruningFloor)
	}
	if cfg.Server.HTTPPort != 6060 {
		t.Errorf("Expected default port 6060, got %d", cfg.Server.HTTPPort)
	}
}

func TestDetectionConfig_Validate(t *testing.T) {
	base := DefaultConfig().Detection

	tests := []struct {
		name   string
		mutate func(*DetectionConfig)
	}{
		{"zero hazard", func(c *DetectionConfig) { c.HazardRate = 0 }},
		{"hazard above one", func(c *DetectionConfig) { c.HazardRate = 1.5 }},
		{"negative threshold", func(c *DetectionConfig) { c.Threshold = -0.1 }},
		{"threshold above one", func(c *DetectionConfig) { c.Threshold = 1.1 }},
		{"zero learning sample", func(c *DetectionConfig) { c.LearningSampleSize = 0 }},
		{"negative pruning floor", func(c *DetectionConfig) { c.PruningFloor = -0.5 }},
		{"pruning floor at one", func(c *DetectionConfig) { c.PruningFloor = 1 }},
		{"empty likelihood", func(c *DetectionConfig) { c.Likelihood = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			var cfgErr *cpd.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Expected ConfigurationError, got %T", err)
			}
		})
	}
}

func TestConfig_ValidatePort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.HTTPPort = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for port 0")
	}

	cfg.Server.HTTPPort = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for out-of-range port")
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	os.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults when no config file exists, got %v", err)
	}
	if cfg.Detection.Likelihood != "gaussian" {
		t.Errorf("Expected default likelihood, got %q", cfg.Detection.Likelihood)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
detection:
  hazard_rate: 0.01
  likelihood: exponential
  threshold: 0.1
  learning_sample_size: 50
server:
  http_port: 7070
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Detection.HazardRate != 0.01 {
		t.Errorf("Expected hazard 0.01, got %v", cfg.Detection.HazardRate)
	}
	if cfg.Detection.Likelihood != "exponential" {
		t.Errorf("Expected exponential, got %q", cfg.Detection.Likelihood)
	}
	if cfg.Detection.LearningSampleSize != 50 {
		t.Errorf("Expected learning sample 50, got %d", cfg.Detection.LearningSampleSize)
	}
	if cfg.Server.HTTPPort != 7070 {
		t.Errorf("Expected port 7070, got %d", cfg.Server.HTTPPort)
	}
	// Unset sections keep defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default logging level, got %q", cfg.Logging.Level)
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
detection:
  hazard_rate: 2.0
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected validation to reject an out-of-range hazard rate")
	}
}
