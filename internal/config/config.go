// Package config holds the application configuration for detection runs,
// observation sources and the serving layer, loaded through viper.
package config

import (
	"fmt"

	"github.com/shiftwatch/shiftwatch/internal/cpd"
)

// Config represents the complete application configuration.
type Config struct {
	Detection DetectionConfig `mapstructure:"detection"`
	Source    SourceConfig    `mapstructure:"source"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DetectionConfig is the configuration surface of the Bayesian engine.
type DetectionConfig struct {
	HazardRate         float64 `mapstructure:"hazard_rate"`          // changepoint probability per step, (0, 1]
	Likelihood         string  `mapstructure:"likelihood"`           // likelihood family: gaussian, exponential, heuristic
	Threshold          float64 `mapstructure:"threshold"`            // detector threshold, [0, 1]
	LearningSampleSize int     `mapstructure:"learning_sample_size"` // observations consumed before detection is enabled
	PruningFloor       float64 `mapstructure:"pruning_floor"`        // posterior pruning floor, 0 disables pruning
}

// SourceConfig selects and configures the observation source.
type SourceConfig struct {
	Type    string  `mapstructure:"type"`    // memory (default), nats, kafka, redis
	URL     string  `mapstructure:"url"`     // broker URL for nats/redis
	Subject string  `mapstructure:"subject"` // NATS subject, Kafka topic or Redis stream key
	Buffer  int     `mapstructure:"buffer"`  // internal buffer size for broker sources

	Password     string   `mapstructure:"password"`      // optional broker authentication
	RedisDB      int      `mapstructure:"redis_db"`      // Redis database number
	KafkaBrokers []string `mapstructure:"kafka_brokers"` // Kafka broker addresses
	KafkaGroupID string   `mapstructure:"kafka_group"`   // Kafka consumer group

	// Values feeds the memory source directly; used by tools and tests.
	Values []float64 `mapstructure:"values"`
}

// ServerConfig configures the HTTP detection service.
type ServerConfig struct {
	Host     string `mapstructure:"host"`
	HTTPPort int    `mapstructure:"http_port"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Detection: DetectionConfig{
			HazardRate:         1.0 / 500.0,
			Likelihood:         "gaussian",
			Threshold:          0.04,
			LearningSampleSize: 20,
			PruningFloor:       0,
		},
		Source: SourceConfig{
			Type:   "memory",
			Buffer: 1024,
		},
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 6060,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
	}
}

// Validate validates the configuration eagerly, before any run starts.
func (c *Config) Validate() error {
	if err := c.Detection.Validate(); err != nil {
		return fmt.Errorf("detection config: %w", err)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server config: invalid http port %d", c.Server.HTTPPort)
	}
	return nil
}

// Validate checks every detection parameter against the engine's contracts.
func (c *DetectionConfig) Validate() error {
	if c.HazardRate <= 0 || c.HazardRate > 1 {
		return cpd.NewConfigurationError("hazard rate", fmt.Sprintf("must be in (0, 1], got %v", c.HazardRate))
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return cpd.NewConfigurationError("detector threshold", fmt.Sprintf("must be in [0, 1], got %v", c.Threshold))
	}
	if c.LearningSampleSize <= 0 {
		return cpd.NewConfigurationError("learning sample size", fmt.Sprintf("must be positive, got %d", c.LearningSampleSize))
	}
	if c.PruningFloor < 0 || c.PruningFloor >= 1 {
		return cpd.NewConfigurationError("pruning floor", fmt.Sprintf("must be in [0, 1), got %v", c.PruningFloor))
	}
	if c.Likelihood == "" {
		return cpd.NewConfigurationError("likelihood", "must name a registered likelihood family")
	}
	return nil
}
