package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load loads configuration from file, falling back to defaults when no
// config file is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/shiftwatch")
	}

	setDefaults(v)

	v.SetEnvPrefix("SHIFTWATCH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("detection.hazard_rate", defaults.Detection.HazardRate)
	v.SetDefault("detection.likelihood", defaults.Detection.Likelihood)
	v.SetDefault("detection.threshold", defaults.Detection.Threshold)
	v.SetDefault("detection.learning_sample_size", defaults.Detection.LearningSampleSize)
	v.SetDefault("detection.pruning_floor", defaults.Detection.PruningFloor)

	v.SetDefault("source.type", defaults.Source.Type)
	v.SetDefault("source.buffer", defaults.Source.Buffer)
	v.SetDefault("source.url", "nats://localhost:4222")

	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.http_port", defaults.Server.HTTPPort)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output_path", defaults.Logging.OutputPath)
}

func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
