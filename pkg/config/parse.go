package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a Config from YAML bytes, fills in defaults for omitted
// fields and validates the result.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyDefaults restores defaults for fields an explicit YAML document may
// have set to empty values.
func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Telemetry.MetricsPath == "" {
		cfg.Telemetry.MetricsPath = DefaultMetricsPath
	}
	if cfg.Telemetry.PollInterval == "" {
		cfg.Telemetry.PollInterval = DefaultPollInterval
	}
	if cfg.Telemetry.SettleDelay == "" {
		cfg.Telemetry.SettleDelay = DefaultSettleDelay
	}
	if cfg.Simulation.CostPerSecond == 0 {
		cfg.Simulation.CostPerSecond = DefaultCostPerSecond
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = DefaultHTTPAddr
	}
}

func validate(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	interval, err := cfg.Telemetry.GetPollInterval()
	if err != nil {
		return fmt.Errorf("invalid telemetry poll_interval %s: %w", cfg.Telemetry.PollInterval, err)
	}
	if interval <= 0 {
		return fmt.Errorf("telemetry poll_interval must be positive, got %s", cfg.Telemetry.PollInterval)
	}

	settle, err := cfg.Telemetry.GetSettleDelay()
	if err != nil {
		return fmt.Errorf("invalid telemetry settle_delay %s: %w", cfg.Telemetry.SettleDelay, err)
	}
	if settle < 0 {
		return fmt.Errorf("telemetry settle_delay cannot be negative, got %s", cfg.Telemetry.SettleDelay)
	}

	if cfg.Simulation.CostPerSecond <= 0 {
		return fmt.Errorf("simulation cost_per_second must be positive, got %f", cfg.Simulation.CostPerSecond)
	}

	return nil
}
