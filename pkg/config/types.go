package config

import (
	"path/filepath"
	"time"
)

// Config represents the run configuration for one simulation process.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Simulation SimulationConfig `yaml:"simulation"`
	HTTP       HTTPConfig       `yaml:"http"`
}

// TelemetryConfig controls the metrics poller.
type TelemetryConfig struct {
	// Enabled selects telemetry mode: the run is parameterized from live
	// snapshots instead of synthetic readings.
	Enabled bool `yaml:"enabled"`

	// MetricsPath is the primary snapshot file location.
	MetricsPath string `yaml:"metrics_path"`

	// PollInterval is how often a fresh snapshot is pulled, e.g. "5s".
	PollInterval string `yaml:"poll_interval"`

	// SettleDelay is how long the run waits for the first poll to land,
	// e.g. "3s".
	SettleDelay string `yaml:"settle_delay"`
}

// SimulationConfig controls the engine and cost model.
type SimulationConfig struct {
	// Seed drives synthetic snapshot generation; 0 means time-based.
	Seed int64 `yaml:"seed"`

	// CostPerSecond is the per-task execution cost rate in dollars.
	CostPerSecond float64 `yaml:"cost_per_second"`
}

// HTTPConfig controls the optional report/metrics HTTP listener.
type HTTPConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Defaults mirror a standalone run against a co-located web application.
const (
	DefaultMetricsPath   = "cloudsim-metrics.json"
	DefaultPollInterval  = "5s"
	DefaultSettleDelay   = "3s"
	DefaultCostPerSecond = 0.0042
	DefaultHTTPAddr      = ":8080"
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Telemetry: TelemetryConfig{
			Enabled:      false,
			MetricsPath:  DefaultMetricsPath,
			PollInterval: DefaultPollInterval,
			SettleDelay:  DefaultSettleDelay,
		},
		Simulation: SimulationConfig{
			Seed:          0,
			CostPerSecond: DefaultCostPerSecond,
		},
		HTTP: HTTPConfig{
			Enabled: false,
			Addr:    DefaultHTTPAddr,
		},
	}
}

// GetPollInterval parses the poll interval string to time.Duration
func (t TelemetryConfig) GetPollInterval() (time.Duration, error) {
	return time.ParseDuration(t.PollInterval)
}

// GetSettleDelay parses the settle delay string to time.Duration
func (t TelemetryConfig) GetSettleDelay() (time.Duration, error) {
	return time.ParseDuration(t.SettleDelay)
}

// SnapshotPaths returns the snapshot lookup order: the configured path
// followed by the three documented fallback locations.
func (t TelemetryConfig) SnapshotPaths() []string {
	name := filepath.Base(t.MetricsPath)
	return []string{
		t.MetricsPath,
		filepath.Join("..", name),
		filepath.Join("..", "..", name),
		filepath.Join("data", name),
	}
}
