package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry should be disabled by default")
	}
	if cfg.Telemetry.MetricsPath != DefaultMetricsPath {
		t.Errorf("Expected metrics path %s, got %s", DefaultMetricsPath, cfg.Telemetry.MetricsPath)
	}
	if cfg.Telemetry.PollInterval != "5s" {
		t.Errorf("Expected poll interval 5s, got %s", cfg.Telemetry.PollInterval)
	}
	if cfg.Telemetry.SettleDelay != "3s" {
		t.Errorf("Expected settle delay 3s, got %s", cfg.Telemetry.SettleDelay)
	}
	if cfg.Simulation.CostPerSecond != DefaultCostPerSecond {
		t.Errorf("Expected cost per second %f, got %f", DefaultCostPerSecond, cfg.Simulation.CostPerSecond)
	}
	if cfg.HTTP.Enabled {
		t.Error("HTTP should be disabled by default")
	}
	if cfg.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("Expected HTTP addr %s, got %s", DefaultHTTPAddr, cfg.HTTP.Addr)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
log_level: debug
telemetry:
  enabled: true
  metrics_path: /var/lib/app/metrics.json
  poll_interval: 10s
  settle_delay: 1s
simulation:
  seed: 42
  cost_per_second: 0.01
http:
  enabled: true
  addr: ":9090"
`)

	cfg, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Expected telemetry enabled")
	}
	if cfg.Telemetry.MetricsPath != "/var/lib/app/metrics.json" {
		t.Errorf("Unexpected metrics path %s", cfg.Telemetry.MetricsPath)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Simulation.CostPerSecond != 0.01 {
		t.Errorf("Expected cost per second 0.01, got %f", cfg.Simulation.CostPerSecond)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Expected HTTP addr :9090, got %s", cfg.HTTP.Addr)
	}

	interval, err := cfg.Telemetry.GetPollInterval()
	if err != nil {
		t.Fatalf("GetPollInterval failed: %v", err)
	}
	if interval != 10*time.Second {
		t.Errorf("Expected 10s interval, got %v", interval)
	}
}

func TestParseYAMLAppliesDefaults(t *testing.T) {
	cfg, err := ParseYAML([]byte(`log_level: warn`))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if cfg.Telemetry.PollInterval != DefaultPollInterval {
		t.Errorf("Expected default poll interval, got %s", cfg.Telemetry.PollInterval)
	}
	if cfg.Simulation.CostPerSecond != DefaultCostPerSecond {
		t.Errorf("Expected default cost per second, got %f", cfg.Simulation.CostPerSecond)
	}
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid log level", `log_level: verbose`},
		{"malformed poll interval", "telemetry:\n  poll_interval: soon"},
		{"negative poll interval", "telemetry:\n  poll_interval: -5s"},
		{"negative settle delay", "telemetry:\n  settle_delay: -1s"},
		{"negative cost", "simulation:\n  cost_per_second: -0.1"},
		{"not yaml", `{{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.yaml)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: error\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Expected log level error, got %s", cfg.LogLevel)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default config, got log level %s", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestSnapshotPaths(t *testing.T) {
	tc := TelemetryConfig{MetricsPath: "cloudsim-metrics.json"}
	paths := tc.SnapshotPaths()

	expected := []string{
		"cloudsim-metrics.json",
		filepath.Join("..", "cloudsim-metrics.json"),
		filepath.Join("..", "..", "cloudsim-metrics.json"),
		filepath.Join("data", "cloudsim-metrics.json"),
	}
	if len(paths) != len(expected) {
		t.Fatalf("Expected %d paths, got %d", len(expected), len(paths))
	}
	for i, p := range expected {
		if paths[i] != p {
			t.Errorf("Path %d: expected %s, got %s", i, p, paths[i])
		}
	}
}

func TestSnapshotPathsFallbacksUseBaseName(t *testing.T) {
	tc := TelemetryConfig{MetricsPath: "/var/lib/app/metrics.json"}
	paths := tc.SnapshotPaths()

	if paths[0] != "/var/lib/app/metrics.json" {
		t.Errorf("Primary path should be the configured one, got %s", paths[0])
	}
	if paths[1] != filepath.Join("..", "metrics.json") {
		t.Errorf("Fallback should use the base name, got %s", paths[1])
	}
}
