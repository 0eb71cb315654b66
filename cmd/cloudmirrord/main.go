package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudmirror/simulation-core/internal/analysis"
	"github.com/cloudmirror/simulation-core/internal/runner"
	"github.com/cloudmirror/simulation-core/internal/server"
	"github.com/cloudmirror/simulation-core/internal/telemetry"
	"github.com/cloudmirror/simulation-core/pkg/config"
	"github.com/cloudmirror/simulation-core/pkg/logger"
)

func main() {
	var configPath string
	var useTelemetry bool
	var metricsPath string
	var logLevel string
	var seed int64
	var httpAddr string

	flag.StringVar(&configPath, "config", "", "path to YAML config (empty uses defaults)")
	flag.BoolVar(&useTelemetry, "telemetry", false, "parameterize the run from live telemetry")
	flag.StringVar(&metricsPath, "metrics-path", "", "primary snapshot file location")
	flag.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.Int64Var(&seed, "seed", 0, "synthetic snapshot seed (0 uses a time-based seed)")
	flag.StringVar(&httpAddr, "http-addr", "", "serve reports and metrics on this address")
	flag.Parse()

	// Missing .env is the normal case; only explicit files matter.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("loading config", "path", configPath, "error", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "telemetry":
			cfg.Telemetry.Enabled = useTelemetry
		case "metrics-path":
			cfg.Telemetry.MetricsPath = metricsPath
		case "log-level":
			cfg.LogLevel = logLevel
		case "seed":
			cfg.Simulation.Seed = seed
		case "http-addr":
			cfg.HTTP.Enabled = true
			cfg.HTTP.Addr = httpAddr
		}
	})

	// The console report owns stdout, so logs go to stderr.
	logger.SetDefault(logger.NewText(cfg.LogLevel, os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	synth := telemetry.NewSyntheticGenerator(cfg.Simulation.Seed)

	var poller *telemetry.Poller
	if cfg.Telemetry.Enabled {
		interval, err := cfg.Telemetry.GetPollInterval()
		if err != nil {
			logger.Error("parsing poll interval", "error", err)
			os.Exit(1)
		}
		source := telemetry.NewFileSource(cfg.Telemetry.SnapshotPaths())
		poller = telemetry.NewPoller(source, synth, interval)
		poller.Register(registry)
		go poller.Start(ctx)
		logger.Info("telemetry polling started",
			"metrics_path", cfg.Telemetry.MetricsPath,
			"interval", cfg.Telemetry.PollInterval)
	}

	run := runner.New(cfg, poller, synth)
	run.Register(registry)

	report, err := run.Run(ctx)
	if err != nil {
		logger.Error("simulation run failed", "error", err)
		stop()
		os.Exit(1)
	}
	analysis.Render(os.Stdout, report)

	if !cfg.HTTP.Enabled {
		return
	}

	srv := server.New(run, poller, registry)
	srv.PublishReport(report)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown requested")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
}
