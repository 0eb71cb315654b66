// Package runner orchestrates one simulation run end to end: snapshot
// selection, scaling, resource building, workload generation, engine
// execution and analysis.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudmirror/simulation-core/internal/analysis"
	"github.com/cloudmirror/simulation-core/internal/engine"
	"github.com/cloudmirror/simulation-core/internal/policy"
	"github.com/cloudmirror/simulation-core/internal/resource"
	"github.com/cloudmirror/simulation-core/internal/telemetry"
	"github.com/cloudmirror/simulation-core/internal/workload"
	"github.com/cloudmirror/simulation-core/pkg/config"
	"github.com/cloudmirror/simulation-core/pkg/logger"
	"github.com/cloudmirror/simulation-core/pkg/models"
	"github.com/cloudmirror/simulation-core/pkg/utils"
)

// Runner executes simulation runs. In telemetry mode the latest polled
// snapshot parameterizes each run; otherwise runs use neutral scaling over a
// synthetic snapshot.
type Runner struct {
	cfg    *config.Config
	poller *telemetry.Poller
	synth  *telemetry.SyntheticGenerator
	logger *slog.Logger

	runsTotal     prometheus.Counter
	tasksFinished prometheus.Counter
	tasksFailed   prometheus.Counter
}

// New creates a runner. The poller may be nil when telemetry is disabled.
func New(cfg *config.Config, poller *telemetry.Poller, synth *telemetry.SyntheticGenerator) *Runner {
	return &Runner{
		cfg:    cfg,
		poller: poller,
		synth:  synth,
		logger: logger.Default,
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulation_runs_total",
			Help: "Completed simulation runs",
		}),
		tasksFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulation_tasks_finished_total",
			Help: "Tasks that finished across all runs",
		}),
		tasksFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulation_tasks_failed_total",
			Help: "Tasks that never finished across all runs",
		}),
	}
}

// SetLogger sets the runner's logger
func (r *Runner) SetLogger(l *slog.Logger) {
	r.logger = l
}

// Register registers the runner's metrics with a Prometheus registry.
func (r *Runner) Register(reg prometheus.Registerer) {
	reg.MustRegister(r.runsTotal, r.tasksFinished, r.tasksFailed)
}

// Run executes one simulation run and returns its report.
func (r *Runner) Run(ctx context.Context) (*models.Report, error) {
	snap, telemetryDriven, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	factors := policy.Unit()
	dcScale, mipsScale := 1.0, 1.0
	if telemetryDriven {
		factors = policy.Compute(snap)
		dcScale = policy.DatacenterScale(snap)
		mipsScale = policy.MIPSScale(snap)
	}

	r.logger.Info("run parameterized",
		"telemetry_driven", telemetryDriven,
		"project", snap.ProjectName,
		"cpu_scale", factors.CPU,
		"response_scale", factors.Response,
		"load_scale", factors.Load)

	model, err := resource.Build(factors, dcScale, mipsScale)
	if err != nil {
		return nil, fmt.Errorf("building resource model: %w", err)
	}
	r.logger.Info("resource model built",
		"hosts", len(model.Hosts),
		"vms", len(model.VMs),
		"total_cores", model.TotalCores(),
		"total_ram_mb", model.TotalRAMMB())

	set := workload.Build(factors)

	eng := engine.New(model)
	eng.SetLogger(r.logger)
	tasks, err := eng.Run(ctx, set.Tasks)
	if err != nil {
		return nil, fmt.Errorf("running simulation: %w", err)
	}

	r.runsTotal.Inc()
	for _, t := range tasks {
		if t.Finished {
			r.tasksFinished.Inc()
		} else {
			r.tasksFailed.Inc()
		}
	}

	analyzer := analysis.Analyzer{CostPerSecond: r.cfg.Simulation.CostPerSecond}
	report := analyzer.Analyze(utils.GenerateRunID(), snap, telemetryDriven, tasks, model)

	r.logger.Info("run complete",
		"run_id", report.RunID,
		"tasks", report.Performance.TotalTasks,
		"finished", report.Performance.FinishedTasks,
		"sim_seconds", report.Performance.TotalTimeSeconds)
	return report, nil
}

// snapshot selects the reading that parameterizes the run. In telemetry mode
// it waits out the settle delay so the first poll can land, then takes the
// poller's latest; otherwise it generates a synthetic reading.
func (r *Runner) snapshot(ctx context.Context) (models.Snapshot, bool, error) {
	if !r.cfg.Telemetry.Enabled || r.poller == nil {
		return r.synth.Generate(), false, nil
	}

	delay, err := r.cfg.Telemetry.GetSettleDelay()
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("parsing settle delay: %w", err)
	}
	if delay > 0 {
		select {
		case <-ctx.Done():
			return models.Snapshot{}, false, ctx.Err()
		case <-time.After(delay):
		}
	}
	return r.poller.Latest(), true, nil
}
