package telemetry

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloudmirror/simulation-core/pkg/logger"
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// Poller periodically pulls a snapshot from the source and republishes the
// latest one. Publication is a single atomic pointer swap, so readers always
// observe a complete snapshot. On fetch failure it substitutes a synthetic
// reading; a run is never blocked by missing telemetry.
type Poller struct {
	source   Source
	synth    *SyntheticGenerator
	interval time.Duration
	logger   *slog.Logger

	latest atomic.Pointer[models.Snapshot]

	pollsTotal   prometheus.Counter
	pollFailures prometheus.Counter
	cpuUsage     prometheus.Gauge
	responseTime prometheus.Gauge
	requestCount prometheus.Gauge
}

// NewPoller creates a poller over the given source. The synthetic generator
// supplies fallback snapshots.
func NewPoller(source Source, synth *SyntheticGenerator, interval time.Duration) *Poller {
	p := &Poller{
		source:   source,
		synth:    synth,
		interval: interval,
		logger:   logger.Default,
		pollsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_polls_total",
			Help: "Total snapshot poll attempts",
		}),
		pollFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "telemetry_poll_failures_total",
			Help: "Poll attempts that fell back to a synthetic snapshot",
		}),
		cpuUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "telemetry_cpu_usage_percent",
			Help: "CPU usage from the latest snapshot",
		}),
		responseTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "telemetry_response_time_ms",
			Help: "Response time from the latest snapshot",
		}),
		requestCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "telemetry_request_count",
			Help: "Request count from the latest snapshot",
		}),
	}
	return p
}

// SetLogger sets the poller's logger
func (p *Poller) SetLogger(l *slog.Logger) {
	p.logger = l
}

// Register registers the poller's metrics with a Prometheus registry.
func (p *Poller) Register(reg prometheus.Registerer) {
	reg.MustRegister(p.pollsTotal, p.pollFailures, p.cpuUsage, p.responseTime, p.requestCount)
}

// Start polls immediately and then on every interval tick until ctx is
// cancelled. It blocks; run it in its own goroutine.
func (p *Poller) Start(ctx context.Context) {
	p.pollOnce()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("telemetry poller stopped")
			return
		case <-ticker.C:
			p.pollOnce()
		}
	}
}

// Latest returns the most recently published snapshot. Before the first
// publication it returns a synthetic snapshot, so callers never see "no
// data".
func (p *Poller) Latest() models.Snapshot {
	if snap := p.latest.Load(); snap != nil {
		return *snap
	}
	return p.synth.Generate()
}

func (p *Poller) pollOnce() {
	p.pollsTotal.Inc()

	snap, err := p.source.FetchLatest()
	if err != nil {
		p.pollFailures.Inc()
		snap = p.synth.Generate()
		p.logger.Warn("telemetry unavailable, using synthetic snapshot", "error", err)
	} else {
		p.logger.Info("snapshot polled",
			"project", snap.ProjectName,
			"cpu_pct", snap.CPUUsagePct,
			"response_ms", snap.ResponseTimeMs,
			"requests", snap.RequestCount)
	}

	p.cpuUsage.Set(snap.CPUUsagePct)
	p.responseTime.Set(snap.ResponseTimeMs)
	p.requestCount.Set(snap.RequestCount)

	p.latest.Store(&snap)
}
