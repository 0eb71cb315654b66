// Package server exposes the optional HTTP surface: health, the latest
// snapshot and report, on-demand runs and Prometheus metrics.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloudmirror/simulation-core/internal/runner"
	"github.com/cloudmirror/simulation-core/internal/telemetry"
	"github.com/cloudmirror/simulation-core/pkg/logger"
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// Server serves run reports over HTTP. It keeps the most recent report and
// can execute a fresh run on demand.
type Server struct {
	router *mux.Router
	poller *telemetry.Poller
	runner *runner.Runner
	logger *slog.Logger

	latest atomic.Pointer[models.Report]
}

// New creates a server. The poller may be nil when telemetry is disabled;
// the snapshot endpoint then reports 404.
func New(run *runner.Runner, poller *telemetry.Poller, registry *prometheus.Registry) *Server {
	s := &Server{
		router: mux.NewRouter(),
		poller: poller,
		runner: run,
		logger: logger.Default,
	}

	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/snapshot", s.handleSnapshot).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/report", s.handleReport).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/runs", s.handleCreateRun).Methods(http.MethodPost)
	s.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return s
}

// SetLogger sets the server's logger
func (s *Server) SetLogger(l *slog.Logger) {
	s.logger = l
}

// Handler returns the routable handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// PublishReport stores a report as the latest one served by /v1/report.
func (s *Server) PublishReport(report *models.Report) {
	s.latest.Store(report)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.poller == nil {
		s.writeError(w, http.StatusNotFound, "telemetry polling is disabled")
		return
	}
	snap := s.poller.Latest()
	s.writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report := s.latest.Load()
	if report == nil {
		s.writeError(w, http.StatusNotFound, "no run has completed yet")
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	report, err := s.runner.Run(r.Context())
	if err != nil {
		s.logger.Error("on-demand run failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.latest.Store(report)
	s.writeJSON(w, http.StatusCreated, report)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, code, map[string]string{"error": message})
}
