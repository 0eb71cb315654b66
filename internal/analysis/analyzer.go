package analysis

import (
	"time"

	"github.com/cloudmirror/simulation-core/internal/resource"
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// Analyzer builds the full report for one run.
type Analyzer struct {
	// CostPerSecond is the per-task execution cost rate in dollars.
	CostPerSecond float64
}

// Analyze assembles the report from the finished task set, the snapshot
// that parameterized the run and the resource model it ran on. The
// comparison section is only produced for telemetry-driven runs on a real
// (non-synthetic) snapshot.
func (a Analyzer) Analyze(runID string, snap models.Snapshot, telemetryDriven bool, tasks []models.CompletedTask, model *resource.Model) *models.Report {
	perf := BuildPerformance(tasks)

	report := &models.Report{
		RunID:           runID,
		GeneratedAt:     time.Now(),
		ProjectName:     snap.ProjectName,
		TelemetryDriven: telemetryDriven,
		Snapshot:        snap,
		Tasks:           tasks,
		Performance:     perf,
		Cost:            BuildCost(tasks, snap, a.CostPerSecond, model),
		Recommendations: BuildRecommendations(perf, snap),
	}
	if telemetryDriven && !snap.Synthetic {
		report.Comparison = BuildComparison(tasks, snap)
	}
	return report
}
