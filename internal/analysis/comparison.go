package analysis

import (
	"math"

	"github.com/cloudmirror/simulation-core/pkg/models"
	"github.com/cloudmirror/simulation-core/pkg/utils"
)

// BuildComparison relates the real response time to the simulated average.
// Returns nil when no task finished, since there is nothing to compare.
func BuildComparison(tasks []models.CompletedTask, snap models.Snapshot) *models.ComparisonReport {
	execMs := make([]float64, 0, len(tasks))
	for _, t := range tasks {
		if t.Finished {
			execMs = append(execMs, t.ExecutionTimeSeconds*1000)
		}
	}
	if len(execMs) == 0 {
		return nil
	}

	simulatedAvgMs := utils.Mean(execMs)
	report := &models.ComparisonReport{
		RealResponseTimeMs: snap.ResponseTimeMs,
		SimulatedAvgMs:     simulatedAvgMs,
		RealCPUUsagePct:    snap.CPUUsagePct,
		RealRequestCount:   snap.RequestCount,
	}
	if snap.ResponseTimeMs > 0 && simulatedAvgMs > 0 {
		report.AccuracyPct = Accuracy(snap.ResponseTimeMs, simulatedAvgMs)
	}
	return report
}

// Accuracy scores how closely the simulated time tracks the real one, as a
// percentage in [0, 100]. Equal values score 100.
func Accuracy(real, simulated float64) float64 {
	diff := math.Abs(real-simulated) / math.Max(real, simulated) * 100
	return math.Max(0, 100-diff)
}
