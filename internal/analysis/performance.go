// Package analysis turns the finished task set and the originating snapshot
// into performance, cost, comparison and recommendation reports.
package analysis

import (
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// BuildPerformance aggregates execution outcomes. Non-finished tasks count
// against the success ratio but contribute no timing.
func BuildPerformance(tasks []models.CompletedTask) models.PerformanceReport {
	report := models.PerformanceReport{
		TotalTasks:      len(tasks),
		ClassAvgSeconds: make(map[models.WorkloadClass]float64),
		ClassTaskCounts: make(map[models.WorkloadClass]int),
	}

	classTotals := make(map[models.WorkloadClass]float64)
	for _, t := range tasks {
		if !t.Finished {
			continue
		}
		report.FinishedTasks++
		report.TotalTimeSeconds += t.ExecutionTimeSeconds
		classTotals[t.Class] += t.ExecutionTimeSeconds
		report.ClassTaskCounts[t.Class]++
	}

	if report.TotalTasks > 0 {
		report.SuccessRatio = float64(report.FinishedTasks) / float64(report.TotalTasks)
	}
	for class, total := range classTotals {
		report.ClassAvgSeconds[class] = total / float64(report.ClassTaskCounts[class])
	}
	return report
}
