package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/cloudmirror/simulation-core/pkg/models"
)

const (
	wideRule   = 75
	narrowRule = 55
)

// Render writes the console report. Section order is stable: banner,
// current metrics (telemetry mode only), task table, performance, cost,
// comparison (telemetry mode only), recommendations.
func Render(w io.Writer, report *models.Report) {
	renderBanner(w, report)
	if report.TelemetryDriven {
		renderCurrentMetrics(w, report.Snapshot)
	}
	renderTaskTable(w, report.Tasks)
	renderPerformance(w, report.Performance)
	renderCost(w, report.Cost)
	if report.Comparison != nil {
		renderComparison(w, *report.Comparison)
	}
	renderRecommendations(w, report.Recommendations)
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("=", n))
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	rule(w, narrowRule)
	fmt.Fprintln(w, title)
	rule(w, narrowRule)
}

func projectLabel(report *models.Report) string {
	if report.ProjectName != "" {
		return report.ProjectName
	}
	return "application"
}

func renderBanner(w io.Writer, report *models.Report) {
	fmt.Fprintln(w)
	rule(w, wideRule)
	fmt.Fprintf(w, "Cloud Infrastructure Analysis for %s (%s)\n", projectLabel(report), report.RunID)
	rule(w, wideRule)
}

func renderCurrentMetrics(w io.Writer, snap models.Snapshot) {
	fmt.Fprintln(w, "\nCurrent application metrics:")
	fmt.Fprintf(w, "  Response Time:      %.2f ms\n", snap.ResponseTimeMs)
	fmt.Fprintf(w, "  CPU Usage:          %.1f%%\n", snap.CPUUsagePct)
	fmt.Fprintf(w, "  Memory Usage:       %.1f MB\n", snap.MemoryUsageMB)
	fmt.Fprintf(w, "  Total Requests:     %.0f\n", snap.RequestCount)
	fmt.Fprintf(w, "  Active Connections: %.0f\n", snap.ActiveConnections)
}

func renderTaskTable(w io.Writer, tasks []models.CompletedTask) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-5s %-18s %-15s %10s %6s %10s %10s\n",
		"ID", "Class", "VM", "Length", "Cores", "Status", "Time (s)")
	fmt.Fprintln(w, strings.Repeat("-", wideRule))
	for _, t := range tasks {
		status := "finished"
		timeCol := fmt.Sprintf("%.2f", t.ExecutionTimeSeconds)
		if !t.Finished {
			status = "failed"
			timeCol = "-"
		}
		fmt.Fprintf(w, "%-5d %-18s %-15s %10.0f %6d %10s %10s\n",
			t.ID, t.Class.Label(), t.VMRole, t.LengthUnits, t.RequiredCores, status, timeCol)
	}
}

func renderPerformance(w io.Writer, perf models.PerformanceReport) {
	section(w, "Performance Analysis")
	fmt.Fprintf(w, "Successful simulations: %d/%d (%.1f%%)\n",
		perf.FinishedTasks, perf.TotalTasks, perf.SuccessRatio*100)
	fmt.Fprintf(w, "Total simulation time: %.2f seconds\n", perf.TotalTimeSeconds)

	fmt.Fprintln(w, "\nAverage execution times by component:")
	for _, class := range models.AllWorkloadClasses {
		if avg, ok := perf.ClassAvgSeconds[class]; ok {
			fmt.Fprintf(w, "  %-20s: %.2f seconds\n", class.Label(), avg)
		}
	}
}

func renderCost(w io.Writer, cost models.CostReport) {
	section(w, "Infrastructure Cost Analysis")
	fmt.Fprintf(w, "Estimated hourly cost:  $%.4f\n", cost.HourlyCost)
	fmt.Fprintf(w, "Estimated monthly cost: $%.2f\n", cost.MonthlyCost)
	fmt.Fprintf(w, "Cost per request:       $%.6f\n", cost.CostPerRequest)

	fmt.Fprintln(w, "\nCost breakdown by component:")
	for _, class := range models.AllWorkloadClasses {
		if c, ok := cost.ClassCosts[class]; ok {
			fmt.Fprintf(w, "  %-20s: $%.4f (%.1f%%)\n", class.Label(), c, cost.ClassSharesPct[class])
		}
	}

	if cost.Datacenter.Total > 0 {
		fmt.Fprintln(w, "\nDatacenter rate card:")
		fmt.Fprintf(w, "  Processing:  $%.4f\n", cost.Datacenter.Processing)
		fmt.Fprintf(w, "  Memory:      $%.2f\n", cost.Datacenter.Memory)
		fmt.Fprintf(w, "  Storage:     $%.2f\n", cost.Datacenter.Storage)
		fmt.Fprintf(w, "  Bandwidth:   $%.2f\n", cost.Datacenter.Bandwidth)
		fmt.Fprintf(w, "  Total:       $%.2f\n", cost.Datacenter.Total)
	}
}

func renderComparison(w io.Writer, cmp models.ComparisonReport) {
	section(w, "Real App vs Simulation Comparison")
	fmt.Fprintf(w, "Real response time:  %.2f ms\n", cmp.RealResponseTimeMs)
	fmt.Fprintf(w, "Simulated avg time:  %.2f ms\n", cmp.SimulatedAvgMs)
	fmt.Fprintf(w, "Simulation accuracy: %.1f%%\n", cmp.AccuracyPct)
	fmt.Fprintf(w, "Real CPU usage:      %.1f%% (influenced infrastructure scaling)\n", cmp.RealCPUUsagePct)
	fmt.Fprintf(w, "Real request count:  %.0f (scaled workload generation)\n", cmp.RealRequestCount)
}

func renderRecommendations(w io.Writer, recs []models.Recommendation) {
	section(w, "Optimization Recommendations")
	for _, rec := range recs {
		marker := "OK "
		switch rec.Severity {
		case "warn":
			marker = "!! "
		case "info":
			marker = "-> "
		}
		fmt.Fprintf(w, "  %s%s\n", marker, rec.Message)
		if rec.Hint != "" {
			fmt.Fprintf(w, "      %s\n", rec.Hint)
		}
	}

	fmt.Fprintln(w, "\nGeneral optimization tips:")
	fmt.Fprintln(w, "  - Implement proper caching strategies (in-memory cache, CDN)")
	fmt.Fprintln(w, "  - Serve optimized image formats and sizes")
	fmt.Fprintln(w, "  - Monitor core web vitals and optimize accordingly")
	fmt.Fprintln(w, "  - Consider serverless functions for API routes")
	fmt.Fprintln(w, "  - Keep database indexes aligned with query patterns")
}
