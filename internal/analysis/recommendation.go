package analysis

import (
	"fmt"

	"github.com/cloudmirror/simulation-core/pkg/models"
)

// Threshold rules for recommendations. All rules are independent and all
// are evaluated.
const (
	pageRenderingSlowSeconds = 8.0
	apiProcessingSlowSeconds = 5.0
	cpuScaleUpPct            = 70.0
	cpuUnderusedPct          = 25.0
	responseSlowMs           = 200.0
	responseExcellentMs      = 50.0
)

// BuildRecommendations evaluates the threshold rules against per-class
// averages and the snapshot that drove the run.
func BuildRecommendations(perf models.PerformanceReport, snap models.Snapshot) []models.Recommendation {
	recs := make([]models.Recommendation, 0, 4)

	if avg, ok := perf.ClassAvgSeconds[models.ClassPageRendering]; ok {
		if avg > pageRenderingSlowSeconds {
			recs = append(recs, models.Recommendation{
				Topic:    "page_rendering",
				Severity: "warn",
				Message:  fmt.Sprintf("Page rendering is slow (%.1fs avg)", avg),
				Hint:     "Consider static generation, incremental regeneration, or caching",
			})
		} else {
			recs = append(recs, models.Recommendation{
				Topic:    "page_rendering",
				Severity: "ok",
				Message:  fmt.Sprintf("Page rendering is optimal (%.1fs avg)", avg),
			})
		}
	}

	if avg, ok := perf.ClassAvgSeconds[models.ClassAPIProcessing]; ok {
		if avg > apiProcessingSlowSeconds {
			recs = append(recs, models.Recommendation{
				Topic:    "api_processing",
				Severity: "warn",
				Message:  fmt.Sprintf("API processing is slow (%.1fs avg)", avg),
				Hint:     "Consider database optimization, API caching, or rate limiting",
			})
		} else {
			recs = append(recs, models.Recommendation{
				Topic:    "api_processing",
				Severity: "ok",
				Message:  fmt.Sprintf("API performance is excellent (%.1fs avg)", avg),
			})
		}
	}

	switch {
	case snap.CPUUsagePct > cpuScaleUpPct:
		recs = append(recs, models.Recommendation{
			Topic:    "cpu",
			Severity: "warn",
			Message:  fmt.Sprintf("High CPU usage (%.1f%%), scale up recommended", snap.CPUUsagePct),
			Hint:     "Add more CPU cores or horizontal scaling",
		})
	case snap.CPUUsagePct < cpuUnderusedPct:
		recs = append(recs, models.Recommendation{
			Topic:    "cpu",
			Severity: "info",
			Message:  fmt.Sprintf("Low CPU usage (%.1f%%), cost optimization opportunity", snap.CPUUsagePct),
			Hint:     "Consider smaller instance sizes",
		})
	default:
		recs = append(recs, models.Recommendation{
			Topic:    "cpu",
			Severity: "ok",
			Message:  fmt.Sprintf("CPU usage is optimal (%.1f%%)", snap.CPUUsagePct),
		})
	}

	switch {
	case snap.ResponseTimeMs > responseSlowMs:
		recs = append(recs, models.Recommendation{
			Topic:    "response_time",
			Severity: "warn",
			Message:  fmt.Sprintf("Slow response times (%.1fms)", snap.ResponseTimeMs),
			Hint:     "Optimize database queries, add caching, or a CDN",
		})
	case snap.ResponseTimeMs < responseExcellentMs:
		recs = append(recs, models.Recommendation{
			Topic:    "response_time",
			Severity: "ok",
			Message:  fmt.Sprintf("Excellent response times (%.1fms)", snap.ResponseTimeMs),
		})
	default:
		recs = append(recs, models.Recommendation{
			Topic:    "response_time",
			Severity: "ok",
			Message:  fmt.Sprintf("Good response times (%.1fms)", snap.ResponseTimeMs),
		})
	}

	return recs
}
