package analysis

import (
	"strings"
	"testing"

	"github.com/cloudmirror/simulation-core/pkg/models"
)

func sampleReport(telemetryDriven bool) *models.Report {
	tasks := []models.CompletedTask{
		completed(0, models.ClassPageRendering, 4.0, true),
		completed(1, models.ClassAPIProcessing, 2.0, true),
		completed(2, models.ClassBuildDeploy, 0, false),
	}
	snap := models.Snapshot{ProjectName: "storefront", ResponseTimeMs: 125.5, CPUUsagePct: 45.2, RequestCount: 1547}
	return Analyzer{CostPerSecond: 0.0042}.Analyze("run-test", snap, telemetryDriven, tasks, nil)
}

func TestRenderSectionOrder(t *testing.T) {
	var buf strings.Builder
	Render(&buf, sampleReport(true))
	out := buf.String()

	sections := []string{
		"Cloud Infrastructure Analysis for storefront",
		"Current application metrics:",
		"Status",
		"Performance Analysis",
		"Infrastructure Cost Analysis",
		"Real App vs Simulation Comparison",
		"Optimization Recommendations",
		"General optimization tips:",
	}

	pos := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		if idx < 0 {
			t.Fatalf("Section %q missing from output", section)
		}
		if idx < pos {
			t.Errorf("Section %q appears out of order", section)
		}
		pos = idx
	}
}

func TestRenderNonTelemetryOmitsSections(t *testing.T) {
	var buf strings.Builder
	Render(&buf, sampleReport(false))
	out := buf.String()

	if strings.Contains(out, "Current application metrics:") {
		t.Error("Non-telemetry report should omit the current metrics block")
	}
	if strings.Contains(out, "Real App vs Simulation Comparison") {
		t.Error("Non-telemetry report should omit the comparison block")
	}
	if !strings.Contains(out, "Performance Analysis") {
		t.Error("Performance block should always be present")
	}
}

func TestRenderTaskRows(t *testing.T) {
	var buf strings.Builder
	Render(&buf, sampleReport(true))
	out := buf.String()

	if !strings.Contains(out, "Page Rendering") {
		t.Error("Expected a page rendering row")
	}
	if !strings.Contains(out, "failed") {
		t.Error("Expected the unfinished task to show as failed")
	}
	if !strings.Contains(out, "Successful simulations: 2/3") {
		t.Error("Expected the success ratio line")
	}
}

func TestRenderCostLines(t *testing.T) {
	var buf strings.Builder
	Render(&buf, sampleReport(true))
	out := buf.String()

	for _, line := range []string{"Estimated hourly cost:", "Estimated monthly cost:", "Cost per request:"} {
		if !strings.Contains(out, line) {
			t.Errorf("Expected cost line %q", line)
		}
	}
}

func TestRenderDatacenterRateCard(t *testing.T) {
	report := sampleReport(false)

	var buf strings.Builder
	Render(&buf, report)
	if strings.Contains(buf.String(), "Datacenter rate card:") {
		t.Error("Report without a model should omit the rate card block")
	}

	report.Cost.Datacenter = models.DatacenterCost{Processing: 28, Memory: 983.04, Storage: 126, Total: 1137.04}
	buf.Reset()
	Render(&buf, report)
	if !strings.Contains(buf.String(), "Datacenter rate card:") {
		t.Error("Expected the rate card block")
	}
	if !strings.Contains(buf.String(), "$1137.04") {
		t.Error("Expected the rate card total")
	}
}

func TestRenderUnnamedProject(t *testing.T) {
	report := sampleReport(false)
	report.ProjectName = ""

	var buf strings.Builder
	Render(&buf, report)

	if !strings.Contains(buf.String(), "Cloud Infrastructure Analysis for application") {
		t.Error("Expected fallback project label")
	}
}
