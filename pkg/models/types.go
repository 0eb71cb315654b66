package models

import "time"

// WorkloadClass identifies one of the five fixed task classes.
type WorkloadClass string

const (
	ClassPageRendering   WorkloadClass = "page_rendering"
	ClassAPIProcessing   WorkloadClass = "api_processing"
	ClassStaticAsset     WorkloadClass = "static_asset"
	ClassImageProcessing WorkloadClass = "image_processing"
	ClassBuildDeploy     WorkloadClass = "build_deploy"
)

// AllWorkloadClasses lists the classes in generation (and report) order.
var AllWorkloadClasses = []WorkloadClass{
	ClassPageRendering,
	ClassAPIProcessing,
	ClassStaticAsset,
	ClassImageProcessing,
	ClassBuildDeploy,
}

// Label returns the human-readable class name used in console reports.
func (c WorkloadClass) Label() string {
	switch c {
	case ClassPageRendering:
		return "Page Rendering"
	case ClassAPIProcessing:
		return "API Processing"
	case ClassStaticAsset:
		return "Static Assets"
	case ClassImageProcessing:
		return "Image Processing"
	case ClassBuildDeploy:
		return "Build/Deploy"
	}
	return string(c)
}

// PageViews holds per-category page view counts from the telemetry producer.
type PageViews struct {
	Home  float64 `json:"home"`
	API   float64 `json:"api"`
	Other float64 `json:"other"`
}

// Snapshot is one immutable telemetry reading. A fresh value replaces the
// previous one every polling interval; consumers never mutate it.
type Snapshot struct {
	ProjectName       string    `json:"projectName"`
	ResponseTimeMs    float64   `json:"responseTime"`
	CPUUsagePct       float64   `json:"cpuUsage"`
	MemoryUsageMB     float64   `json:"memoryUsage"`
	RequestCount      float64   `json:"requestCount"`
	ErrorCount        float64   `json:"errorCount"`
	SuccessCount      float64   `json:"successCount"`
	ActiveConnections float64   `json:"activeConnections"`
	Pages             PageViews `json:"pages"`

	// Synthetic marks generated fallback readings. The comparison report is
	// suppressed for synthetic snapshots.
	Synthetic bool `json:"synthetic,omitempty"`
}

// ScaleFactors are the clamped multipliers derived from one Snapshot.
type ScaleFactors struct {
	CPU      float64 `json:"cpu"`
	Response float64 `json:"response"`
	Load     float64 `json:"load"`
}

// HostSpec describes one simulated physical host.
type HostSpec struct {
	Class         string  `json:"class"`
	Cores         int     `json:"cores"`
	MIPSPerCore   float64 `json:"mips_per_core"`
	RAMMB         int     `json:"ram_mb"`
	StorageMB     int     `json:"storage_mb"`
	BandwidthMbps int     `json:"bandwidth_mbps"`
}

// VMSpec describes one simulated virtual machine, sized from the base role
// constants and the scale factors of the current run.
type VMSpec struct {
	Role          string  `json:"role"`
	Cores         int     `json:"cores"`
	RAMMB         int     `json:"ram_mb"`
	BandwidthMbps int     `json:"bandwidth_mbps"`
	MIPS          float64 `json:"mips"`
	DiskMB        int     `json:"disk_mb"`
}

// Task is one schedulable unit of simulated work (a cloudlet). Length is an
// instruction-count proxy converted to execution time via VM MIPS.
type Task struct {
	ID            int           `json:"id"`
	Class         WorkloadClass `json:"class"`
	LengthUnits   float64       `json:"length_units"`
	RequiredCores int           `json:"required_cores"`
	FileSizeKB    int           `json:"file_size_kb"`
	OutputSizeKB  int           `json:"output_size_kb"`
}

// CompletedTask is a Task plus its observed simulation outcome. Tasks that
// never scheduled or never finished carry Finished=false and a zero time.
type CompletedTask struct {
	Task
	VMRole               string  `json:"vm_role,omitempty"`
	ExecutionTimeSeconds float64 `json:"execution_time_seconds"`
	Finished             bool    `json:"finished"`
}

// PerformanceReport aggregates execution outcomes per workload class.
type PerformanceReport struct {
	TotalTasks       int                       `json:"total_tasks"`
	FinishedTasks    int                       `json:"finished_tasks"`
	SuccessRatio     float64                   `json:"success_ratio"`
	TotalTimeSeconds float64                   `json:"total_time_seconds"`
	ClassAvgSeconds  map[WorkloadClass]float64 `json:"class_avg_seconds"`
	ClassTaskCounts  map[WorkloadClass]int     `json:"class_task_counts"`
}

// DatacenterCost prices the run against the datacenter's own rate card:
// processing time at the per-second rate plus the provisioned VM fleet's
// memory, storage and bandwidth allocations.
type DatacenterCost struct {
	Processing float64 `json:"processing"`
	Memory     float64 `json:"memory"`
	Storage    float64 `json:"storage"`
	Bandwidth  float64 `json:"bandwidth"`
	Total      float64 `json:"total"`
}

// CostReport estimates infrastructure cost from simulated execution time.
type CostReport struct {
	TotalCost      float64                   `json:"total_cost"`
	HourlyCost     float64                   `json:"hourly_cost"`
	MonthlyCost    float64                   `json:"monthly_cost"`
	CostPerRequest float64                   `json:"cost_per_request"`
	ClassCosts     map[WorkloadClass]float64 `json:"class_costs"`
	ClassSharesPct map[WorkloadClass]float64 `json:"class_shares_pct"`
	Datacenter     DatacenterCost            `json:"datacenter"`
}

// ComparisonReport relates real telemetry to the simulated outcome. Only
// produced when a real (non-synthetic) snapshot drove the run.
type ComparisonReport struct {
	RealResponseTimeMs float64 `json:"real_response_time_ms"`
	SimulatedAvgMs     float64 `json:"simulated_avg_ms"`
	AccuracyPct        float64 `json:"accuracy_pct"`
	RealCPUUsagePct    float64 `json:"real_cpu_usage_pct"`
	RealRequestCount   float64 `json:"real_request_count"`
}

// Recommendation is one threshold-rule finding.
type Recommendation struct {
	Topic    string `json:"topic"`
	Severity string `json:"severity"` // "ok", "warn" or "info"
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
}

// Report bundles everything produced from one simulation run.
type Report struct {
	RunID           string            `json:"run_id"`
	GeneratedAt     time.Time         `json:"generated_at"`
	ProjectName     string            `json:"project_name"`
	TelemetryDriven bool              `json:"telemetry_driven"`
	Snapshot        Snapshot          `json:"snapshot"`
	Tasks           []CompletedTask   `json:"tasks"`
	Performance     PerformanceReport `json:"performance"`
	Cost            CostReport        `json:"cost"`
	Comparison      *ComparisonReport `json:"comparison,omitempty"`
	Recommendations []Recommendation  `json:"recommendations"`
}
