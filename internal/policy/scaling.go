// Package policy converts a telemetry snapshot into the clamped capacity and
// workload multipliers that size a simulation run.
package policy

import (
	"github.com/cloudmirror/simulation-core/pkg/models"
	"github.com/cloudmirror/simulation-core/pkg/utils"
)

// Baselines are the assumed "normal" operating point; scaling is relative to
// them. Clamps keep outlier telemetry from producing degenerate VM sizes or
// unbounded workload volume.
const (
	cpuBaselinePct     = 40.0
	responseBaselineMs = 100.0
	loadBaselineReqs   = 100.0

	cpuScaleMin      = 0.5
	cpuScaleMax      = 2.5
	responseScaleMin = 0.4
	responseScaleMax = 2.0
	loadScaleMin     = 0.6
	loadScaleMax     = 1.8

	// The datacenter-level factor uses a coarser baseline than the per-VM
	// cpu factor: host scale reflects physical capacity planning, VM scale
	// per-role sizing. Kept independent on purpose.
	datacenterBaselinePct = 35.0
	datacenterScaleMin    = 0.7

	mipsScaleMin = 0.5
	mipsScaleMax = 2.2
)

// Compute maps one snapshot to scale factors. Pure: identical snapshots
// yield identical factors.
func Compute(snap models.Snapshot) models.ScaleFactors {
	return models.ScaleFactors{
		CPU:      utils.ClampFloat64(snap.CPUUsagePct/cpuBaselinePct, cpuScaleMin, cpuScaleMax),
		Response: utils.ClampFloat64(snap.ResponseTimeMs/responseBaselineMs, responseScaleMin, responseScaleMax),
		Load:     utils.ClampFloat64(snap.RequestCount/loadBaselineReqs, loadScaleMin, loadScaleMax),
	}
}

// Unit returns neutral factors, used when the run is not telemetry-driven.
func Unit() models.ScaleFactors {
	return models.ScaleFactors{CPU: 1.0, Response: 1.0, Load: 1.0}
}

// DatacenterScale returns the host-level capacity factor for one snapshot.
func DatacenterScale(snap models.Snapshot) float64 {
	scale := snap.CPUUsagePct / datacenterBaselinePct
	if scale < datacenterScaleMin {
		return datacenterScaleMin
	}
	return scale
}

// MIPSScale returns the per-VM processing-rate factor for one snapshot.
func MIPSScale(snap models.Snapshot) float64 {
	return utils.ClampFloat64(snap.CPUUsagePct/cpuBaselinePct, mipsScaleMin, mipsScaleMax)
}
