package analysis

import (
	"github.com/cloudmirror/simulation-core/internal/resource"
	"github.com/cloudmirror/simulation-core/pkg/models"
)

const (
	hoursPerDay  = 24
	daysPerMonth = 30
)

// BuildCost prices each finished task at ratePerSecond dollars of simulated
// execution time. The total is treated as an hourly figure; the monthly
// projection assumes a 30-day month. The resource model's own rate card
// yields the separate datacenter cost breakdown; a nil model leaves it zero.
func BuildCost(tasks []models.CompletedTask, snap models.Snapshot, ratePerSecond float64, model *resource.Model) models.CostReport {
	report := models.CostReport{
		ClassCosts:     make(map[models.WorkloadClass]float64),
		ClassSharesPct: make(map[models.WorkloadClass]float64),
	}

	var execSeconds float64
	for _, t := range tasks {
		if !t.Finished {
			continue
		}
		cost := t.ExecutionTimeSeconds * ratePerSecond
		report.TotalCost += cost
		report.ClassCosts[t.Class] += cost
		execSeconds += t.ExecutionTimeSeconds
	}

	report.HourlyCost = report.TotalCost
	report.MonthlyCost = report.TotalCost * hoursPerDay * daysPerMonth

	requests := snap.RequestCount
	if requests < 1 {
		requests = 1
	}
	report.CostPerRequest = report.TotalCost / requests

	if report.TotalCost > 0 {
		for class, cost := range report.ClassCosts {
			report.ClassSharesPct[class] = cost / report.TotalCost * 100
		}
	}

	if model != nil {
		report.Datacenter = buildDatacenterCost(model, execSeconds)
	}
	return report
}

// buildDatacenterCost applies the datacenter's rate card: execution time at
// the processing rate, plus each provisioned VM's memory, storage and
// bandwidth allocations.
func buildDatacenterCost(model *resource.Model, execSeconds float64) models.DatacenterCost {
	dc := models.DatacenterCost{
		Processing: execSeconds * model.Cost.PerSecond,
	}
	for _, vm := range model.VMs {
		dc.Memory += float64(vm.RAMMB) * model.Cost.PerMBRAM
		dc.Storage += float64(vm.DiskMB) * model.Cost.PerMBStorage
		dc.Bandwidth += float64(vm.BandwidthMbps) * model.Cost.PerMbpsBw
	}
	dc.Total = dc.Processing + dc.Memory + dc.Storage + dc.Bandwidth
	return dc
}
