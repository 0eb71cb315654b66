package engine

import (
	"log/slog"

	"github.com/cloudmirror/simulation-core/internal/resource"
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// hostState tracks remaining host capacity during VM placement.
type hostState struct {
	spec      models.HostSpec
	freeCores int
	freeRAMMB int
	freeDisk  int
}

// placeVMs maps the VM fleet onto hosts first-fit by cores, RAM and disk.
// VMs that fit nowhere are returned separately; the broker never assigns
// work to them.
func placeVMs(model *resource.Model, logger *slog.Logger) (placed []*vm, unplaced []models.VMSpec) {
	hosts := make([]*hostState, 0, len(model.Hosts))
	for _, h := range model.Hosts {
		hosts = append(hosts, &hostState{
			spec:      h,
			freeCores: h.Cores,
			freeRAMMB: h.RAMMB,
			freeDisk:  h.StorageMB,
		})
	}

	for _, spec := range model.VMs {
		fitted := false
		for i, h := range hosts {
			if spec.Cores <= h.freeCores && spec.RAMMB <= h.freeRAMMB && spec.DiskMB <= h.freeDisk {
				h.freeCores -= spec.Cores
				h.freeRAMMB -= spec.RAMMB
				h.freeDisk -= spec.DiskMB
				placed = append(placed, newVM(spec, i))
				fitted = true

				logger.Debug("VM placed",
					"role", spec.Role,
					"host", h.spec.Class,
					"cores", spec.Cores,
					"ram_mb", spec.RAMMB,
					"mips", spec.MIPS)
				break
			}
		}
		if !fitted {
			unplaced = append(unplaced, spec)
			logger.Warn("VM placement failed, no host with capacity",
				"role", spec.Role,
				"cores", spec.Cores,
				"ram_mb", spec.RAMMB)
		}
	}
	return placed, unplaced
}

// assignTasks maps every task to a VM upfront (list-submission policy):
// round-robin across the placed VMs whose core count admits the task. Tasks
// no VM can admit are left unassigned and surface as failures in the
// success ratio.
func assignTasks(tasks []models.Task, vms []*vm, logger *slog.Logger) map[int]int {
	assignment := make(map[int]int, len(tasks))
	if len(vms) == 0 {
		return assignment
	}

	next := 0
	for _, task := range tasks {
		assigned := false
		for probe := 0; probe < len(vms); probe++ {
			idx := (next + probe) % len(vms)
			if vms[idx].spec.Cores >= task.RequiredCores {
				assignment[task.ID] = idx
				next = idx + 1
				assigned = true
				break
			}
		}
		if !assigned {
			logger.Warn("task not schedulable on any VM",
				"task_id", task.ID,
				"class", task.Class,
				"required_cores", task.RequiredCores)
		}
	}
	return assignment
}
