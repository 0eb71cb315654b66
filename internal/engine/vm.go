package engine

import (
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// residentTask tracks one task's execution progress on a VM. Remaining work
// is in length units (million instructions, per-core).
type residentTask struct {
	task      models.Task
	remaining float64
}

// vm is the runtime state of one placed virtual machine under a time-shared
// scheduler: resident tasks execute concurrently, dividing the VM's capacity
// when their combined core demand exceeds the VM's cores.
type vm struct {
	spec      models.VMSpec
	hostIndex int

	residents  map[int]*residentTask
	lastUpdate float64
	epoch      uint64
}

func newVM(spec models.VMSpec, hostIndex int) *vm {
	return &vm{
		spec:      spec,
		hostIndex: hostIndex,
		residents: make(map[int]*residentTask),
	}
}

// shareScale returns the fraction of its demanded rate each resident task
// receives. With demand at or below the VM's cores every task runs at the
// full per-core MIPS rating; above that, capacity divides proportionally.
func (v *vm) shareScale() float64 {
	demand := 0
	for _, rt := range v.residents {
		demand += rt.task.RequiredCores
	}
	if demand <= v.spec.Cores {
		return 1.0
	}
	return float64(v.spec.Cores) / float64(demand)
}

// rate returns the current processing rate in length units per simulated
// second. Task length is per-core work, so the uncontended rate is the VM's
// per-core MIPS rating.
func (v *vm) rate() float64 {
	return v.spec.MIPS * v.shareScale()
}

// advanceTo progresses all resident tasks from lastUpdate to now at the rate
// that held over that span. Rates only change at events, so the span rate is
// constant.
func (v *vm) advanceTo(now float64) {
	dt := now - v.lastUpdate
	if dt > 0 {
		progress := v.rate() * dt
		for _, rt := range v.residents {
			rt.remaining -= progress
			if rt.remaining < 0 {
				rt.remaining = 0
			}
		}
	}
	v.lastUpdate = now
}

// admit places a task on the VM. Callers advance the VM to the current time
// first so earlier residents are charged at the pre-admission rate.
func (v *vm) admit(task models.Task) {
	v.residents[task.ID] = &residentTask{
		task:      task,
		remaining: task.LengthUnits,
	}
	v.epoch++
}

// release removes a finished task from the VM.
func (v *vm) release(taskID int) {
	delete(v.residents, taskID)
	v.epoch++
}

// nextFinisher returns the resident task that will finish first at the
// current rate, with its projected finish time. Ties resolve to the lowest
// task ID so runs are deterministic.
func (v *vm) nextFinisher() (taskID int, finishAt float64, ok bool) {
	if len(v.residents) == 0 {
		return 0, 0, false
	}
	rate := v.rate()

	first := true
	for id, rt := range v.residents {
		t := v.lastUpdate + rt.remaining/rate
		if first || t < finishAt || (t == finishAt && id < taskID) {
			taskID, finishAt = id, t
			first = false
		}
	}
	return taskID, finishAt, true
}
