// Package engine is the discrete-event simulation core. A broker assigns
// every task to a VM upfront, each VM runs a time-shared scheduler, and the
// event loop advances a simulated clock until no events remain.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cloudmirror/simulation-core/internal/resource"
	"github.com/cloudmirror/simulation-core/pkg/logger"
	"github.com/cloudmirror/simulation-core/pkg/models"
)

// Engine executes one simulation run over a built resource model.
type Engine struct {
	queue    *EventQueue
	handlers map[EventType]EventHandler
	logger   *slog.Logger

	vms      []*vm
	unplaced []models.VMSpec

	clock         float64
	eventsHandled int64
	tasks         map[int]models.Task
	assignment    map[int]int
	finished      map[int]*models.CompletedTask
}

// EventHandler is a function that handles a specific event type
type EventHandler func(*Engine, *Event) error

// New creates an engine for the given resource model, placing the VM fleet
// onto hosts.
func New(model *resource.Model) *Engine {
	e := &Engine{
		queue:    NewEventQueue(),
		handlers: make(map[EventType]EventHandler),
		logger:   logger.Default,
		tasks:    make(map[int]models.Task),
		finished: make(map[int]*models.CompletedTask),
	}
	e.vms, e.unplaced = placeVMs(model, e.logger)

	e.handlers[EventTaskStart] = (*Engine).handleTaskStart
	e.handlers[EventTaskFinish] = (*Engine).handleTaskFinish
	return e
}

// SetLogger sets the engine's logger
func (e *Engine) SetLogger(l *slog.Logger) {
	e.logger = l
}

// PlacedVMs returns the specs of the VMs that found a host.
func (e *Engine) PlacedVMs() []models.VMSpec {
	specs := make([]models.VMSpec, len(e.vms))
	for i, v := range e.vms {
		specs[i] = v.spec
	}
	return specs
}

// Clock returns the current simulated time in seconds.
func (e *Engine) Clock() float64 {
	return e.clock
}

// Run executes the simulation to completion and returns one CompletedTask
// per submitted task, in task-ID order. Tasks no VM could admit come back
// with Finished=false.
func (e *Engine) Run(ctx context.Context, tasks []models.Task) ([]models.CompletedTask, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks submitted")
	}

	for _, t := range tasks {
		e.tasks[t.ID] = t
	}
	e.assignment = assignTasks(tasks, e.vms, e.logger)

	// List submission: every assigned task starts at simulated time zero.
	for _, t := range tasks {
		if _, ok := e.assignment[t.ID]; ok {
			e.queue.Schedule(&Event{Type: EventTaskStart, Time: 0, TaskID: t.ID, VMIndex: e.assignment[t.ID]})
		}
	}

	e.logger.Info("simulation starting",
		"tasks", len(tasks),
		"assigned", len(e.assignment),
		"vms", len(e.vms))

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("simulation cancelled: %w", ctx.Err())
		default:
		}

		event := e.queue.Next()
		if event == nil {
			break
		}
		if event.Time < e.clock {
			return nil, fmt.Errorf("event time %f before simulated clock %f", event.Time, e.clock)
		}
		e.clock = event.Time
		e.eventsHandled++

		handler, ok := e.handlers[event.Type]
		if !ok {
			e.logger.Warn("no handler for event type", "event_type", event.Type)
			continue
		}
		if err := handler(e, event); err != nil {
			return nil, fmt.Errorf("event %s for task %d: %w", event.Type, event.TaskID, err)
		}
	}

	e.logger.Info("simulation finished",
		"sim_seconds", e.clock,
		"events", e.eventsHandled,
		"finished", len(e.finished))

	return e.collect(tasks), nil
}

func (e *Engine) handleTaskStart(event *Event) error {
	v := e.vms[event.VMIndex]
	task, ok := e.tasks[event.TaskID]
	if !ok {
		return fmt.Errorf("unknown task %d", event.TaskID)
	}

	v.advanceTo(e.clock)
	v.admit(task)
	e.scheduleNextFinish(v, event.VMIndex)

	e.logger.Debug("task started",
		"task_id", task.ID,
		"class", task.Class,
		"vm", v.spec.Role,
		"sim_time", e.clock)
	return nil
}

func (e *Engine) handleTaskFinish(event *Event) error {
	v := e.vms[event.VMIndex]
	if event.Epoch != v.epoch {
		// Resident set changed after this finish was projected.
		return nil
	}

	v.advanceTo(e.clock)
	rt, ok := v.residents[event.TaskID]
	if !ok {
		return fmt.Errorf("finish event for task %d not resident on vm %s", event.TaskID, v.spec.Role)
	}

	v.release(event.TaskID)
	e.finished[event.TaskID] = &models.CompletedTask{
		Task:                 rt.task,
		VMRole:               v.spec.Role,
		ExecutionTimeSeconds: e.clock,
		Finished:             true,
	}
	e.scheduleNextFinish(v, event.VMIndex)

	e.logger.Debug("task finished",
		"task_id", event.TaskID,
		"vm", v.spec.Role,
		"exec_seconds", e.clock)
	return nil
}

// scheduleNextFinish projects the VM's earliest completion at the current
// rate. The event carries the VM's epoch so it invalidates itself if the
// resident set changes first.
func (e *Engine) scheduleNextFinish(v *vm, vmIndex int) {
	taskID, finishAt, ok := v.nextFinisher()
	if !ok {
		return
	}
	e.queue.Schedule(&Event{
		Type:    EventTaskFinish,
		Time:    finishAt,
		TaskID:  taskID,
		VMIndex: vmIndex,
		Epoch:   v.epoch,
	})
}

// collect builds the final result list in task-ID order.
func (e *Engine) collect(tasks []models.Task) []models.CompletedTask {
	results := make([]models.CompletedTask, 0, len(tasks))
	for _, t := range tasks {
		if done, ok := e.finished[t.ID]; ok {
			results = append(results, *done)
		} else {
			results = append(results, models.CompletedTask{Task: t, Finished: false})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results
}
