package engine

import "container/heap"

// EventType represents the type of simulation event
type EventType string

const (
	// EventTaskStart represents a task beginning execution on its VM
	EventTaskStart EventType = "task_start"

	// EventTaskFinish represents a task's projected completion on its VM
	EventTaskFinish EventType = "task_finish"
)

// Event represents a discrete event in the simulation. Time is simulated
// seconds since run start; wall-clock time plays no part.
type Event struct {
	Type    EventType
	Time    float64
	TaskID  int
	VMIndex int

	// Epoch guards finish events: a VM bumps its epoch whenever its resident
	// set changes, so finish events projected before the change are skipped
	// as stale.
	Epoch uint64

	seq int64 // insertion order, breaks ties deterministically
}

// EventQueue is a priority queue of events ordered by simulated time. The
// event loop is single-threaded, so no locking is needed.
type EventQueue struct {
	events []*Event
	seq    int64
}

// NewEventQueue creates a new event queue
func NewEventQueue() *EventQueue {
	eq := &EventQueue{events: make([]*Event, 0)}
	heap.Init(eq)
	return eq
}

// Len returns the number of events in the queue
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Less orders events by time, then by insertion order
func (eq *EventQueue) Less(i, j int) bool {
	if eq.events[i].Time != eq.events[j].Time {
		return eq.events[i].Time < eq.events[j].Time
	}
	return eq.events[i].seq < eq.events[j].seq
}

// Swap swaps two events in the queue
func (eq *EventQueue) Swap(i, j int) {
	eq.events[i], eq.events[j] = eq.events[j], eq.events[i]
}

// Push adds an event to the queue (heap.Interface)
func (eq *EventQueue) Push(x interface{}) {
	eq.events = append(eq.events, x.(*Event))
}

// Pop removes and returns the last event (heap.Interface)
func (eq *EventQueue) Pop() interface{} {
	old := eq.events
	n := len(old)
	event := old[n-1]
	old[n-1] = nil // avoid memory leak
	eq.events = old[0 : n-1]
	return event
}

// Schedule adds an event to the queue
func (eq *EventQueue) Schedule(event *Event) {
	eq.seq++
	event.seq = eq.seq
	heap.Push(eq, event)
}

// Next removes and returns the next event in time order, or nil when empty
func (eq *EventQueue) Next() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(eq).(*Event)
}

// Peek returns the next event without removing it
func (eq *EventQueue) Peek() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return eq.events[0]
}

// IsEmpty returns true if the queue is empty
func (eq *EventQueue) IsEmpty() bool {
	return eq.Len() == 0
}
