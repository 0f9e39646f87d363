package speedball

import (
	"slices"
	"time"
)

// EventKind identifies a deferred orchestrator transition.
type EventKind int

const (
	EventRespawn   EventKind = iota // Put a new ball on the paddle after a loss
	EventNextLevel                  // Advance after a cleared level
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventRespawn:
		return "respawn"
	case EventNextLevel:
		return "nextLevel"
	default:
		return "unknown"
	}
}

// Event is a transition scheduled for a later tick. Epoch is the
// orchestrator epoch at scheduling time; any state change that should
// invalidate pending events moves the epoch on.
type Event struct {
	Kind   EventKind
	FireAt time.Time
	Epoch  uint64
}

// EventQueue holds pending events ordered by fire time.
type EventQueue struct {
	events []Event
}

// Schedule queues an event. Events with equal fire times keep
// scheduling order.
func (q *EventQueue) Schedule(ev Event) {
	i, _ := slices.BinarySearchFunc(q.events, ev.FireAt, func(e Event, t time.Time) int {
		if e.FireAt.After(t) {
			return 1
		}
		return -1
	})
	q.events = slices.Insert(q.events, i, ev)
}

// Due removes and returns every event whose fire time is not after now.
func (q *EventQueue) Due(now time.Time) []Event {
	n := 0
	for n < len(q.events) && !q.events[n].FireAt.After(now) {
		n++
	}
	if n == 0 {
		return nil
	}
	due := slices.Clone(q.events[:n])
	q.events = slices.Delete(q.events, 0, n)
	return due
}

// Clear drops every pending event.
func (q *EventQueue) Clear() { q.events = q.events[:0] }

// Len returns the number of pending events.
func (q *EventQueue) Len() int { return len(q.events) }

// Pending returns the queued events. The slice is owned by the queue.
func (q *EventQueue) Pending() []Event { return q.events }
