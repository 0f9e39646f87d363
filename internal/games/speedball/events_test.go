package speedball

import (
	"testing"
	"time"
)

func TestEventQueueOrder(t *testing.T) {
	var q EventQueue
	t0 := time.Unix(100, 0)

	q.Schedule(Event{Kind: EventNextLevel, FireAt: t0.Add(2 * time.Second)})
	q.Schedule(Event{Kind: EventRespawn, FireAt: t0.Add(time.Second), Epoch: 1})
	q.Schedule(Event{Kind: EventRespawn, FireAt: t0.Add(time.Second), Epoch: 2})

	if due := q.Due(t0); len(due) != 0 {
		t.Errorf("Nothing should be due yet, got %d", len(due))
	}

	due := q.Due(t0.Add(time.Second))
	if len(due) != 2 {
		t.Fatalf("Expected 2 due events, got %d", len(due))
	}
	if due[0].Epoch != 1 || due[1].Epoch != 2 {
		t.Error("Events with equal fire times should keep scheduling order")
	}
	if q.Len() != 1 {
		t.Errorf("Expected 1 pending event, got %d", q.Len())
	}

	due = q.Due(t0.Add(5 * time.Second))
	if len(due) != 1 || due[0].Kind != EventNextLevel {
		t.Errorf("Expected the next-level event, got %+v", due)
	}
}

func TestEventQueueClear(t *testing.T) {
	var q EventQueue
	t0 := time.Unix(100, 0)
	q.Schedule(Event{Kind: EventRespawn, FireAt: t0})
	q.Schedule(Event{Kind: EventNextLevel, FireAt: t0})
	if q.Len() != 2 || q.Pending()[0].Kind != EventRespawn {
		t.Fatalf("Expected both events pending, got %+v", q.Pending())
	}

	q.Clear()
	if q.Len() != 0 {
		t.Error("Clear should drop everything")
	}
}
