package ecs

import "github.com/milk9111/boxplatformer/physics"

// CollisionEvent is emitted for every resolved body/obstacle contact.
type CollisionEvent struct {
	Entity   Entity
	Obstacle Entity
	Side     physics.Direction
}

// EventQueue collects the events of one tick. The host drains it after the
// tick; Clear drops whatever was not drained.
type EventQueue struct {
	collisions []CollisionEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.collisions = append(q.collisions, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.collisions) == 0 {
		return nil
	}
	out := q.collisions
	q.collisions = nil
	return out
}

func (q *EventQueue) Clear() {
	if q == nil {
		return
	}
	q.collisions = q.collisions[:0]
}
