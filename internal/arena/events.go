package arena

// CollisionEvent signals that the player overlapped a collider.
// It carries no payload: consumers only care whether one happened.
type CollisionEvent struct{}

// EventQueue holds the collision events of the current tick.
type EventQueue struct {
	events []CollisionEvent
}

// Send appends an event.
func (q *EventQueue) Send(ev CollisionEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Empty reports whether no event is pending.
func (q *EventQueue) Empty() bool {
	return len(q.events) == 0
}

// Clear drops all pending events.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}
