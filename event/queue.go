package event

import "sync"

// Queue is a FIFO event buffer. The frame loop pushes from its single
// writer pass; collaborators drain it once per frame via Consume.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Consume returns all queued events in FIFO order and clears the queue
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}
