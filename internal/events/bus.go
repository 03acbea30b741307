package events

import "sync"

// EventKind represents the type of change the journal made.
type EventKind string

const (
	EventEntryAdded          EventKind = "entry_added"
	EventVitalAdded          EventKind = "vital_added"
	EventMedicationAdded     EventKind = "medication_added"
	EventGoalAdded           EventKind = "goal_added"
	EventGoalProgressUpdated EventKind = "goal_progress_updated"
	EventInsightAdded        EventKind = "insight_added"
)

// Event carries only the kind and the affected id; subscribers read the
// current state back from the journal.
type Event struct {
	Kind EventKind `json:"kind"`
	ID   string    `json:"id"`
}

// Bus is a lightweight in-process fan-out backed by one buffered channel per subscriber.
type Bus struct {
	mu     sync.Mutex
	buffer int
	next   int
	subs   map[int]chan Event
}

// NewBus creates a bus whose subscribers each get the given buffer size.
func NewBus(buffer int) *Bus {
	return &Bus{buffer: buffer, subs: map[int]chan Event{}}
}

// Publish offers evt to every subscriber without blocking.
// Returns the number of subscribers that accepted it; a full subscriber drops the event.
func (b *Bus) Publish(evt Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- evt:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribe returns a read-only channel and a cancel func that closes it.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers reports the current subscriber count.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
