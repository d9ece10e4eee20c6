package observer

import "sync"

// DefaultCapacity is the buffer size BufferedObserver uses when
// NewBufferedObserver is given a non-positive capacity.
const DefaultCapacity = 1024

// BufferedObserver accumulates events between Drain calls (spec.md §4.8).
// Once full, it drops the newest incoming event rather than blocking the
// solver or evicting already-buffered history, and counts the drop.
type BufferedObserver struct {
	mu       sync.Mutex
	capacity int
	events   []Event
	dropped  uint64
}

// NewBufferedObserver constructs a BufferedObserver holding up to capacity
// events before it starts dropping. capacity <= 0 is replaced by DefaultCapacity.
func NewBufferedObserver(capacity int) *BufferedObserver {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &BufferedObserver{capacity: capacity}
}

// Notify implements Observer.
func (b *BufferedObserver) Notify(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) >= b.capacity {
		b.dropped++
		return
	}
	b.events = append(b.events, e)
}

// Drain returns every buffered event, in delivery order, and empties the
// buffer. Safe to call from a different goroutine than the solver.
func (b *BufferedObserver) Drain() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.events
	b.events = nil
	return out
}

// Dropped reports how many events have been discarded because the buffer
// was full at delivery time.
func (b *BufferedObserver) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}
