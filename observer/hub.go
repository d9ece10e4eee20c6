package observer

import "sync"

// Hub assigns monotonically increasing sequence ids to events and fans
// them out to every subscribed Observer, in subscription order (spec.md
// §4.8, §5). The zero Hub is ready to use.
type Hub struct {
	mu        sync.Mutex
	seq       uint64
	observers []Observer
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers o to receive every future event. Subscribing mid-run
// is fine; o simply never sees events emitted before it subscribed.
func (h *Hub) Subscribe(o Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.observers = append(h.observers, o)
}

// emit stamps e with the next sequence id and notifies every subscriber,
// in order. The observer snapshot is taken under lock but delivery happens
// outside it, so a slow or resubscribing observer cannot stall Subscribe.
func (h *Hub) emit(e Event) Event {
	h.mu.Lock()
	h.seq++
	e.Seq = h.seq
	observers := make([]Observer, len(h.observers))
	copy(observers, h.observers)
	h.mu.Unlock()

	for _, o := range observers {
		o.Notify(e)
	}
	return e
}

// EmitReset emits a Reset event for the given attempt number.
func (h *Hub) EmitReset(attempt int) {
	h.emit(Event{Kind: Reset, Attempt: attempt})
}

// EmitVariantEliminated emits a VariantEliminated event.
func (h *Hub) EmitVariantEliminated(cell, variant int) {
	h.emit(Event{Kind: VariantEliminated, Cell: cell, Variant: variant})
}

// EmitCellDecided emits a CellDecided event.
func (h *Hub) EmitCellDecided(cell, variant int) {
	h.emit(Event{Kind: CellDecided, Cell: cell, Variant: variant})
}

// EmitContradiction emits a Contradiction event.
func (h *Hub) EmitContradiction(cell int) {
	h.emit(Event{Kind: Contradiction, Cell: cell})
}

// EmitDone emits a Done event carrying the final attempt count.
func (h *Hub) EmitDone(attemptCount int) {
	h.emit(Event{Kind: Done, Attempt: attemptCount})
}
