// Package observer implements the generation event stream (spec.md §4.8):
// a single-producer, multi-consumer sequence of Events a solver emits
// during one generation attempt, and the listeners that receive them.
//
// What:
//
//   - Event is a closed set of five kinds (Reset, VariantEliminated,
//     CellDecided, Contradiction, Done), each carrying a monotonically
//     increasing sequence id assigned by Hub.
//   - Observer is the read-only subscriber contract: Notify receives
//     events by value, so an observer cannot reach back into solver state.
//   - BufferedObserver batches events between explicit Drain calls, per
//     spec.md §4.8's "buffered observer".
//   - LoggingObserver (ambient addition) streams events straight to a
//     structured zerolog.Logger, for operational visibility during long
//     or batch generation runs.
//
// Why:
//
//   - Grounded on lvlath/graph's BFSOptions callback hooks
//     (OnEnqueue/OnDequeue/OnVisit), generalised from single-subscriber
//     inline callbacks into a proper pub/sub Hub: a solver here may have
//     several independent observers (a test assertion, a log sink, a
//     visualization report) rather than one caller-supplied callback set.
//
// Delivery is ordered per solver (spec.md §5); the solver never blocks on
// a slow observer — a full BufferedObserver drops the newest event and
// counts the drop rather than applying backpressure (spec.md §9, "buffered,
// bounded-or-drop is acceptable and must be documented per observer").
package observer
