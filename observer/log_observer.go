package observer

import "github.com/rs/zerolog"

// LoggingObserver streams every event to a structured zerolog.Logger, one
// log line per event, at a level chosen by kind (Contradiction logs at
// Warn, everything else at Debug). Grounded on the pack's ambient use of
// zerolog for operational visibility (smilemakc-mbflow's config/db layers).
type LoggingObserver struct {
	log zerolog.Logger
}

// NewLoggingObserver wraps an existing logger. Callers typically derive it
// via logger.With().Str("component", "wfc").Logger() before passing it in.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{log: logger}
}

// Notify implements Observer.
func (o *LoggingObserver) Notify(e Event) {
	evt := o.log.Debug()
	if e.Kind == Contradiction {
		evt = o.log.Warn()
	}
	evt.Uint64("seq", e.Seq).
		Str("kind", e.Kind.String()).
		Int("attempt", e.Attempt).
		Int("cell", e.Cell).
		Int("variant", e.Variant).
		Msg("wfc generation event")
}
