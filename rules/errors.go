package rules

import (
	"errors"

	"github.com/katalvlaran/wfc/grid"
)

// Sentinel errors for rule compilation (spec.md §7).
var (
	// ErrNoModels indicates the model collection contains no models.
	ErrNoModels = errors.New("rules: model collection is empty")

	// ErrUnknownSocket indicates a model references a socket id that was
	// never allocated by the given socket.SocketCollection.
	ErrUnknownSocket = errors.New("rules: model references an unknown socket id")

	// ErrInconsistentRules indicates the compiler could not enforce the
	// symmetry invariant (u ∈ allowed[v,d] ⇔ v ∈ allowed[u,opposite(d)]).
	ErrInconsistentRules = errors.New("rules: compiled allowed-neighbour relation is not symmetric")
)

// LivenessWarning records a non-fatal finding from Build's liveness pass
// (spec.md §4.3 step 5): variant Variant never appears on the right-hand
// side of allowed[·, Direction], so it can never be placed next to an
// already-decided neighbour in that direction.
type LivenessWarning struct {
	Variant   int
	Direction grid.Direction
}
