package socket

import (
	"sync"

	"github.com/katalvlaran/wfc/grid"
)

// SocketID is a dense identifier local to one SocketCollection. It carries
// no semantics beyond identity (spec.md §3).
type SocketID int

// SocketCollection allocates SocketIDs and records the symmetric
// socket-to-socket connection relation, refined per relative rotation.
// Grounded on lvlath/core's Graph: a dense-id-keyed, mutex-protected
// adjacency structure (here: per-rotation adjacency over sockets instead of
// per-edge adjacency over vertices).
type SocketCollection struct {
	mu   sync.RWMutex
	next SocketID
	// byRotation[r][a] is the set of sockets connectable to a at relative
	// rotation r. Index 0 is reserved for grid.R0 and so on; see
	// grid.Rotation's iota ordering.
	byRotation [4]map[SocketID]map[SocketID]bool
}

// New constructs an empty SocketCollection.
func New() *SocketCollection {
	sc := &SocketCollection{}
	for r := range sc.byRotation {
		sc.byRotation[r] = make(map[SocketID]map[SocketID]bool)
	}
	return sc
}

// CreateSocket allocates and returns a fresh SocketID.
func (sc *SocketCollection) CreateSocket() SocketID {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	id := sc.next
	sc.next++
	return id
}

// Count reports how many sockets have been created.
func (sc *SocketCollection) Count() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return int(sc.next)
}

// AddConnection asserts a symmetric connection between a and every b in bs,
// valid at every relative rotation. No-op for pairs already connected;
// reflexive connections (a == b) are allowed (spec.md §4.1).
func (sc *SocketCollection) AddConnection(a SocketID, bs ...SocketID) {
	sc.AddConstrainedRotatedConnection(a, grid.Rotations(), bs...)
}

// AddConstrainedRotatedConnection asserts a symmetric connection between a
// and every b in bs, valid only when the *relative* rotation of the two
// sides equals one of rotations. Internally recorded in four logical
// tables, one per grid.Rotation (spec.md §4.1, §9).
//
// Note on symmetry: a connection recorded at relative rotation r from a's
// point of view is recorded at relative rotation -r (i.e. 360°-r) from b's
// point of view, so that Connected(a, b, r) == Connected(b, a, -r) holds —
// this is what lets the rule compiler's symmetry invariant (spec.md §3)
// hold structurally rather than by a post-hoc check here.
func (sc *SocketCollection) AddConstrainedRotatedConnection(a SocketID, rotations []grid.Rotation, bs ...SocketID) {
	if len(rotations) == 0 {
		panic("socket: AddConstrainedRotatedConnection with empty rotation set")
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	for _, r := range rotations {
		inv := grid.R0.Sub(r) // the inverse rotation, (-r) mod 360°
		for _, b := range bs {
			sc.connectLocked(r, a, b)
			sc.connectLocked(inv, b, a)
		}
	}
}

func (sc *SocketCollection) connectLocked(r grid.Rotation, a, b SocketID) {
	tbl := sc.byRotation[r]
	set, ok := tbl[a]
	if !ok {
		set = make(map[SocketID]bool)
		tbl[a] = set
	}
	set[b] = true
}

// Connected reports whether a and b may be adjacent at relative rotation r.
func (sc *SocketCollection) Connected(a, b SocketID, r grid.Rotation) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	set, ok := sc.byRotation[r][a]
	if !ok {
		return false
	}
	return set[b]
}

// Exists reports whether id was allocated by this collection.
func (sc *SocketCollection) Exists(id SocketID) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return id >= 0 && id < sc.next
}
