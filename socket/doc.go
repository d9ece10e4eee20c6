// Package socket implements the socket layer (spec.md §4.1): opaque socket
// identifiers local to one SocketCollection, and the symmetric connection
// relation between them, optionally refined by relative rotation.
//
// What:
//
//   - SocketCollection allocates dense SocketID values and records which
//     pairs may be adjacent.
//   - A plain connection (AddConnection) holds for any relative rotation.
//   - A constrained connection (AddConstrainedRotatedConnection) holds only
//     for the given set of relative rotations — internally stored as four
//     logical tables, one per grid.Rotation (spec.md §4.1).
//
// Why:
//
//   - Keeping socket identity and connectivity separate from Model/Variant
//     lets the same socket vocabulary be reused across many models, and
//     lets the rule compiler (package rules) ask a single, uniform
//     question — "can socket a touch socket b at relative rotation r?" —
//     regardless of which axis or model produced a or b.
//
// Errors: none at authoring time. Undefined socket ids are permitted here;
// they surface as rules.ErrUnknownSocket only when a RulesBuilder compiles
// a Model that references them (spec.md §4.1).
package socket
