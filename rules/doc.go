// Package rules implements the rule compiler (spec.md §4.3): it expands an
// authored model.ModelCollection into model.Variants and builds the
// immutable per-direction allowed-neighbour relation, variant weights, and
// the symmetry/liveness checks the rest of this module depends on.
//
// What:
//
//   - RulesBuilder.Build walks every (variant, variant, direction) triple
//     and records u ∈ allowed[v,d] whenever the corresponding sockets
//     connect, using socket.SocketCollection's per-rotation tables for the
//     coordinate system's rotation axis and a plain (rotation-0) lookup for
//     every other direction (spec.md §4.3 step 2, §9).
//   - The result is an immutable *Rules: weight[v], allowed[v,d] as a
//     bitset.Set, and precomputed weight totals for selection heuristics.
//
// Why:
//
//   - Compiling once into dense bitsets is what lets the solver's AC-4
//     propagation (package wave) do word-wise set intersection instead of
//     re-deriving compatibility on every removal.
//
// Errors: NoModels, UnknownSocket, InconsistentRules (spec.md §7).
//
// Complexity: Build is O(V² · A · S) where V = variant count, A = axis
// count, S = max side length; this is the one-time compile cost the
// solver's hot loop (spec.md §4.6) is designed to avoid repeating.
package rules
