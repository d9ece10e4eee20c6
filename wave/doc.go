// Package wave owns the per-cell domain of candidate variants and its
// support-counter bookkeeping, and implements AC-4 style arc-consistency
// propagation over a compiled rules.Rules (spec.md §4.4, §4.6).
//
// What:
//
//   - Wave.Possible[n] is a bitset.Set of variants still permitted at cell
//     n; Wave.Remaining[n] is its popcount, cached for O(1) entropy-key
//     reads (spec.md §4.5).
//   - Wave.support[n][d][u] counts variants at neighbour(n,d) that still
//     permit u here; a count reaching zero removes u from possible[n] and
//     enqueues it for further propagation (spec.md §4.6).
//   - SetAndPropagate collapses one cell to a survivor variant and drains
//     the propagation queue to a fixpoint, reporting every elimination and
//     newly-decided cell it caused, or the cell at which a contradiction
//     (remaining_variants reaching zero) was detected.
//
// Why:
//
//   - support[n,u,d] = popcount(allowed[u,d] ∩ possible[neighbour(n,d)])
//     by the rule table's symmetry invariant (checked by rules.Build via
//     Rules.verifySymmetry, in rules/rules.go): no second copy of the
//     allowed-neighbour relation needs to be stored or recomputed, only
//     looked up under a (possibly opposite) direction.
//
// Grounded on lvlath/dfs and lvlath/bfs's typed per-traversal result
// structs (Depth/Parent maps keyed by node), generalised here to dense
// per-cell slices keyed by variant index via bitset.Set instead of maps.
package wave
