// Package solver implements the constraint-solver loop: collapse,
// AC-4 propagation to fixpoint, contradiction detection, bounded retry,
// and step-by-step observation (spec.md §4.5–§4.7, §6).
//
// What:
//
//   - GeneratorBuilder collects a compiled rules.Rules, a grid.Grid,
//     retry budget, selection heuristic, and optional initial constraints,
//     then Build()s an immutable-configuration Generator.
//   - Generator.Generate runs spec.md §4.7's attempt loop to completion;
//     Generator.Step performs exactly one collapse-then-propagate cycle
//     and returns control to the caller (step-by-step mode, spec.md §5).
//   - Generator.SetAndPropagate exposes the same low-level forcing
//     primitive wave.Wave uses internally, for callers that want to force
//     a cell mid-run outside the heuristic.
//
// Why:
//
//   - Grounded on lvlath/graph's BFSOptions callback-driven traversal
//     (generalised here into an observer.Hub-driven collapse/propagate
//     loop) and lvlath/flow's Dinic iterative augmenting-path-with-retry
//     shape, adapted from "retry until no augmenting path" to "retry until
//     no contradiction, within a fixed attempt budget".
//
// Errors: NodeSetError-family (builder-time), InitFailure (first attempt,
// no retry), Contradiction (only after the retry budget is exhausted) —
// spec.md §7.
package solver
