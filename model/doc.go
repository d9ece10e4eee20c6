// Package model implements the model & variant expander (spec.md §4.2):
// authored Models (one ordered socket sequence per direction, a name, a
// weight, and a set of permitted rotations) are expanded into the flat,
// densely-indexed list of Variants the rule compiler (package rules)
// reasons about.
//
// What:
//
//   - Model is what a human author writes down.
//   - ModelCollection[C] holds a coordinate system (grid.Cartesian2D or
//     grid.Cartesian3D) plus the authored models.
//   - Expand walks every (model, rotation) pair permitted by the model's
//     Rotations set and produces one Variant per pair, with its
//     per-direction sockets computed by asking "which authored side ends
//     up facing d?" (spec.md §4.2).
//
// Why:
//
//   - Separating authored Model from compiled Variant keeps the authoring
//     surface small (one socket sequence per model, not one per rotation)
//     while giving the rule compiler the dense, rotation-expanded index
//     space it needs for O(1) bitset indexing.
//
// Complexity: Expand is O(models × rotations × axes).
package model
