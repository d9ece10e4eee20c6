// Package grid defines the coordinate-system contract this module's rule
// compiler and solver are built against (the "Grid capability" of spec.md
// §6), plus two default, ready-to-use implementations.
//
// What:
//
//   - Grid is the minimal interface the solver consumes: enumerate cells,
//     map (cell, direction) to a neighbour or none, report the axis set.
//   - Coordinates is the coordinate-system contract the rule compiler
//     consumes: direction opposites and rotation of direction labels are a
//     property of the coordinate system, not of any one grid instance
//     (spec.md §9).
//   - Cartesian2D and Cartesian3D adapt lvlath/gridgraph's fixed-size,
//     4/8-neighbour land-grid model into an N-axis, independently-loopable
//     coordinate system.
//
// Why:
//
//   - The rule compiler and solver never need to know how a host application
//     represents its world; they only need these two small contracts.
//   - Shipping Cartesian2D/3D means the authoring surface (RulesBuilder,
//     GeneratorBuilder) has something concrete to hand a caller who does not
//     bring their own grid.
//
// Complexity: Neighbour and Opposite are O(1); IterCells is O(CellCount()).
package grid
