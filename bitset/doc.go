// Package bitset implements the fixed-universe BitSet(V) primitive used
// throughout this module to represent a cell's possible-variant set and a
// rule's per-direction allowed-neighbour set.
//
// Complexity: Test/Add/Remove are O(1); PopCount/Each/Intersects/And/Or are
// O(V/64) word-wise, which is the access pattern spec.md §9 calls out as
// performance-critical (scanning allowed[v,d] ∩ possible[m]).
package bitset
