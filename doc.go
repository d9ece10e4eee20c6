// Package wfc is a Wave Function Collapse / Model Synthesis rule compiler
// and constraint solver for Go.
//
// An author declares sockets (compatibility tags), models (one socket
// sequence per direction of a coordinate system, a weight, and a rotation
// set), and a grid; RulesBuilder compiles those into an immutable Rules
// table with a dense variant index space and a symmetric
// allowed-neighbour relation. A Generator then runs AC-4 arc-consistency
// propagation over that table, narrowing every cell's possible variants
// down to one, retrying with a reseeded RNG on contradiction.
//
// Everything is organized under subpackages:
//
//	socket/     — socket ids and the symmetric, rotation-aware connection relation
//	model/      — authored models and their expansion into dense variants
//	grid/       — coordinate systems (Cartesian2D/3D) a solver runs over
//	rules/      — RulesBuilder, Rules, symmetry/liveness validation
//	bitset/     — the dense per-cell possible-variant sets propagation runs on
//	wave/       — support counters, propagation, and AC-4 initial pruning
//	solver/     — Generator: retry-on-contradiction, heuristics, observers
//	observer/   — the generation event stream and its subscribers
//	authoring/  — declarative YAML authoring of sockets/models/grids
//	rulegraph/  — read-only compatibility-graph diagnostics over a Rules
//	visualize/  — HTML report rendering for a recorded generation attempt
package wfc
