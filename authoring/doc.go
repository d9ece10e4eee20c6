// Package authoring is the declarative counterpart to constructing a
// socket collection, model collection, and rule set by hand: it reads a
// YAML document naming sockets, models, and grid/axis configuration, and
// wires them straight through rules.RulesBuilder.
//
// This is purely a convenience layer. Nothing here is reachable from
// solver's hot path; a Spec is built once, at startup, like any other
// piece of static configuration.
package authoring
