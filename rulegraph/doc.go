// Package rulegraph is a read-only diagnostics view over a compiled
// *rules.Rules: it treats variants as vertices and `allowed[v,d]` pairs as
// edges, then answers questions a rule author would ask before ever
// running a solver — is the variant space connected, how far apart are two
// variants, and what does the compatibility structure look like as a
// matrix.
//
// It never touches solver/wave state and carries none of their
// invariants; Build is the only entry point, and every other function
// takes the *Graph it returns.
package rulegraph
