// Package search implements the branch-and-bound tree: Node (one LP
// relaxation plus its classification) and Solver (the LIFO engine that
// drives nodes from the root to either a converged MipState or a proven
// Infeasible).
//
// The engine shape — a single struct holding configuration, mutable
// search state and a DFS entrypoint — is adapted from the tsp.bbEngine of
// the graph library this code grew out of (that package is not part of
// this repository): same discipline, MIP semantics (LP relaxation bound,
// integrality test) in place of TSP's degree-1 bound and tour-completion
// test. The branching variable is chosen when a node is branched.
package search
