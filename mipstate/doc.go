// Package mipstate tracks the primal/dual bound pair that drives
// branch-and-bound termination: the best integer-feasible objective found
// so far (primal) against the best bound still reachable by any open node
// (dual), plus small per-run counters for diagnostics.
//
// Every comparison here is sense-aware: Minimize and Maximize models both
// report their primal/dual objectives in their own natural units, and
// State normalizes internally so the same convergence rule applies to
// both ("primal at least as good as dual, or within convergence
// tolerance of it").
package mipstate
