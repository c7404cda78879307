// Package conflictmip solves Mixed-Integer Linear Programs by
// branch-and-bound over continuous LP relaxations, augmented by
// domain-propagation presolving and conflict-graph-derived cutting
// planes (First Unique Implication Point, FUIP).
//
// 🚀 What is conflictmip?
//
//	A small, from-scratch MIP solver built on gonum's simplex: branch on
//	fractional variables, tighten bounds with row-activity propagation
//	between solves, and trace *why* a leaf went infeasible back through an
//	implication graph to cut the same conflict out of every other open
//	node.
//
// Under the hood, everything is organized under these subpackages:
//
//	model/      — Bound, Variable, Constraint, Solution: the LP data model
//	presolve/   — Propagator: row-activity bound tightening to a fixpoint
//	implog/     — ImplicationGraph: records which propagation implied which bound
//	fuip/       — FUIPExtractor: walks the graph back to a minimal conflict cut
//	lpmodel/    — LPModel: one branch's relaxation, wired to gonum's simplex
//	search/     — Node & Solver: the branch-and-bound loop itself
//	mipstate/   — MipState: the primal/dual bound pair and run status
//	core/       — the graph primitives implog.Graph is built on
//	matrix/     — dense-matrix views used for coefficient read-back
//	cmd/conflictmip/ — the command-line driver
//
// See cmd/conflictmip for the CLI entry point and SPEC_FULL.md/DESIGN.md
// for the full design record.
package conflictmip
