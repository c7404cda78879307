// Package lpmodel owns one LP relaxation end to end: the Variables and
// Constraints it relaxes integrality on, the ImplicationGraph recording
// how propagation has tightened them, and the cached Solution of the last
// solve.
//
// Solve runs domain propagation (presolve.Propagator) and then the
// external LP solver (gonum's simplex) on the continuous relaxation.
// Copy deep-clones everything a branch needs its own independent copy of
// — vars, constraints, graph — so that two sibling Models never share a
// *model.Variable.
package lpmodel
