// Package presolve tightens Variable domains from Constraint row activity
// until a fixpoint, or declares the node infeasible.
//
// The Propagator is deliberately decoupled from whatever records the
// tightening history: it reports each applied bound change through a
// Listener, and callers that need an audit trail (implog.Graph) attach one.
// A Propagator with no Listener still converges identically — the listener
// only observes, it never influences the fixpoint.
package presolve
