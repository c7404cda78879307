// Package implog records the history of domain-propagation bound
// tightenings as a DAG keyed by (depth, iteration, variable), so that an
// infeasible leaf can be traced back to the branching decisions that
// caused it (see package fuip).
//
// The graph itself is built on top of core.Graph: every recorded bound
// change becomes a vertex, and "this bound was a contributing cause of
// that one" becomes a directed edge between them. implog owns the extra
// bookkeeping core.Graph doesn't provide — per-depth origins and drains,
// and the latest-node-per-variable index — and keeps it consistent across
// Copy, the operation that gives every branch its own independent history.
package implog
