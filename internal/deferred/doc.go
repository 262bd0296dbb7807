// Package deferred provides a single-shot unit of work that captures the
// payload it needs at construction time under one of three policies:
// by-reference (zero-cost, caller must keep the referent alive), by-value-copy
// (one duplication, fully decoupled), or by-value-move (one transfer, fully
// decoupled, never duplicates). The task runs exactly once when invoked and
// is spent afterward.
package deferred
