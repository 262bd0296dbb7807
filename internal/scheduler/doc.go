// Package scheduler runs deferred tasks either eagerly, on a pool of workers
// draining a bounded queue, or lazily, on first demand through the result
// handle. It is the delivery mechanism a task's captured payload travels
// through: the shared delivery mode hands the task over by pointer with zero
// payload operations, while the rehome mode re-stores the payload on submit
// the way a duplicate-on-store mechanism would.
package scheduler
