// Package seq is the core of a lazy, composable query engine over element
// sequences. A Sequence[T] is a deferred producer: building one, or composing
// operators on top of one, performs no work; elements are produced only when a
// terminal consumer pulls them.
//
// Every Sequence carries an explicit capability tag (Sync or Async) chosen at
// construction time. Sync sequences support plain synchronous pulling; Async
// sequences (for example those backed by channels) must be driven through the
// context-aware pull, and attempting a synchronous pull on them fails with
// ErrModeMismatch. Asynchronous pulling of a Sync sequence is always legal and
// consumes it sequentially.
//
// Key operations:
// - From/FromArgs/FromChan/Empty/Range: create sequences
// - Where, Take, Skip, Concat, Append, Prepend, Distinct, Reverse, Union, Intersect: compose same-type stages
// - Select, Try, DistinctBy, UnionBy, IntersectBy: compose type-changing or keyed stages
// - Pull/PullAsync: drive iteration
// - ToChan: bridge a sequence into a channel under a context
//
// Ordering lives in package order, caching transforms in package memo,
// terminal reductions and materializers in package agg.
package seq
