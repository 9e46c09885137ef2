// Package memo wraps a sequence with a caching transform: each pulled element
// is replaced by fn(element), computed at most once per distinct key for the
// whole lifetime of the wrapping sequence. The cache is created when the
// wrapper is built and shared by every traversal of it; entries are never
// evicted and never overwritten (first write wins). Output order always
// equals input order; repeated keys yield once per occurrence, served from
// the cache after the first computation.
//
// Map and MapBy are the synchronous variants. MapAsync and MapAsyncBy share
// the same contract plus one concurrency rule: a pending Future is inserted
// into the cache, under the lock, before the computation is initiated, so a
// concurrent pull for the same key awaits that Future instead of invoking fn
// again. At-most-one invocation per key therefore holds even when several
// goroutines drive the same wrapped sequence at once. The in-flight result
// persists for the wrapper's lifetime, unlike flight-scoped deduplication.
//
// Keys default to the canonical structural encoding of the element; the *By
// variants take an explicit key selector. A failed computation is cached like
// a successful one: there is no retry policy, so every pull of that key
// reports the original error.
package memo
