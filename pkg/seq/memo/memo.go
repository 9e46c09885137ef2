package memo

import (
	"context"

	"github.com/ib-77/seq3/pkg/seq"
	"github.com/ib-77/seq3/pkg/seq/keys"
)

// Transform computes the cached replacement for one element.
type Transform[In, Out any] func(ctx context.Context, in In) (Out, error)

// Map wraps s so each element is replaced by fn(element), cached by the
// element's canonical key. fn runs exactly once per distinct key over the
// lifetime of the returned sequence, however many traversals are made.
func Map[In, Out any](s seq.Sequence[In], fn Transform[In, Out]) seq.Sequence[Out] {
	return mapSync(s, fn, canonicalKey[In])
}

// MapBy is Map with an explicit key selector.
func MapBy[In, Out any, K comparable](s seq.Sequence[In], fn Transform[In, Out], key func(In) K) seq.Sequence[Out] {
	return mapSync(s, fn, pureKey(key))
}

// MapAsync is the asynchronous variant of Map. The returned sequence is
// Async: drive it with PullAsync or an asynchronous terminal. Concurrent
// pulls for one key share a single in-flight computation.
func MapAsync[In, Out any](s seq.Sequence[In], fn Transform[In, Out]) seq.Sequence[Out] {
	return mapAsync(s, fn, canonicalKey[In])
}

// MapAsyncBy is MapAsync with an explicit key selector.
func MapAsyncBy[In, Out any, K comparable](s seq.Sequence[In], fn Transform[In, Out], key func(In) K) seq.Sequence[Out] {
	return mapAsync(s, fn, pureKey(key))
}

func mapSync[In, Out any, K comparable](s seq.Sequence[In], fn Transform[In, Out], key func(In) (K, error)) seq.Sequence[Out] {
	// one cache per wrapping sequence, shared by all of its traversals
	store := newCache[K, outcome[Out]]()
	return seq.Stage(s.Mode(), func(ctx context.Context) seq.Iterator[Out] {
		return &syncIterator[In, Out, K]{src: s.PullAsync(ctx), fn: fn, key: key, store: store}
	})
}

func mapAsync[In, Out any, K comparable](s seq.Sequence[In], fn Transform[In, Out], key func(In) (K, error)) seq.Sequence[Out] {
	store := newCache[K, *Future[Out]]()
	return seq.Stage(seq.Async, func(ctx context.Context) seq.Iterator[Out] {
		return &asyncIterator[In, Out, K]{src: s.PullAsync(ctx), fn: fn, key: key, store: store}
	})
}

func canonicalKey[T any](v T) (string, error) {
	return keys.Canonical(v)
}

func pureKey[T any, K comparable](key func(T) K) func(T) (K, error) {
	return func(v T) (K, error) {
		return key(v), nil
	}
}

// outcome records a completed computation; failures are cached like
// successes, so a key's first error is its permanent result.
type outcome[Out any] struct {
	value Out
	err   error
}

type syncIterator[In, Out any, K comparable] struct {
	src   seq.Iterator[In]
	fn    Transform[In, Out]
	key   func(In) (K, error)
	store *cache[K, outcome[Out]]
}

func (it *syncIterator[In, Out, K]) Next(ctx context.Context) (Out, bool, error) {
	var zero Out
	in, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	k, err := it.key(in)
	if err != nil {
		return zero, false, err
	}
	// the computation runs under the cache lock: pulls are sequential by
	// contract, the lock turns accidental sharing into blocking rather than
	// a double invocation
	res, _ := it.store.loadOrStore(k, func() outcome[Out] {
		out, err := it.fn(ctx, in)
		return outcome[Out]{value: out, err: err}
	})
	if res.err != nil {
		return zero, false, res.err
	}
	return res.value, true, nil
}

type asyncIterator[In, Out any, K comparable] struct {
	src   seq.Iterator[In]
	fn    Transform[In, Out]
	key   func(In) (K, error)
	store *cache[K, *Future[Out]]
}

func (it *asyncIterator[In, Out, K]) Next(ctx context.Context) (Out, bool, error) {
	var zero Out
	in, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	k, err := it.key(in)
	if err != nil {
		return zero, false, err
	}

	// the pending Future is inserted under the lock before fn is initiated;
	// a concurrent pull for the same key finds it and awaits it instead of
	// invoking fn again
	fut, existing := it.store.loadOrStore(k, NewFuture[Out])
	if !existing {
		out, err := it.fn(ctx, in)
		fut.Resolve(out, err)
	}

	out, err := fut.Await(ctx)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}
