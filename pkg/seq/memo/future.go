package memo

import (
	"context"
	"sync"
)

// Future is a one-shot asynchronous result cell. It is created unresolved,
// resolved exactly once, and can be awaited by any number of goroutines.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// NewFuture returns an unresolved Future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolve sets the outcome. Only the first call has any effect.
func (f *Future[T]) Resolve(value T, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Await blocks until the Future resolves or ctx ends, whichever comes first.
// A ctx failure does not disturb the Future; other waiters still receive the
// eventual outcome.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Resolved reports whether the outcome is already available.
func (f *Future[T]) Resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
