package seq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mode is the capability tag of a Sequence, fixed at construction time.
type Mode uint8

const (
	// Sync sequences can be pulled synchronously; their iterators never block.
	Sync Mode = iota
	// Async sequences must be driven through PullAsync; a synchronous pull
	// fails with ErrModeMismatch.
	Async
)

func (m Mode) String() string {
	if m == Async {
		return "async"
	}
	return "sync"
}

// Join combines the modes of two upstream sequences: the result is Async if
// either side is Async.
func (m Mode) Join(other Mode) Mode {
	if m == Async || other == Async {
		return Async
	}
	return Sync
}

// Sequence is a deferred producer of elements. Composing an operator never
// mutates the upstream; it returns a new Sequence closing over it. No work
// happens until a pull is driven.
type Sequence[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	mode      Mode
	open      func(ctx context.Context) Iterator[T]
}

// Stage builds a Sequence from an opener. It is the extension point every
// operator in this module is built on: the opener is invoked once per
// traversal and must itself perform no element work until Next is called.
func Stage[T any](mode Mode, open func(ctx context.Context) Iterator[T]) Sequence[T] {
	return Sequence[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		mode:      mode,
		open:      open,
	}
}

// ID returns the identity stamped on this sequence at construction.
func (s Sequence[T]) ID() uuid.UUID {
	return s.id
}

// CreatedAt is the construction time (UTC).
func (s Sequence[T]) CreatedAt() time.Time {
	return s.createdAt
}

// Mode reports the capability tag.
func (s Sequence[T]) Mode() Mode {
	return s.mode
}

// PullAsync opens a context-aware iterator over the sequence. Legal for both
// modes; a Sync upstream is consumed sequentially, one element at a time.
func (s Sequence[T]) PullAsync(ctx context.Context) Iterator[T] {
	return s.open(ctx)
}

// Pull opens a synchronous iterator. It fails with a ModeMismatchError when
// the sequence is Async-capable only.
func (s Sequence[T]) Pull() (Iterator[T], error) {
	if s.mode == Async {
		return nil, &ModeMismatchError{Sequence: s.id}
	}
	return s.open(context.Background()), nil
}

// From wraps a slice as a repeatable Sync sequence. The slice is not copied;
// callers must not mutate it while traversing.
func From[T any](values []T) Sequence[T] {
	return Stage(Sync, func(_ context.Context) Iterator[T] {
		return &sliceIterator[T]{values: values}
	})
}

// FromArgs wraps the given values as a repeatable Sync sequence.
func FromArgs[T any](values ...T) Sequence[T] {
	return From(values)
}

// Empty yields a zero-element Sync sequence of type T.
func Empty[T any]() Sequence[T] {
	return From[T](nil)
}

// Range yields count consecutive integers starting at start, as a Sync
// sequence. A negative count is a caller error: the first pull fails with
// ErrNegativeCount.
func Range(start, count int) Sequence[int] {
	return Stage(Sync, func(_ context.Context) Iterator[int] {
		if count < 0 {
			return &failIterator[int]{err: ErrNegativeCount}
		}
		return &rangeIterator{next: start, remaining: count}
	})
}

type sliceIterator[T any] struct {
	values []T
	index  int
}

func (it *sliceIterator[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.values) {
		var zero T
		return zero, false, nil
	}
	v := it.values[it.index]
	it.index++
	return v, true, nil
}

type rangeIterator struct {
	next      int
	remaining int
}

func (it *rangeIterator) Next(_ context.Context) (int, bool, error) {
	if it.remaining <= 0 {
		return 0, false, nil
	}
	v := it.next
	it.next++
	it.remaining--
	return v, true, nil
}

// failIterator surfaces a construction-time caller error at first pull,
// keeping constructors chainable.
type failIterator[T any] struct {
	err error
}

func (it *failIterator[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, it.err
}
