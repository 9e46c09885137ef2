package seq

import "context"

// Select applies a pure 1:1 transform to every element, preserving order and
// count. A panic inside f propagates to whoever drives the pull.
func Select[In, Out any](s Sequence[In], f func(In) Out) Sequence[Out] {
	return Stage(s.mode, func(ctx context.Context) Iterator[Out] {
		return &selectIterator[In, Out]{src: s.open(ctx), f: f}
	})
}

// Try applies a fallible transform. The first error returned by f terminates
// the pull with that error; no retry, no partial output past the failing
// element.
func Try[In, Out any](s Sequence[In], f func(In) (Out, error)) Sequence[Out] {
	return Stage(s.mode, func(ctx context.Context) Iterator[Out] {
		return &tryIterator[In, Out]{src: s.open(ctx), f: f}
	})
}

// DistinctBy is Distinct with equivalence by the derived key instead of the
// element's canonical encoding.
func DistinctBy[T any, K comparable](s Sequence[T], key func(T) K) Sequence[T] {
	return Stage(s.mode, func(ctx context.Context) Iterator[T] {
		return &distinctIterator[T, K]{src: s.open(ctx), key: pureKey(key)}
	})
}

// UnionBy yields the distinct elements of s then the distinct new elements of
// other, first-seen order across both, equivalence by the derived key.
func UnionBy[T any, K comparable](s, other Sequence[T], key func(T) K) Sequence[T] {
	return DistinctBy(s.Concat(other), key)
}

// IntersectBy is Intersect with equivalence by the derived key.
func IntersectBy[T any, K comparable](s, other Sequence[T], key func(T) K) Sequence[T] {
	return Stage(s.mode.Join(other.mode), func(ctx context.Context) Iterator[T] {
		return &intersectIterator[T, K]{
			src:   s.open(ctx),
			other: other.open(ctx),
			key:   pureKey(key),
		}
	})
}

func pureKey[T any, K comparable](key func(T) K) func(T) (K, error) {
	return func(v T) (K, error) {
		return key(v), nil
	}
}

type selectIterator[In, Out any] struct {
	src Iterator[In]
	f   func(In) Out
}

func (it *selectIterator[In, Out]) Next(ctx context.Context) (Out, bool, error) {
	v, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		var zero Out
		return zero, false, err
	}
	return it.f(v), true, nil
}

type tryIterator[In, Out any] struct {
	src Iterator[In]
	f   func(In) (Out, error)
}

func (it *tryIterator[In, Out]) Next(ctx context.Context) (Out, bool, error) {
	var zero Out
	v, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := it.f(v)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}
