package seq

import (
	"context"

	"github.com/ib-77/seq3/pkg/seq/keys"
)

// Where yields only the elements satisfying pred, preserving relative order.
func (s Sequence[T]) Where(pred func(T) bool) Sequence[T] {
	return Stage(s.mode, func(ctx context.Context) Iterator[T] {
		return &whereIterator[T]{src: s.open(ctx), pred: pred}
	})
}

// Take yields at most the first n elements in upstream order. n <= 0 yields
// none; the upstream is never pulled past the cut.
func (s Sequence[T]) Take(n int) Sequence[T] {
	return Stage(s.mode, func(ctx context.Context) Iterator[T] {
		return &takeIterator[T]{src: s.open(ctx), remaining: n}
	})
}

// Skip drops the first n elements and yields the rest. n <= 0 yields the
// upstream unchanged.
func (s Sequence[T]) Skip(n int) Sequence[T] {
	return Stage(s.mode, func(ctx context.Context) Iterator[T] {
		return &skipIterator[T]{src: s.open(ctx), pending: n}
	})
}

// Concat yields all of s followed by all of other.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	return Stage(s.mode.Join(other.mode), func(ctx context.Context) Iterator[T] {
		return &concatIterator[T]{first: s.open(ctx), second: other.open(ctx)}
	})
}

// Append yields s followed by v.
func (s Sequence[T]) Append(v T) Sequence[T] {
	return s.Concat(FromArgs(v))
}

// Prepend yields v followed by s.
func (s Sequence[T]) Prepend(v T) Sequence[T] {
	return FromArgs(v).Concat(s)
}

// Distinct yields the first occurrence of each element, later duplicates
// suppressed, in first-seen order. Equivalence uses the canonical structural
// key; use DistinctBy to key explicitly. Memory grows with the number of
// distinct elements seen.
func (s Sequence[T]) Distinct() Sequence[T] {
	return Stage(s.mode, func(ctx context.Context) Iterator[T] {
		return &distinctIterator[T, string]{src: s.open(ctx), key: canonicalKey[T]}
	})
}

// Union yields the distinct elements of s followed by the distinct new
// elements of other, first-seen order across both, canonical-key equivalence.
func (s Sequence[T]) Union(other Sequence[T]) Sequence[T] {
	return s.Concat(other).Distinct()
}

// Intersect materializes other into a key set at first pull, then yields the
// elements of s (in s's order, s's own duplicates kept) whose canonical key
// appears in that set.
func (s Sequence[T]) Intersect(other Sequence[T]) Sequence[T] {
	return Stage(s.mode.Join(other.mode), func(ctx context.Context) Iterator[T] {
		return &intersectIterator[T, string]{
			src:   s.open(ctx),
			other: other.open(ctx),
			key:   canonicalKey[T],
		}
	})
}

// Reverse yields the upstream in exact reverse order. The whole upstream is
// materialized at first pull, since order can only be inverted once the
// sequence is known.
func (s Sequence[T]) Reverse() Sequence[T] {
	return Stage(s.mode, func(ctx context.Context) Iterator[T] {
		return &reverseIterator[T]{src: s.open(ctx)}
	})
}

func canonicalKey[T any](v T) (string, error) {
	return keys.Canonical(v)
}

type whereIterator[T any] struct {
	src  Iterator[T]
	pred func(T) bool
}

func (it *whereIterator[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		v, ok, err := it.src.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		if it.pred(v) {
			return v, true, nil
		}
	}
}

type takeIterator[T any] struct {
	src       Iterator[T]
	remaining int
}

func (it *takeIterator[T]) Next(ctx context.Context) (T, bool, error) {
	if it.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	v, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	it.remaining--
	return v, true, nil
}

type skipIterator[T any] struct {
	src     Iterator[T]
	pending int
}

func (it *skipIterator[T]) Next(ctx context.Context) (T, bool, error) {
	for it.pending > 0 {
		_, ok, err := it.src.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		it.pending--
	}
	return it.src.Next(ctx)
}

type concatIterator[T any] struct {
	first     Iterator[T]
	second    Iterator[T]
	firstDone bool
}

func (it *concatIterator[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.firstDone {
		v, ok, err := it.first.Next(ctx)
		if err != nil || ok {
			return v, ok, err
		}
		it.firstDone = true
	}
	return it.second.Next(ctx)
}

type distinctIterator[T any, K comparable] struct {
	src  Iterator[T]
	key  func(T) (K, error)
	seen map[K]struct{}
}

func (it *distinctIterator[T, K]) Next(ctx context.Context) (T, bool, error) {
	if it.seen == nil {
		it.seen = make(map[K]struct{})
	}
	for {
		v, ok, err := it.src.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		k, err := it.key(v)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if _, dup := it.seen[k]; dup {
			continue
		}
		it.seen[k] = struct{}{}
		return v, true, nil
	}
}

type intersectIterator[T any, K comparable] struct {
	src    Iterator[T]
	other  Iterator[T]
	key    func(T) (K, error)
	keep   map[K]struct{}
	primed bool
}

func (it *intersectIterator[T, K]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !it.primed {
		it.keep = make(map[K]struct{})
		for {
			v, ok, err := it.other.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				break
			}
			k, err := it.key(v)
			if err != nil {
				return zero, false, err
			}
			it.keep[k] = struct{}{}
		}
		it.primed = true
	}
	for {
		v, ok, err := it.src.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		k, err := it.key(v)
		if err != nil {
			return zero, false, err
		}
		if _, hit := it.keep[k]; hit {
			return v, true, nil
		}
	}
}

type reverseIterator[T any] struct {
	src      Iterator[T]
	buffered []T
	primed   bool
}

func (it *reverseIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !it.primed {
		for {
			v, ok, err := it.src.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				break
			}
			it.buffered = append(it.buffered, v)
		}
		it.primed = true
	}
	if len(it.buffered) == 0 {
		return zero, false, nil
	}
	v := it.buffered[len(it.buffered)-1]
	it.buffered = it.buffered[:len(it.buffered)-1]
	return v, true, nil
}
