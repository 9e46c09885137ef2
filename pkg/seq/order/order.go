package order

import (
	"cmp"
	"context"

	"github.com/ib-77/seq3/pkg/seq"
)

// By yields the elements of s sorted ascending by the derived key. Elements
// with equal keys keep their original relative order.
func By[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K) seq.Sequence[T] {
	return sorted(s, key, false)
}

// ByDescending yields the elements of s sorted descending by the derived key.
// Elements with equal keys keep their original relative order.
func ByDescending[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K) seq.Sequence[T] {
	return sorted(s, key, true)
}

func sorted[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K, descending bool) seq.Sequence[T] {
	return seq.Stage(s.Mode(), func(ctx context.Context) seq.Iterator[T] {
		return &sortIterator[T, K]{src: s.PullAsync(ctx), key: key, descending: descending}
	})
}

type entry[T any, K cmp.Ordered] struct {
	value T
	key   K
}

type sortIterator[T any, K cmp.Ordered] struct {
	src        seq.Iterator[T]
	key        func(T) K
	descending bool
	out        []entry[T, K]
	index      int
	primed     bool
}

func (it *sortIterator[T, K]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !it.primed {
		var items []entry[T, K]
		for {
			v, ok, err := it.src.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if !ok {
				break
			}
			items = append(items, entry[T, K]{value: v, key: it.key(v)})
		}
		it.out = partitionSort(items, it.descending)
		it.primed = true
	}
	if it.index >= len(it.out) {
		return zero, false, nil
	}
	v := it.out[it.index].value
	it.index++
	return v, true, nil
}

// partitionSort is the three-way pivot-on-last-element sort, run on an
// explicit work stack. A frame marked done is emitted verbatim; the equal
// bucket is always emitted verbatim, which preserves original order among
// tied elements.
func partitionSort[T any, K cmp.Ordered](items []entry[T, K], descending bool) []entry[T, K] {
	if len(items) <= 1 {
		return items
	}

	type frame struct {
		part []entry[T, K]
		done bool
	}

	out := make([]entry[T, K], 0, len(items))
	stack := []frame{{part: items}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.done || len(f.part) <= 1 {
			out = append(out, f.part...)
			continue
		}

		pivot := f.part[len(f.part)-1].key
		var before, equal, after []entry[T, K]
		for _, e := range f.part {
			switch {
			case keyLess(e.key, pivot, descending):
				before = append(before, e)
			case keyLess(pivot, e.key, descending):
				after = append(after, e)
			default:
				equal = append(equal, e)
			}
		}

		// popped in reverse: before, then equal, then after
		stack = append(stack,
			frame{part: after},
			frame{part: equal, done: true},
			frame{part: before},
		)
	}

	return out
}

func keyLess[K cmp.Ordered](a, b K, descending bool) bool {
	if descending {
		return cmp.Less(b, a)
	}
	return cmp.Less(a, b)
}
