package agg

import (
	"cmp"
	"context"
	"math"

	"github.com/spf13/cast"

	"github.com/ib-77/seq3/pkg/seq"
	"github.com/ib-77/seq3/pkg/seq/keys"
)

// Count returns the number of elements, or of elements matching the optional
// predicate. Empty sequences count 0.
func Count[T any](s seq.Sequence[T], pred ...func(T) bool) (int, error) {
	p := firstOf(pred)
	n := 0
	err := each(s, func(v T) (bool, error) {
		if p == nil || p(v) {
			n++
		}
		return true, nil
	})
	return n, err
}

// Sum reduces the sequence to the sum of the selected values. With no
// selector, elements are coerced to float64 best-effort; an element that does
// not convert contributes NaN. Empty sequences sum to 0.
func Sum[T any](s seq.Sequence[T], sel ...func(T) float64) (float64, error) {
	f := firstOf(sel)
	total := 0.0
	err := each(s, func(v T) (bool, error) {
		total += numeric(v, f)
		return true, nil
	})
	return total, err
}

// Average is Sum divided by Count in a single pass. Empty sequences average
// to 0.
func Average[T any](s seq.Sequence[T], sel ...func(T) float64) (float64, error) {
	f := firstOf(sel)
	total, n := 0.0, 0
	err := each(s, func(v T) (bool, error) {
		total += numeric(v, f)
		n++
		return true, nil
	})
	if err != nil || n == 0 {
		return 0, err
	}
	return total / float64(n), nil
}

// Max returns the largest element, absent on an empty sequence.
func Max[T cmp.Ordered](s seq.Sequence[T]) (T, bool, error) {
	return extreme(s, func(candidate, best T) bool { return cmp.Less(best, candidate) })
}

// Min returns the smallest element, absent on an empty sequence.
func Min[T cmp.Ordered](s seq.Sequence[T]) (T, bool, error) {
	return extreme(s, func(candidate, best T) bool { return cmp.Less(candidate, best) })
}

// All reports whether every element satisfies pred, stopping at the first
// that does not. Vacuously true on an empty sequence.
func All[T any](s seq.Sequence[T], pred func(T) bool) (bool, error) {
	all := true
	err := each(s, func(v T) (bool, error) {
		if !pred(v) {
			all = false
			return false, nil
		}
		return true, nil
	})
	return all && err == nil, err
}

// Any reports whether the sequence has any element, or any element matching
// the optional predicate, stopping at the first match. False on an empty
// sequence.
func Any[T any](s seq.Sequence[T], pred ...func(T) bool) (bool, error) {
	p := firstOf(pred)
	found := false
	err := each(s, func(v T) (bool, error) {
		if p == nil || p(v) {
			found = true
			return false, nil
		}
		return true, nil
	})
	return found && err == nil, err
}

// Contains reports whether any element equals v under canonical-key
// equivalence, stopping at the first hit. False on an empty sequence.
func Contains[T any](s seq.Sequence[T], v T) (bool, error) {
	want, err := keys.Canonical(v)
	if err != nil {
		return false, err
	}
	found := false
	err = each(s, func(e T) (bool, error) {
		k, err := keys.Canonical(e)
		if err != nil {
			return false, err
		}
		if k == want {
			found = true
			return false, nil
		}
		return true, nil
	})
	return found && err == nil, err
}

// First returns the first element, or the first matching the optional
// predicate; absent when the sequence is empty or nothing matches.
func First[T any](s seq.Sequence[T], pred ...func(T) bool) (T, bool, error) {
	p := firstOf(pred)
	var first T
	found := false
	err := each(s, func(v T) (bool, error) {
		if p == nil || p(v) {
			first, found = v, true
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return first, found, nil
}

// each drives a full synchronous pull, invoking visit per element until it
// returns false or errs.
func each[T any](s seq.Sequence[T], visit func(T) (bool, error)) error {
	it, err := s.Pull()
	if err != nil {
		return err
	}
	ctx := context.Background()
	for {
		v, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		cont, err := visit(v)
		if err != nil || !cont {
			return err
		}
	}
}

func extreme[T cmp.Ordered](s seq.Sequence[T], better func(candidate, best T) bool) (T, bool, error) {
	var best T
	found := false
	err := each(s, func(v T) (bool, error) {
		if !found || better(v, best) {
			best, found = v, true
		}
		return true, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return best, found, nil
}

func numeric[T any](v T, sel func(T) float64) float64 {
	if sel != nil {
		return sel(v)
	}
	f, err := cast.ToFloat64E(any(v))
	if err != nil {
		return math.NaN()
	}
	return f
}

func firstOf[F any](fs []F) F {
	if len(fs) > 0 {
		return fs[0]
	}
	var zero F
	return zero
}
