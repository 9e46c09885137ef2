package agg

import (
	"context"

	"github.com/ib-77/seq3/pkg/seq"
	"github.com/ib-77/seq3/pkg/seq/seqlog"
)

// ToArray materializes the whole sequence synchronously.
func ToArray[T any](s seq.Sequence[T]) ([]T, error) {
	var out []T
	err := each(s, func(v T) (bool, error) {
		out = append(out, v)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToArrayAsync drains the sequence under ctx, one element at a time with no
// concurrent fan-out. Legal for both modes.
func ToArrayAsync[T any](ctx context.Context, s seq.Sequence[T]) ([]T, error) {
	it := s.PullAsync(ctx)
	var out []T
	for {
		v, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// ToSet materializes the distinct elements under Go value equality.
func ToSet[T comparable](s seq.Sequence[T]) (map[T]struct{}, error) {
	out := make(map[T]struct{})
	err := each(s, func(v T) (bool, error) {
		out[v] = struct{}{}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MapOption configures ToMap.
type MapOption func(*mapOptions)

type mapOptions struct {
	warnOnDuplicates bool
	logger           *seqlog.Logger
}

// WarnOnDuplicates reports every duplicate key encountered by ToMap as a
// non-fatal diagnostic. The value still overwrites the earlier one.
func WarnOnDuplicates() MapOption {
	return func(o *mapOptions) {
		o.warnOnDuplicates = true
	}
}

// WithLogger routes ToMap diagnostics to l instead of the package default.
func WithLogger(l *seqlog.Logger) MapOption {
	return func(o *mapOptions) {
		o.logger = l
	}
}

// ToMap materializes the sequence into a map, deriving each entry with the
// key and value selectors. Duplicate keys are last-write-wins.
func ToMap[T any, K comparable, V any](s seq.Sequence[T], keySel func(T) K, valSel func(T) V, opts ...MapOption) (map[K]V, error) {
	var options mapOptions
	for _, opt := range opts {
		opt(&options)
	}

	out := make(map[K]V)
	err := each(s, func(v T) (bool, error) {
		k := keySel(v)
		if _, dup := out[k]; dup && options.warnOnDuplicates {
			logger := options.logger
			if logger == nil {
				logger = seqlog.Default()
			}
			logger.Warn().
				Any("key", k).
				Str("sequence", s.ID().String()).
				Msg("duplicate key overwrites earlier entry")
		}
		out[k] = valSel(v)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
