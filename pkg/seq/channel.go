package seq

import "context"

// FromChan wraps a channel as an Async sequence. The sequence is one-shot:
// elements are taken from the channel as they are pulled, and a second
// traversal continues wherever the first stopped. The sequence ends when the
// channel closes; an asynchronous pull whose context ends first fails with
// that context's error.
func FromChan[T any](ch <-chan T) Sequence[T] {
	return Stage(Async, func(_ context.Context) Iterator[T] {
		return &chanIterator[T]{ch: ch}
	})
}

// BridgeHandlers observe a ToChan pump. All fields are optional.
type BridgeHandlers[T any] struct {
	// OnElement runs after each element is handed to the channel.
	OnElement func(ctx context.Context, v T)
	// OnFail runs when the upstream pull fails; the pump stops there.
	OnFail func(ctx context.Context, err error)
	// OnBreak runs when the context ends before the upstream is drained.
	OnBreak func(ctx context.Context)
}

// ToChan drives the sequence asynchronously and delivers its elements on the
// returned channel, which is closed when the upstream ends, the pull fails,
// or ctx is done. Upstream failures stop the pump silently; use
// ToChanWithHandlers to observe them. Channel capacity is taken from
// WithBufferOptions, unbuffered by default.
func ToChan[T any](ctx context.Context, s Sequence[T]) <-chan T {
	return ToChanWithHandlers(ctx, s, BridgeHandlers[T]{})
}

// ToChanWithHandlers is ToChan with observation hooks.
func ToChanWithHandlers[T any](ctx context.Context, s Sequence[T], handlers BridgeHandlers[T]) <-chan T {
	out := make(chan T, GetBufferSize(ctx, 0))

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			if handlers.OnBreak != nil {
				handlers.OnBreak(ctx)
			}
			return
		}

		it := s.PullAsync(ctx)
		for {
			v, ok, err := it.Next(ctx)
			if err != nil {
				if IsCancellation(err) {
					if handlers.OnBreak != nil {
						handlers.OnBreak(ctx)
					}
				} else if handlers.OnFail != nil {
					handlers.OnFail(ctx, err)
				}
				return
			}
			if !ok {
				return
			}

			select {
			case out <- v:
				if handlers.OnElement != nil {
					handlers.OnElement(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx)
				}
				return
			}
		}
	}()

	return out
}

type chanIterator[T any] struct {
	ch   <-chan T
	done bool
}

func (it *chanIterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	select {
	case v, ok := <-it.ch:
		if !ok {
			it.done = true
			return zero, false, nil
		}
		return v, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}
