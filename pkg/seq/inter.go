package seq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Iterator is the pull protocol shared by both capability modes. Next returns
// the next element, or (zero, false, nil) when the sequence is exhausted, or a
// non-nil error when the pull fails. After the first false or error, further
// calls must keep returning the same terminal state.
//
// Iterators produced by Sync sequences never block. Iterators produced by
// Async sequences may block on their source or on ctx.
type Iterator[T any] interface {
	// Next pulls one element.
	Next(ctx context.Context) (T, bool, error)
}

// Identified is implemented by values stamped with identity and creation time.
type Identified interface {
	// ID returns the stable identity of the value.
	ID() uuid.UUID
	// CreatedAt is the creation time (UTC).
	CreatedAt() time.Time
}
