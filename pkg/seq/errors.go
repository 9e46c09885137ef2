package seq

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrModeMismatch marks a synchronous pull attempted on an Async-only
	// sequence. Match with errors.Is.
	ErrModeMismatch = errors.New("synchronous pull on asynchronous sequence")

	// ErrNegativeCount marks a Range built with a negative count.
	ErrNegativeCount = errors.New("range count must not be negative")
)

// ModeMismatchError identifies which sequence was pulled in the wrong mode.
type ModeMismatchError struct {
	Sequence uuid.UUID
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("%v: sequence %s must be consumed with PullAsync or an asynchronous terminal",
		ErrModeMismatch, e.Sequence)
}

func (e *ModeMismatchError) Unwrap() error {
	return ErrModeMismatch
}

// IsCancellation reports whether err stems from context cancellation or a
// deadline, as opposed to a failure of the pipeline itself.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
