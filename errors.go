package poolist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned (wrapped) for negative counts or
	// capacities, windows outside the live range, a capacity below the
	// current size, or a nil required collaborator.
	ErrInvalidArgument = errors.New("poolist: invalid argument")

	// ErrIndexOutOfRange is the sentinel wrapped by IndexError.
	ErrIndexOutOfRange = errors.New("poolist: index out of range")

	// ErrConcurrentMutation is returned when the list was structurally
	// mutated while a traversal over it was in progress.
	ErrConcurrentMutation = errors.New("poolist: list mutated during iteration")

	// ErrCapacityLimit is returned when a requested capacity exceeds
	// MaxCapacity.
	ErrCapacityLimit = errors.New("poolist: capacity limit exceeded")

	// ErrReleased is the panic value raised when a list is used after
	// Release. Operating on a released list would touch a buffer that may
	// already belong to another owner, so this fails loudly instead.
	ErrReleased = errors.New("poolist: use of released list")
)

// IndexError reports a single-element index outside the valid bound.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("poolist: index %d out of range for size %d", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// RangeError reports a window [Index, Index+Count) that does not lie
// within the live window [0, Size).
type RangeError struct {
	Index int
	Count int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("poolist: range [%d, %d+%d) outside live window [0, %d)", e.Index, e.Index, e.Count, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrInvalidArgument }
