// Package bufpool implements the default buffer pool behind poolist.
//
// Buffers are grouped into power-of-two size classes, each backed by a
// bounded free list. Rent rounds the requested capacity up to the next
// class; requests beyond the largest class are served by a direct
// allocation and never retained. Returned buffers are kept only when
// their capacity is exactly a class size, so foreign slices cannot
// pollute a class.
//
// Pools are safe for concurrent rent and return from many containers.
//
// # Memory budget
//
// A pool can be given an upper bound on the bytes it retains with
// WithMaxBytes. The bound is enforced with a non-blocking semaphore:
// when the budget is exhausted the pool degrades to pass-through
// allocation instead of blocking the caller.
//
// # Shared pools
//
// Shared[T] returns a process-wide pool for element type T. Lists default
// to it, which is what makes renting cheaper than allocating: many
// short-lived containers of the same type recycle the same buffers.
package bufpool
