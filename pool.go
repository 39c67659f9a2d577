package poolist

// Pool lends contiguous backing buffers to lists. Implementations must be
// safe for concurrent use by multiple lists; package bufpool provides the
// default.
type Pool[T any] interface {
	// Rent returns a buffer with len(buf) >= minCapacity. The contents of
	// the buffer are unspecified and may hold stale data from a previous
	// owner. Rent is never called with minCapacity <= 0 by a List.
	Rent(minCapacity int) []T

	// Return releases buf back to the pool for reuse. When clearBuf is
	// true the implementation must zero the buffer before making it
	// available again, so the pool does not keep references reachable.
	// The buffer may have been re-sliced below its capacity; the full
	// cap(buf) region belongs to the pool.
	Return(buf []T, clearBuf bool)
}
