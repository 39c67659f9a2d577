package poolist

import (
	"fmt"
	"math"

	"github.com/hupe1980/poolist/bufpool"
	"github.com/hupe1980/poolist/internal/typeinfo"
)

const (
	// MaxCapacity is the largest capacity a list may reach. The limit is a
	// deliberate choice, not a platform artifact: it keeps the doubling
	// arithmetic overflow-free on both 32-bit and 64-bit targets, and a
	// single contiguous buffer beyond 2^31-1 elements is a usage error for
	// this container.
	MaxCapacity = math.MaxInt32

	// defaultCapacity is the capacity rented on the first growth of an
	// empty list.
	defaultCapacity = 4

	// trimThreshold is the fill ratio below which TrimExcess shrinks the
	// buffer. Near-full lists are left alone to avoid thrashing the pool.
	trimThreshold = 0.9
)

// List is a growable sequence backed by a pool-rented buffer.
//
// The zero value is not usable; use New, NewWithCapacity or From. A List
// must be released with Release when no longer needed so its buffer
// returns to the pool. A List is not safe for concurrent mutation.
type List[T any] struct {
	buf  []T    // rented backing buffer; nil while capacity is zero
	size int    // logical element count, size <= len(buf)
	gen  uint64 // bumped once per mutation; guards in-flight iteration

	pool     Pool[T]
	logger   *Logger
	metrics  MetricsCollector
	clearRef bool // zero vacated slots and returned buffers
	released bool
}

// New creates an empty list. No buffer is rented until the first element
// is added.
func New[T any](opts ...Option[T]) *List[T] {
	cfg := defaultConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newFromConfig(cfg)
}

// NewWithCapacity creates an empty list with a buffer of exactly the
// given capacity rented up front. A zero capacity does not touch the
// pool.
func NewWithCapacity[T any](capacity int, opts ...Option[T]) (*List[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	if capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: requested %d, limit %d", ErrCapacityLimit, capacity, MaxCapacity)
	}
	l := New[T](opts...)
	if capacity > 0 {
		l.buf = l.pool.Rent(capacity)[:capacity]
	}
	return l, nil
}

// From creates a list holding a copy of src, with the buffer rented to
// the source length so no growth is needed.
func From[T any](src []T, opts ...Option[T]) *List[T] {
	l := New[T](opts...)
	if len(src) > 0 {
		l.buf = l.pool.Rent(len(src))[:len(src)]
		copy(l.buf, src)
		l.size = len(src)
	}
	return l
}

func newFromConfig[T any](cfg config[T]) *List[T] {
	l := &List[T]{
		pool:    cfg.pool,
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}
	if l.pool == nil {
		l.pool = bufpool.Shared[T]()
	}
	switch cfg.clear {
	case ClearAlways:
		l.clearRef = true
	case ClearNever:
		l.clearRef = false
	default:
		l.clearRef = typeinfo.HoldsReferences[T]()
	}
	return l
}

// derived creates an empty list sharing the receiver's pool and
// observability configuration. Used by FindAll and friends.
func (l *List[T]) derived() *List[T] {
	return &List[T]{
		pool:     l.pool,
		logger:   l.logger,
		metrics:  l.metrics,
		clearRef: l.clearRef,
	}
}

// checkLive panics with ErrReleased if the list was already released.
func (l *List[T]) checkLive() {
	if l.released {
		panic(ErrReleased)
	}
}

// Len returns the logical element count.
func (l *List[T]) Len() int { return l.size }

// Cap returns the capacity of the rented buffer, zero if none is held.
func (l *List[T]) Cap() int { return len(l.buf) }

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	l.checkLive()
	if uint(i) >= uint(l.size) {
		var zero T
		return zero, &IndexError{Index: i, Size: l.size}
	}
	return l.buf[i], nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, v T) error {
	l.checkLive()
	if uint(i) >= uint(l.size) {
		return &IndexError{Index: i, Size: l.size}
	}
	l.buf[i] = v
	l.gen++
	return nil
}

// Add appends v, growing the buffer if the live window is full.
func (l *List[T]) Add(v T) error {
	l.checkLive()
	if l.size == len(l.buf) {
		if err := l.ensureCapacity(l.size + 1); err != nil {
			return err
		}
	}
	l.buf[l.size] = v
	l.size++
	l.gen++
	return nil
}

// Insert places v at index i, shifting [i, size) right by one.
// i may equal Len(), in which case Insert behaves like Add.
func (l *List[T]) Insert(i int, v T) error {
	l.checkLive()
	if i < 0 || i > l.size {
		return &IndexError{Index: i, Size: l.size}
	}
	if l.size == len(l.buf) {
		if err := l.ensureCapacity(l.size + 1); err != nil {
			return err
		}
	}
	copy(l.buf[i+1:l.size+1], l.buf[i:l.size])
	l.buf[i] = v
	l.size++
	l.gen++
	return nil
}

// RemoveAt deletes the element at index i, shifting the tail left.
func (l *List[T]) RemoveAt(i int) error {
	l.checkLive()
	if uint(i) >= uint(l.size) {
		return &IndexError{Index: i, Size: l.size}
	}
	copy(l.buf[i:], l.buf[i+1:l.size])
	l.size--
	if l.clearRef {
		var zero T
		l.buf[l.size] = zero
	}
	l.gen++
	return nil
}

// RemoveRange deletes count elements starting at index, shifting the
// tail left and preserving the order of the remainder.
func (l *List[T]) RemoveRange(index, count int) error {
	l.checkLive()
	if err := l.checkRange(index, count); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	copy(l.buf[index:], l.buf[index+count:l.size])
	l.size -= count
	if l.clearRef {
		clear(l.buf[l.size : l.size+count])
	}
	l.gen++
	return nil
}

// RemoveAll deletes every element for which pred returns true, in a
// single stable pass, and reports how many were removed. Surviving
// elements keep their relative order.
func (l *List[T]) RemoveAll(pred func(T) bool) int {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	w := 0
	for r := 0; r < l.size; r++ {
		if !pred(l.buf[r]) {
			if w != r {
				l.buf[w] = l.buf[r]
			}
			w++
		}
	}
	removed := l.size - w
	if removed == 0 {
		return 0
	}
	if l.clearRef {
		clear(l.buf[w:l.size])
	}
	l.size = w
	l.gen++
	return removed
}

// Clear drops all elements but keeps the rented buffer for reuse.
func (l *List[T]) Clear() {
	l.checkLive()
	if l.clearRef {
		clear(l.buf[:l.size])
	}
	l.size = 0
	l.gen++
}

// SetCapacity resizes the buffer to exactly capacity elements. It fails
// if capacity is below the current size; live data is never truncated
// implicitly. A capacity of zero returns the buffer to the pool.
func (l *List[T]) SetCapacity(capacity int) error {
	l.checkLive()
	switch {
	case capacity < 0:
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	case capacity < l.size:
		return fmt.Errorf("%w: capacity %d below size %d", ErrInvalidArgument, capacity, l.size)
	case capacity > MaxCapacity:
		return fmt.Errorf("%w: requested %d, limit %d", ErrCapacityLimit, capacity, MaxCapacity)
	}
	if capacity == len(l.buf) {
		return nil
	}

	old := len(l.buf)
	if capacity == 0 {
		l.returnBuf()
	} else {
		l.adopt(capacity)
	}
	if capacity < old {
		l.metrics.RecordShrink(old, capacity)
		l.logger.Debug("buffer shrunk", "from", old, "to", capacity)
	} else {
		l.metrics.RecordGrow(old, capacity)
		l.logger.Debug("buffer grown", "from", old, "to", capacity)
	}
	l.gen++
	return nil
}

// TrimExcess shrinks the buffer to the current size, but only when the
// list fills less than 90% of it. Near-full lists are left alone so
// repeated trim calls do not thrash the pool.
func (l *List[T]) TrimExcess() error {
	l.checkLive()
	if float64(l.size) < float64(len(l.buf))*trimThreshold {
		return l.SetCapacity(l.size)
	}
	return nil
}

// Release returns the buffer to the pool and resets the list to the
// empty state. It is idempotent; any other operation on a released list
// panics with ErrReleased.
func (l *List[T]) Release() {
	if l.released {
		return
	}
	capacity := len(l.buf)
	l.returnBuf()
	l.size = 0
	l.gen++
	l.released = true
	l.metrics.RecordRelease(capacity)
	l.logger.Debug("list released", "cap", capacity)
}

// ensureCapacity grows the buffer so it can hold at least min elements.
// The new capacity doubles the old one (starting from defaultCapacity),
// clamped to MaxCapacity, and never less than min.
func (l *List[T]) ensureCapacity(min int) error {
	if min < 0 || min > MaxCapacity {
		// min < 0 means the caller's size+count arithmetic overflowed.
		return fmt.Errorf("%w: requested %d, limit %d", ErrCapacityLimit, min, MaxCapacity)
	}
	if len(l.buf) >= min {
		return nil
	}

	old := len(l.buf)
	newCap := defaultCapacity
	if old > 0 {
		if old > MaxCapacity/2 {
			newCap = MaxCapacity
		} else {
			newCap = old * 2
		}
	}
	if newCap < min {
		newCap = min
	}

	l.adopt(newCap)
	l.metrics.RecordGrow(old, newCap)
	l.logger.Debug("buffer grown", "from", old, "to", newCap)
	return nil
}

// adopt rents a buffer of exactly capacity elements, copies the live
// window into it, and returns the old buffer to the pool. Exactly one
// buffer is live at any time.
func (l *List[T]) adopt(capacity int) {
	newBuf := l.pool.Rent(capacity)[:capacity]
	copy(newBuf, l.buf[:l.size])
	l.returnBuf()
	l.buf = newBuf
}

func (l *List[T]) returnBuf() {
	if l.buf == nil {
		return
	}
	l.pool.Return(l.buf, l.clearRef)
	l.buf = nil
}

// checkRange validates that [index, index+count) lies within the live
// window.
func (l *List[T]) checkRange(index, count int) error {
	if index < 0 || count < 0 || index > l.size-count {
		return &RangeError{Index: index, Count: count, Size: l.size}
	}
	return nil
}

// panicNilFunc reports a nil required function collaborator. Passing one
// is a contract violation, not a recoverable condition.
func panicNilFunc() {
	panic(fmt.Errorf("%w: nil function", ErrInvalidArgument))
}

// Items returns the live window of the buffer: exactly the first Len()
// elements, writable, no copy. The returned slice is capacity-limited so
// appends by the caller cannot scribble over reserved slots. Writes
// through it bypass the generation counter; do not hold it across
// structural mutations.
func (l *List[T]) Items() []T {
	l.checkLive()
	return l.buf[:l.size:l.size]
}

// ToSlice materializes an independently owned copy of the live window.
func (l *List[T]) ToSlice() []T {
	l.checkLive()
	out := make([]T, l.size)
	copy(out, l.buf)
	return out
}
