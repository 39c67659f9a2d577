package bufpool

import (
	"math/bits"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sync/semaphore"
)

const (
	// minClassBits is the exponent of the smallest pooled class (8 elements).
	minClassBits = 3
	// maxClassBits is the exponent of the largest pooled class (262144
	// elements). Larger buffers are allocated directly and never retained.
	maxClassBits = 18

	numClasses = maxClassBits - minClassBits + 1

	// classDepth bounds the free list of each size class.
	classDepth = 64
)

// Stats is a snapshot of pool activity counters.
//
// Note on semantics:
//   - Rents: total Rent calls
//   - Hits: rents served from a free list
//   - Allocs: rents that fell back to a fresh allocation
//   - Returns: buffers accepted back into a free list
//   - Discards: returned buffers dropped (wrong size, full class, or
//     budget exhausted)
type Stats struct {
	Rents    uint64
	Hits     uint64
	Allocs   uint64
	Returns  uint64
	Discards uint64
}

type atomicStats struct {
	rents    atomic.Uint64
	hits     atomic.Uint64
	allocs   atomic.Uint64
	returns  atomic.Uint64
	discards atomic.Uint64
}

// Pool is a size-classed buffer pool for element type T.
// The zero value is not usable; use New.
type Pool[T any] struct {
	classes  [numClasses]chan []T
	budget   *semaphore.Weighted // nil when unlimited
	elemSize int64
	stats    atomicStats
}

type config struct {
	maxBytes int64
}

// Option configures a Pool.
type Option func(*config)

// WithMaxBytes bounds the total bytes the pool retains on its free lists.
// Zero or negative means unlimited.
func WithMaxBytes(n int64) Option {
	return func(c *config) {
		c.maxBytes = n
	}
}

// New creates an empty pool for element type T.
func New[T any](opts ...Option) *Pool[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	p := &Pool[T]{
		elemSize: int64(unsafe.Sizeof(zero)),
	}
	for i := range p.classes {
		p.classes[i] = make(chan []T, classDepth)
	}
	if cfg.maxBytes > 0 {
		p.budget = semaphore.NewWeighted(cfg.maxBytes)
	}
	return p
}

// classFor returns the index of the smallest class with size >= n.
func classFor(n int) (int, bool) {
	if n <= 0 {
		n = 1
	}
	b := bits.Len(uint(n - 1)) // ceil(log2(n))
	if b < minClassBits {
		b = minClassBits
	}
	if b > maxClassBits {
		return 0, false
	}
	return b - minClassBits, true
}

func classSize(class int) int {
	return 1 << (class + minClassBits)
}

// Rent returns a buffer with len(buf) >= minCapacity. Contents are
// unspecified and may hold stale data from a previous owner.
func (p *Pool[T]) Rent(minCapacity int) []T {
	p.stats.rents.Add(1)

	class, ok := classFor(minCapacity)
	if !ok {
		p.stats.allocs.Add(1)
		return make([]T, minCapacity)
	}

	select {
	case buf := <-p.classes[class]:
		p.release(buf)
		p.stats.hits.Add(1)
		return buf
	default:
		p.stats.allocs.Add(1)
		return make([]T, classSize(class))
	}
}

// Return releases buf back to the pool. When clearBuf is true the buffer
// is zeroed before it becomes available again. Buffers whose capacity is
// not exactly a class size are discarded.
func (p *Pool[T]) Return(buf []T, clearBuf bool) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)] // the full capacity region belongs to the pool

	class, ok := classFor(len(buf))
	if !ok || classSize(class) != len(buf) {
		p.stats.discards.Add(1)
		return
	}
	if !p.acquire(buf) {
		p.stats.discards.Add(1)
		return
	}
	if clearBuf {
		clear(buf)
	}

	select {
	case p.classes[class] <- buf:
		p.stats.returns.Add(1)
	default:
		p.release(buf)
		p.stats.discards.Add(1)
	}
}

// acquire reserves budget for retaining buf. It never blocks.
func (p *Pool[T]) acquire(buf []T) bool {
	if p.budget == nil {
		return true
	}
	return p.budget.TryAcquire(int64(len(buf)) * p.elemSize)
}

func (p *Pool[T]) release(buf []T) {
	if p.budget == nil {
		return
	}
	p.budget.Release(int64(len(buf)) * p.elemSize)
}

// Stats returns a snapshot of the pool activity counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Rents:    p.stats.rents.Load(),
		Hits:     p.stats.hits.Load(),
		Allocs:   p.stats.allocs.Load(),
		Returns:  p.stats.returns.Load(),
		Discards: p.stats.discards.Load(),
	}
}
