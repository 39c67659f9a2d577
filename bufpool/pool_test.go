package bufpool

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestPool_RentRoundsUpToClass(t *testing.T) {
	p := New[int]()

	assert.Len(t, p.Rent(1), 8)
	assert.Len(t, p.Rent(8), 8)
	assert.Len(t, p.Rent(9), 16)
	assert.Len(t, p.Rent(1000), 1024)
}

func TestPool_RentBeyondLargestClass(t *testing.T) {
	p := New[byte]()

	huge := p.Rent((1 << maxClassBits) + 1)
	assert.Len(t, huge, (1<<maxClassBits)+1)

	p.Return(huge, false)
	assert.Equal(t, uint64(1), p.Stats().Discards, "oversized buffers are never retained")
}

func TestPool_Reuse(t *testing.T) {
	p := New[int]()

	a := p.Rent(10)
	ptr := unsafe.Pointer(unsafe.SliceData(a))
	p.Return(a, false)

	b := p.Rent(10)
	assert.Equal(t, ptr, unsafe.Pointer(unsafe.SliceData(b)), "the returned buffer is recycled")

	s := p.Stats()
	assert.Equal(t, uint64(2), s.Rents)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Allocs)
	assert.Equal(t, uint64(1), s.Returns)
}

func TestPool_ReturnClears(t *testing.T) {
	p := New[*int]()

	v := 1
	buf := p.Rent(8)
	buf[3] = &v
	p.Return(buf, true)

	recycled := p.Rent(8)
	for i, e := range recycled {
		assert.Nil(t, e, "slot %d still holds a reference", i)
	}
}

func TestPool_ReturnSkipsClearWhenNotRequested(t *testing.T) {
	p := New[int]()

	buf := p.Rent(8)
	buf[0] = 42
	p.Return(buf, false)

	recycled := p.Rent(8)
	assert.Equal(t, 42, recycled[0], "contents are unspecified but not zeroed")
}

func TestPool_ReturnReslicedBuffer(t *testing.T) {
	p := New[int]()

	buf := p.Rent(16)
	// Containers hand back exact-capacity views; the pool reclaims the
	// full region.
	p.Return(buf[:5], false)

	assert.Equal(t, uint64(1), p.Stats().Returns)
	assert.Len(t, p.Rent(16), 16)
	assert.Equal(t, uint64(1), p.Stats().Hits)
}

func TestPool_ReturnForeignSizeDiscarded(t *testing.T) {
	p := New[int]()

	p.Return(make([]int, 13), false)

	s := p.Stats()
	assert.Equal(t, uint64(1), s.Discards)
	assert.Equal(t, uint64(0), s.Returns)
}

func TestPool_ReturnNil(t *testing.T) {
	p := New[int]()
	p.Return(nil, true)
	assert.Equal(t, uint64(0), p.Stats().Discards)
}

func TestPool_MaxBytes(t *testing.T) {
	// Budget fits exactly one 8-element int buffer.
	p := New[int](WithMaxBytes(8 * 8))

	a := p.Rent(8)
	b := p.Rent(8)
	p.Return(a, false)
	p.Return(b, false)

	s := p.Stats()
	assert.Equal(t, uint64(1), s.Returns, "second return exceeds the budget")
	assert.Equal(t, uint64(1), s.Discards)

	// Renting the retained buffer frees budget for the next return.
	c := p.Rent(8)
	p.Return(c, false)
	assert.Equal(t, uint64(2), p.Stats().Returns)
}

func TestPool_MaxBytesNeverBlocks(t *testing.T) {
	p := New[int](WithMaxBytes(1))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			p.Return(p.Rent(64), false)
		}
	}()
	<-done

	assert.Equal(t, uint64(100), p.Stats().Rents)
}

func TestPool_ConcurrentRentReturn(t *testing.T) {
	p := New[int]()

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 1000; i++ {
				buf := p.Rent(1 + i%500)
				buf[0] = i
				p.Return(buf, false)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	s := p.Stats()
	assert.Equal(t, uint64(8000), s.Rents)
	assert.Equal(t, s.Rents, s.Hits+s.Allocs)
}

func TestShared_SameInstancePerType(t *testing.T) {
	assert.Same(t, Shared[int](), Shared[int]())
	assert.Same(t, Shared[string](), Shared[string]())
}

func TestClassFor(t *testing.T) {
	tests := []struct {
		n     int
		class int
		ok    bool
	}{
		{n: 0, class: 0, ok: true},
		{n: 1, class: 0, ok: true},
		{n: 8, class: 0, ok: true},
		{n: 9, class: 1, ok: true},
		{n: 1 << maxClassBits, class: numClasses - 1, ok: true},
		{n: (1 << maxClassBits) + 1, ok: false},
	}

	for _, tt := range tests {
		class, ok := classFor(tt.n)
		assert.Equal(t, tt.ok, ok, "n=%d", tt.n)
		if tt.ok {
			assert.Equal(t, tt.class, class, "n=%d", tt.n)
			assert.GreaterOrEqual(t, classSize(class), tt.n)
		}
	}
}
