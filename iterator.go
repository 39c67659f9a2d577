package poolist

import (
	"errors"
	"iter"
)

type iterState int

const (
	iterNotStarted iterState = iota
	iterActive
	iterEnded
)

// Iterator traverses a list in order while watching for structural
// mutation. It holds a snapshot of the list's generation counter taken at
// creation; any mutation after that makes the next Next call fail.
//
//	it := l.Iterator()
//	for it.Next() {
//	    use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	list  *List[T]
	gen   uint64
	index int
	state iterState
	cur   T
	err   error
}

// Iterator creates a new traversal positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	l.checkLive()
	return &Iterator[T]{list: l, gen: l.gen}
}

// Next advances to the next element. It returns false on exhaustion or
// when the list was mutated since the iterator was created; distinguish
// the two with Err. A mutation failure is terminal.
func (it *Iterator[T]) Next() bool {
	if it.err != nil || it.state == iterEnded {
		return false
	}
	if it.list.gen != it.gen {
		it.err = ErrConcurrentMutation
		it.state = iterEnded
		return false
	}
	if it.index >= it.list.size {
		it.state = iterEnded
		return false
	}
	it.cur = it.list.buf[it.index]
	it.index++
	it.state = iterActive
	return true
}

// Value returns the element yielded by the last successful Next. Calling
// it before the first Next or after exhaustion is a contract violation
// and panics.
func (it *Iterator[T]) Value() T {
	if it.state != iterActive {
		panic(errors.New("poolist: Iterator.Value outside a successful Next"))
	}
	return it.cur
}

// Err returns ErrConcurrentMutation if the traversal detected a mutation,
// nil after a clean exhaustion or mid-traversal.
func (it *Iterator[T]) Err() error { return it.err }

// Reset rewinds the iterator to before the first element. It is allowed
// only while the list is still unmutated relative to the snapshot;
// otherwise it fails with ErrConcurrentMutation.
func (it *Iterator[T]) Reset() error {
	if it.err != nil {
		return it.err
	}
	if it.list.gen != it.gen {
		it.err = ErrConcurrentMutation
		return it.err
	}
	it.index = 0
	it.state = iterNotStarted
	var zero T
	it.cur = zero
	return nil
}

// All returns a range-over-func sequence of (index, element). The
// range-over-func protocol has no error channel, so mutation during the
// loop panics with ErrConcurrentMutation; use Iterator or ForEach when an
// error is preferred.
func (l *List[T]) All() iter.Seq2[int, T] {
	l.checkLive()
	return func(yield func(int, T) bool) {
		gen := l.gen
		for i := 0; i < l.size; i++ {
			if l.gen != gen {
				panic(ErrConcurrentMutation)
			}
			if !yield(i, l.buf[i]) {
				return
			}
		}
	}
}
