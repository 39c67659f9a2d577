package poolist

import "fmt"

// AppendSpan grows the list by count elements and returns a writable
// window into the newly live slots, so callers can fill a batch in place
// instead of copying element by element. When T can hold references the
// window is pre-cleared, so slots the caller never writes do not expose
// stale data as live elements; for plain value types the contents are
// unspecified until written.
func (l *List[T]) AppendSpan(count int) ([]T, error) {
	l.checkLive()
	return l.openSpan(l.size, count)
}

// InsertSpan opens a writable window of count elements at index, shifting
// the tail right in one move. See AppendSpan for the clearing contract.
func (l *List[T]) InsertSpan(index, count int) ([]T, error) {
	l.checkLive()
	return l.openSpan(index, count)
}

func (l *List[T]) openSpan(index, count int) ([]T, error) {
	if index < 0 || index > l.size {
		return nil, &IndexError{Index: index, Size: l.size}
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidArgument, count)
	}
	if count == 0 {
		return nil, nil
	}
	if err := l.ensureCapacity(l.size + count); err != nil {
		return nil, err
	}

	copy(l.buf[index+count:l.size+count], l.buf[index:l.size])
	win := l.buf[index : index+count : index+count]
	if l.clearRef {
		clear(win)
	}
	l.size += count
	l.gen++
	return win, nil
}
