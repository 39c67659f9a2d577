package poolist

import (
	"fmt"
	"iter"
	"unsafe"
)

// AddSlice appends all elements of src, reserving capacity once for the
// whole batch. src may alias the list's own buffer.
func (l *List[T]) AddSlice(src []T) error {
	l.checkLive()
	return l.insertSlice(l.size, src)
}

// InsertSlice places all elements of src at index, shifting the tail
// right by len(src) in one move. src may alias the list's own buffer,
// including the full live window.
func (l *List[T]) InsertSlice(index int, src []T) error {
	l.checkLive()
	return l.insertSlice(index, src)
}

// AddList appends the contents of another list. src may be the receiver.
func (l *List[T]) AddList(src *List[T]) error {
	l.checkLive()
	if src == nil {
		return fmt.Errorf("%w: nil source list", ErrInvalidArgument)
	}
	src.checkLive()
	return l.insertSlice(l.size, src.buf[:src.size])
}

// InsertList places the contents of another list at index. src may be
// the receiver itself: the overlapping copy is resolved with a two-part
// in-place duplication, so l.InsertList(0, l) turns [1 2 3] into
// [1 2 3 1 2 3].
func (l *List[T]) InsertList(index int, src *List[T]) error {
	l.checkLive()
	if src == nil {
		return fmt.Errorf("%w: nil source list", ErrInvalidArgument)
	}
	src.checkLive()
	return l.insertSlice(index, src.buf[:src.size])
}

func (l *List[T]) insertSlice(index int, src []T) error {
	if index < 0 || index > l.size {
		return &IndexError{Index: index, Size: l.size}
	}
	n := len(src)
	if n == 0 {
		return nil
	}

	// Aliasing must be resolved before growth: ensureCapacity moves the
	// live window into a new buffer, which would invalidate src.
	off, aliased := l.aliasOffset(src)

	if err := l.ensureCapacity(l.size + n); err != nil {
		return err
	}

	// Shift the tail right by n. copy has memmove semantics, so the
	// overlapping move is safe.
	copy(l.buf[index+n:l.size+n], l.buf[index:l.size])

	if aliased {
		l.copyShifted(index, off, n)
	} else {
		copy(l.buf[index:], src)
	}
	l.size += n
	l.gen++
	return nil
}

// aliasOffset reports whether src points into the list's live window and,
// if so, at which element offset. Growth preserves live-window offsets,
// so an offset stays valid across a buffer swap while a raw slice header
// does not.
func (l *List[T]) aliasOffset(src []T) (int, bool) {
	var zero T
	elem := unsafe.Sizeof(zero)
	if elem == 0 || len(l.buf) == 0 || len(src) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(l.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(src)))
	if p < base || p >= base+uintptr(l.size)*elem {
		return 0, false
	}
	return int((p - base) / elem), true
}

// copyShifted fills the insertion gap [index, index+n) from a source that
// occupied [off, off+n) of the live window before the tail shift. The
// part of the source that lay below the insertion point is still in
// place; the remainder moved right by n together with the tail. A naive
// single copy would read slots the shift already overwrote.
func (l *List[T]) copyShifted(index, off, n int) {
	dst := l.buf[index : index+n]
	k := 0
	if off < index {
		k = min(index, off+n) - off
		copy(dst[:k], l.buf[off:off+k])
	}
	if k < n {
		moved := off + k + n
		copy(dst[k:], l.buf[moved:moved+n-k])
	}
}

// AddSeq appends every element produced by seq. The sequence length is
// unknown up front, so elements are appended one at a time.
func (l *List[T]) AddSeq(seq iter.Seq[T]) error {
	l.checkLive()
	return l.insertSeq(l.size, seq)
}

// InsertSeq inserts every element produced by seq starting at index,
// preserving sequence order. Without a length to reserve for, this falls
// back to repeated single-element inserts.
func (l *List[T]) InsertSeq(index int, seq iter.Seq[T]) error {
	l.checkLive()
	return l.insertSeq(index, seq)
}

func (l *List[T]) insertSeq(index int, seq iter.Seq[T]) error {
	if seq == nil {
		panicNilFunc()
	}
	if index < 0 || index > l.size {
		return &IndexError{Index: index, Size: l.size}
	}
	i := index
	for v := range seq {
		if err := l.Insert(i, v); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Convert produces a new list of the same length with every element
// mapped through fn. The source list is not mutated. The result uses the
// default pool for U; release it independently.
func Convert[T, U any](l *List[T], fn func(T) U) *List[U] {
	l.checkLive()
	if fn == nil {
		panicNilFunc()
	}
	out := New[U]()
	if l.size > 0 {
		// The source size already fits MaxCapacity, so the span cannot fail.
		win, _ := out.AppendSpan(l.size)
		for i := 0; i < l.size; i++ {
			win[i] = fn(l.buf[i])
		}
	}
	return out
}

// FindAll returns a new list holding, in order, every element for which
// pred returns true. The result shares the receiver's pool and must be
// released independently.
func (l *List[T]) FindAll(pred func(T) bool) *List[T] {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	out := l.derived()
	for i := 0; i < l.size; i++ {
		if pred(l.buf[i]) {
			// Cannot exceed MaxCapacity: the result is never larger than
			// the source.
			_ = out.Add(l.buf[i])
		}
	}
	return out
}
