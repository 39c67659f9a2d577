package poolist

import (
	"cmp"
	"slices"
)

// Sort sorts the whole list ascending by natural order. The sort is
// in-place and not stable.
func Sort[T cmp.Ordered](l *List[T]) {
	l.checkLive()
	slices.Sort(l.buf[:l.size])
	l.gen++
}

// IsSorted reports whether the list is ascending by natural order.
func IsSorted[T cmp.Ordered](l *List[T]) bool {
	l.checkLive()
	return slices.IsSorted(l.buf[:l.size])
}

// BinarySearch locates v in a list that is ascending by natural order.
// See BinarySearchFunc for the return encoding.
func BinarySearch[T cmp.Ordered](l *List[T], v T) int {
	l.checkLive()
	return binarySearch(l.buf[:l.size], v, cmp.Compare[T])
}

// SortFunc sorts the whole list in-place using cmp. Stability is not
// guaranteed.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	l.checkLive()
	if cmp == nil {
		panicNilFunc()
	}
	slices.SortFunc(l.buf[:l.size], cmp)
	l.gen++
}

// SortRangeFunc sorts the window [index, index+count) in-place using cmp.
func (l *List[T]) SortRangeFunc(index, count int, cmp func(a, b T) int) error {
	l.checkLive()
	if cmp == nil {
		panicNilFunc()
	}
	if err := l.checkRange(index, count); err != nil {
		return err
	}
	slices.SortFunc(l.buf[index:index+count], cmp)
	l.gen++
	return nil
}

// BinarySearchFunc locates v in a list that is already sorted ascending
// per cmp. On a hit it returns a non-negative index of an element equal
// to v (which one among equals is unspecified). On a miss it returns a
// negative value r such that ^r is the index at which v would have to be
// inserted to keep the list sorted. Behavior on an unsorted list is
// unspecified.
func (l *List[T]) BinarySearchFunc(v T, cmp func(a, b T) int) int {
	l.checkLive()
	if cmp == nil {
		panicNilFunc()
	}
	return binarySearch(l.buf[:l.size], v, cmp)
}

// BinarySearchRangeFunc is BinarySearchFunc restricted to the window
// [index, index+count), which must already be sorted ascending per cmp.
func (l *List[T]) BinarySearchRangeFunc(index, count int, v T, cmp func(a, b T) int) (int, error) {
	l.checkLive()
	if cmp == nil {
		panicNilFunc()
	}
	if err := l.checkRange(index, count); err != nil {
		return 0, err
	}
	r := binarySearch(l.buf[index:index+count], v, cmp)
	if r >= 0 {
		return index + r, nil
	}
	return ^(index + ^r), nil
}

func binarySearch[T any](window []T, v T, cmp func(a, b T) int) int {
	lo, hi := 0, len(window)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		c := cmp(window[m], v)
		switch {
		case c == 0:
			return m
		case c < 0:
			lo = m + 1
		default:
			hi = m
		}
	}
	return ^lo
}

// Reverse reverses the whole list in place.
func (l *List[T]) Reverse() {
	l.checkLive()
	// The full window is always a valid range.
	_ = l.ReverseRange(0, l.size)
}

// ReverseRange reverses the window [index, index+count) in place. A
// window of one element or less is a no-op.
func (l *List[T]) ReverseRange(index, count int) error {
	l.checkLive()
	if err := l.checkRange(index, count); err != nil {
		return err
	}
	if count <= 1 {
		return nil
	}
	slices.Reverse(l.buf[index : index+count])
	l.gen++
	return nil
}
