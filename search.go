package poolist

// Equality-based lookups are package-level functions with a comparable
// constraint, mirroring the standard slices package; List itself places
// no constraint on its element type.

// Index returns the index of the first element equal to v, or -1.
func Index[T comparable](l *List[T], v T) int {
	l.checkLive()
	for i := 0; i < l.size; i++ {
		if l.buf[i] == v {
			return i
		}
	}
	return -1
}

// IndexRange returns the index of the first element equal to v within
// the window [index, index+count), or -1.
func IndexRange[T comparable](l *List[T], v T, index, count int) (int, error) {
	l.checkLive()
	if err := l.checkRange(index, count); err != nil {
		return -1, err
	}
	for i := index; i < index+count; i++ {
		if l.buf[i] == v {
			return i, nil
		}
	}
	return -1, nil
}

// LastIndex returns the index of the last element equal to v, or -1.
func LastIndex[T comparable](l *List[T], v T) int {
	l.checkLive()
	for i := l.size - 1; i >= 0; i-- {
		if l.buf[i] == v {
			return i
		}
	}
	return -1
}

// LastIndexRange returns the index of the last element equal to v within
// the window [index, index+count), scanning backward, or -1.
func LastIndexRange[T comparable](l *List[T], v T, index, count int) (int, error) {
	l.checkLive()
	if err := l.checkRange(index, count); err != nil {
		return -1, err
	}
	for i := index + count - 1; i >= index; i-- {
		if l.buf[i] == v {
			return i, nil
		}
	}
	return -1, nil
}

// Contains reports whether the list holds an element equal to v.
func Contains[T comparable](l *List[T], v T) bool {
	return Index(l, v) >= 0
}

// Remove deletes the first element equal to v and reports whether one
// was removed.
func Remove[T comparable](l *List[T], v T) bool {
	i := Index(l, v)
	if i < 0 {
		return false
	}
	// The index was just found, so RemoveAt cannot fail.
	_ = l.RemoveAt(i)
	return true
}

// Find returns the first element satisfying pred. The boolean
// distinguishes "found the zero value" from "not found".
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	for i := 0; i < l.size; i++ {
		if pred(l.buf[i]) {
			return l.buf[i], true
		}
	}
	var zero T
	return zero, false
}

// FindLast returns the last element satisfying pred.
func (l *List[T]) FindLast(pred func(T) bool) (T, bool) {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	for i := l.size - 1; i >= 0; i-- {
		if pred(l.buf[i]) {
			return l.buf[i], true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func (l *List[T]) FindIndex(pred func(T) bool) int {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	for i := 0; i < l.size; i++ {
		if pred(l.buf[i]) {
			return i
		}
	}
	return -1
}

// FindIndexRange returns the index of the first element satisfying pred
// within the window [index, index+count), or -1.
func (l *List[T]) FindIndexRange(index, count int, pred func(T) bool) (int, error) {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	if err := l.checkRange(index, count); err != nil {
		return -1, err
	}
	for i := index; i < index+count; i++ {
		if pred(l.buf[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// FindLastIndex returns the index of the last element satisfying pred, or -1.
func (l *List[T]) FindLastIndex(pred func(T) bool) int {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	for i := l.size - 1; i >= 0; i-- {
		if pred(l.buf[i]) {
			return i
		}
	}
	return -1
}

// FindLastIndexRange returns the index of the last element satisfying
// pred within the window [index, index+count), scanning backward, or -1.
func (l *List[T]) FindLastIndexRange(index, count int, pred func(T) bool) (int, error) {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	if err := l.checkRange(index, count); err != nil {
		return -1, err
	}
	for i := index + count - 1; i >= index; i-- {
		if pred(l.buf[i]) {
			return i, nil
		}
	}
	return -1, nil
}

// ForEach applies fn to every element in order. If fn mutates the list,
// the traversal stops with ErrConcurrentMutation instead of continuing
// over a stale range.
func (l *List[T]) ForEach(fn func(T)) error {
	l.checkLive()
	if fn == nil {
		panicNilFunc()
	}
	gen := l.gen
	for i := 0; i < l.size; i++ {
		if l.gen != gen {
			return ErrConcurrentMutation
		}
		fn(l.buf[i])
	}
	if l.gen != gen {
		return ErrConcurrentMutation
	}
	return nil
}

// TrueForAll reports whether pred holds for every element,
// short-circuiting on the first failure.
func (l *List[T]) TrueForAll(pred func(T) bool) bool {
	l.checkLive()
	if pred == nil {
		panicNilFunc()
	}
	for i := 0; i < l.size; i++ {
		if !pred(l.buf[i]) {
			return false
		}
	}
	return true
}
