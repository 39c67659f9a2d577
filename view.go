package poolist

import "iter"

// ReadOnly is a non-mutating view over the live data of a list. It copies
// nothing: reads observe mutations made through the underlying list, and
// it becomes invalid when the list is released.
type ReadOnly[T any] struct {
	list *List[T]
}

// ReadOnly returns a read-only view of the list.
func (l *List[T]) ReadOnly() ReadOnly[T] {
	l.checkLive()
	return ReadOnly[T]{list: l}
}

// Len returns the logical element count.
func (v ReadOnly[T]) Len() int { return v.list.Len() }

// Get returns the element at index i.
func (v ReadOnly[T]) Get(i int) (T, error) { return v.list.Get(i) }

// Find returns the first element satisfying pred.
func (v ReadOnly[T]) Find(pred func(T) bool) (T, bool) { return v.list.Find(pred) }

// FindLast returns the last element satisfying pred.
func (v ReadOnly[T]) FindLast(pred func(T) bool) (T, bool) { return v.list.FindLast(pred) }

// FindIndex returns the index of the first element satisfying pred, or -1.
func (v ReadOnly[T]) FindIndex(pred func(T) bool) int { return v.list.FindIndex(pred) }

// ForEach applies fn to every element in order.
func (v ReadOnly[T]) ForEach(fn func(T)) error { return v.list.ForEach(fn) }

// TrueForAll reports whether pred holds for every element.
func (v ReadOnly[T]) TrueForAll(pred func(T) bool) bool { return v.list.TrueForAll(pred) }

// Iterator creates a traversal over the view.
func (v ReadOnly[T]) Iterator() *Iterator[T] { return v.list.Iterator() }

// All returns a range-over-func sequence of (index, element).
func (v ReadOnly[T]) All() iter.Seq2[int, T] { return v.list.All() }

// ToSlice materializes an independently owned copy of the live window.
func (v ReadOnly[T]) ToSlice() []T { return v.list.ToSlice() }
