package types

import "iter"

// All returns a sequence over the elements from head to tail. Each call
// starts a fresh traversal from the current head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first(); n != nil; n = l.follow(n.next) {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Backward returns a sequence over the elements from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.last(); n != nil; n = l.follow(n.prev) {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Enumerate is like All but also yields each element's position.
func (l *List[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.first(); n != nil; n = l.follow(n.next) {
			if !yield(i, n.data) {
				return
			}
			i++
		}
	}
}

// ForEach calls fn for every element from head to tail.
func (l *List[T]) ForEach(fn func(value T, index int)) {
	for i, v := range l.Enumerate() {
		fn(v, i)
	}
}

// Filter returns a new list holding the elements for which fn is true.
func (l *List[T]) Filter(fn func(value T, index int) bool) *List[T] {
	res := New[T]()
	for i, v := range l.Enumerate() {
		if fn(v, i) {
			res.Push(v)
		}
	}
	return res
}

// Concat returns a new list with the elements of l followed by those of other.
// Neither list is modified.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	res := New[T]()
	for v := range l.All() {
		res.Push(v)
	}
	for v := range other.All() {
		res.Push(v)
	}
	return res
}

// Map returns a new list holding fn applied to every element of l.
func Map[T, R any](l *List[T], fn func(value T, index int) R) *List[R] {
	res := New[R]()
	for i, v := range l.Enumerate() {
		res.Push(fn(v, i))
	}
	return res
}

// Reduce folds the list from head to tail, starting from initial. fn receives
// l itself as its last argument.
func Reduce[T, R any](l *List[T], fn func(acc R, value T, index int, list *List[T]) R, initial R) R {
	acc := initial
	for i, v := range l.Enumerate() {
		acc = fn(acc, v, i, l)
	}
	return acc
}

// ToSet returns the distinct elements of l.
func ToSet[T comparable](l *List[T]) map[T]struct{} {
	res := make(map[T]struct{}, l.Len())
	for v := range l.All() {
		res[v] = struct{}{}
	}
	return res
}
