package types

import (
	"fmt"
	"math"
	"strings"
)

// handle identifies a node inside a single list's table.
type handle uint64

// none marks a missing neighbour. The counter never gets this far.
const none handle = math.MaxUint64

type node[T any] struct {
	data T
	next handle
	prev handle
}

// List is a doubly linked list whose nodes live in a table keyed by handle.
// Nodes reference their neighbours by handle only. Handles are issued from a
// counter and never reused, even after the node is removed.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T any] struct {
	table      map[handle]*node[T]
	nextHandle handle
	head       handle
	tail       handle
}

func (l *List[T]) lazyInit() {
	if l.table == nil {
		l.table = make(map[handle]*node[T])
		l.head = none
		l.tail = none
	}
}

func (l *List[T]) first() *node[T] {
	if len(l.table) == 0 {
		return nil
	}
	return l.table[l.head]
}

func (l *List[T]) last() *node[T] {
	if len(l.table) == 0 {
		return nil
	}
	return l.table[l.tail]
}

// follow resolves h, returning nil for none or an unknown handle.
func (l *List[T]) follow(h handle) *node[T] {
	if h == none {
		return nil
	}
	return l.table[h]
}

func (l *List[T]) issue() handle {
	h := l.nextHandle
	l.nextHandle++
	return h
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.table)
}

// At returns the element at index. A non-negative index counts from the head
// starting at 0. A negative index walks back from the tail, which itself sits
// at position 0, so At(-1) is the element just before the tail.
func (l *List[T]) At(index int) (value T, ok bool) {
	if index >= 0 {
		i := 0
		for n := l.first(); n != nil; n = l.follow(n.next) {
			if i == index {
				return n.data, true
			}
			i++
		}
		return
	}

	i := 0
	for n := l.last(); n != nil; n = l.follow(n.prev) {
		if i == index {
			return n.data, true
		}
		i--
	}
	return
}

// Push appends value at the tail.
func (l *List[T]) Push(value T) *List[T] {
	l.lazyInit()
	h := l.issue()
	l.table[h] = &node[T]{data: value, next: none, prev: l.tail}

	if old := l.follow(l.tail); old != nil {
		old.next = h
	}
	l.tail = h
	if l.head == none {
		l.head = h
	}
	return l
}

// Unshift prepends value at the head.
func (l *List[T]) Unshift(value T) *List[T] {
	l.lazyInit()
	h := l.issue()
	l.table[h] = &node[T]{data: value, next: l.head, prev: none}

	if old := l.follow(l.head); old != nil {
		old.prev = h
	}
	l.head = h
	if l.tail == none {
		l.tail = h
	}
	return l
}

// Pop removes and returns the tail element. ok is false if the list is empty.
func (l *List[T]) Pop() (value T, ok bool) {
	n := l.last()
	if n == nil {
		return
	}

	removed := l.tail
	if prev := l.follow(n.prev); prev != nil {
		prev.next = none
	}
	l.tail = n.prev
	if l.tail == none {
		l.head = none
	}
	delete(l.table, removed)
	return n.data, true
}

// Shift removes and returns the head element. ok is false if the list is empty.
func (l *List[T]) Shift() (value T, ok bool) {
	n := l.first()
	if n == nil {
		return
	}

	removed := l.head
	if next := l.follow(n.next); next != nil {
		next.prev = none
	}
	l.head = n.next
	if l.head == none {
		l.tail = none
	}
	delete(l.table, removed)
	return n.data, true
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() *List[T] {
	if len(l.table) == 0 {
		return l
	}

	for n := l.first(); n != nil; {
		// n.next is still the old forward link until the swap.
		next := l.follow(n.next)
		n.next, n.prev = n.prev, n.next
		n = next
	}
	l.head, l.tail = l.tail, l.head
	return l
}

// ToSlice returns the elements from head to tail.
func (l *List[T]) ToSlice() []T {
	res := make([]T, 0, len(l.table))
	for n := l.first(); n != nil; n = l.follow(n.next) {
		res = append(res, n.data)
	}
	return res
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.first(); n != nil; n = l.follow(n.next) {
		if n.prev != none {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.data)
	}
	b.WriteByte(']')
	return b.String()
}
