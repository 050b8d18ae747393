package types

import (
	"context"
	"iter"
)

// Source produces values in order. Next reports ok == false once the source is
// exhausted.
type Source[T any] interface {
	Next(ctx context.Context) (value T, ok bool, err error)
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	l.lazyInit()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// From builds a list from a finite sequence.
func From[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

// FromSource drains src into a new list in arrival order. The list is only
// returned once src is exhausted; on error nothing is returned.
func FromSource[T any](ctx context.Context, src Source[T]) (*List[T], error) {
	l := New[T]()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, ok, err := src.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return l, nil
		}
		l.Push(v)
	}
}

// FromChan drains ch into a new list until it is closed.
func FromChan[T any](ctx context.Context, ch <-chan T) (*List[T], error) {
	l := New[T]()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return l, nil
			}
			l.Push(v)
		}
	}
}
