package span

import (
	"iter"
	"slices"
)

// Range is any sequence a View can be compared against.
type Range[T any] interface {
	All() iter.Seq[T]
}

// Contiguous is a Range whose elements live in one run of memory. Comparing
// against a Contiguous range avoids iteration overhead and, for unsigned
// integer and byte elements, enables the raw memory fast path.
type Contiguous[T any] interface {
	Range[T]
	Elems() []T
}

// Slice adapts a plain slice (or any growable array) to Contiguous.
type Slice[T any] []T

var _ Contiguous[int] = Slice[int](nil)

func (s Slice[T]) All() iter.Seq[T] {
	return slices.Values(s)
}

func (s Slice[T]) Elems() []T {
	return s
}

// Seq adapts a traversal to Range. Use it for containers that are not laid
// out contiguously, such as lists or trees.
type Seq[T any] iter.Seq[T]

var _ Range[int] = Seq[int](nil)

func (s Seq[T]) All() iter.Seq[T] {
	return iter.Seq[T](s)
}

// elemsOf returns the backing slice of r when it is contiguous.
func elemsOf[T any, R Range[T]](r R) ([]T, bool) {
	if c, ok := any(r).(Contiguous[T]); ok {
		return c.Elems(), true
	}

	return nil, false
}
