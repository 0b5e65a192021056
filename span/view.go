// Package span provides View, a non-owning window over a run of elements,
// and comparisons between a View and any other sequence of the same element
// type.
//
// The comparisons are free functions rather than methods so that the other
// side can be any container: a slice, another View, or something that can
// only be traversed. Which comparisons exist for a given element type is
// decided by the constraints on those functions:
//
//	span.Equal      // element type is comparable
//	span.Compare    // element type is cmp.Ordered
//	span.CompareLess // element type has LessThan
//
// Mixing element types (a View[int32] against a Range[int64]) does not
// compile.
package span

import (
	"iter"
	"unsafe"
)

// View is a non-owning reference to a contiguous run of elements. Copying a
// View never copies the elements. The memory it refers to belongs to the
// caller and must outlive every use of the View.
type View[T any] struct {
	elems []T
}

var _ Contiguous[int] = View[int]{}

// New returns a View over elems.
func New[T any](elems []T) View[T] {
	return View[T]{elems: elems}
}

// Of returns a View over its arguments.
func Of[T any](elems ...T) View[T] {
	return View[T]{elems: elems}
}

// FromPointer returns a View over the n elements starting at p.
// A nil p is only valid with n == 0.
func FromPointer[T any](p *T, n int) View[T] {
	return View[T]{elems: unsafe.Slice(p, n)}
}

// Len returns the number of elements.
func (v View[T]) Len() int {
	return len(v.elems)
}

// Empty reports whether the View has no elements.
func (v View[T]) Empty() bool {
	return len(v.elems) == 0
}

// At returns the element at index i. It panics if i is out of range.
func (v View[T]) At(i int) T { //nolint:ireturn
	return v.elems[i]
}

// Elems returns the viewed elements. The slice shares memory with the View;
// its capacity is clipped so appending to it never writes past the View.
func (v View[T]) Elems() []T {
	return v.elems[:len(v.elems):len(v.elems)]
}

// All iterates over the elements front to back.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range v.elems {
			if !yield(elem) {
				return
			}
		}
	}
}

// Backward iterates over the elements back to front.
func (v View[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(v.elems) - 1; i >= 0; i-- {
			if !yield(v.elems[i]) {
				return
			}
		}
	}
}

// Sub returns the View of count elements starting at offset.
// It panics if the range does not fit.
func (v View[T]) Sub(offset, count int) View[T] {
	return View[T]{elems: v.elems[offset : offset+count : offset+count]}
}

// First returns the View of the first n elements.
func (v View[T]) First(n int) View[T] {
	return v.Sub(0, n)
}

// Last returns the View of the last n elements.
func (v View[T]) Last(n int) View[T] {
	return v.Sub(len(v.elems)-n, n)
}
