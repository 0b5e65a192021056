package span

import (
	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/lexicographic"
)

// Equal reports whether v and other hold the same elements in the same order.
// Elements are compared with ==, so the answer does not depend on how other
// is wrapped; a View holding a NaN is not equal even to itself.
func Equal[T comparable, R Range[T]](v View[T], other R) bool {
	return EqualFunc(v, other, func(a, b T) bool { return a == b })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable, R Range[T]](v View[T], other R) bool {
	return !Equal(v, other)
}

// EqualComparable is Equal for element types that define their own equality.
func EqualComparable[T compare.Comparable[T], R Range[T]](v View[T], other R) bool {
	return EqualFunc(v, other, compare.EqualFunc[T])
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any, R Range[T]](v View[T], other R, eq func(T, T) bool) bool {
	if elems, ok := elemsOf[T](other); ok {
		return lexicographic.EqualFunc(v.elems, elems, eq)
	}

	return lexicographic.EqualSeqFunc(v.elems, other.All(), eq)
}

// EqualRange is Equal with the operands written the other way around.
func EqualRange[T comparable, R Range[T]](other R, v View[T]) bool {
	return Equal(v, other)
}

// EqualComparableRange is EqualComparable with the operands written the
// other way around.
func EqualComparableRange[T compare.Comparable[T], R Range[T]](other R, v View[T]) bool {
	return EqualComparable(v, other)
}
