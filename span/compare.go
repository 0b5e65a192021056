package span

import (
	"cmp"

	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/lexicographic"
	"github.com/amp-labs/span-compare/ordering"
)

// Compare orders v against other lexicographically. A View that is a strict
// prefix of other is Less. When other is Contiguous and the elements are
// unsigned integers or bytes, the comparison runs on raw memory.
func Compare[T cmp.Ordered, R Range[T]](v View[T], other R) ordering.Ordering {
	if elems, ok := elemsOf[T](other); ok {
		return lexicographic.Compare(v.elems, elems)
	}

	return lexicographic.CompareSeqFunc(v.elems, other.All(), compare.Native[T])
}

// CompareLess orders v against other for element types that only provide
// LessThan. Each element pair costs at most two LessThan calls; element types
// that also implement compare.ThreeWayComparable use that instead.
func CompareLess[T compare.LessThanComparable[T], R Range[T]](v View[T], other R) ordering.Ordering {
	return CompareFunc(v, other, compare.Synthesize[T])
}

// CompareFunc orders v against other with a caller-supplied element comparison.
func CompareFunc[T any, R Range[T]](v View[T], other R, cmp func(T, T) ordering.Ordering) ordering.Ordering {
	if elems, ok := elemsOf[T](other); ok {
		return lexicographic.CompareFunc(v.elems, elems, cmp)
	}

	return lexicographic.CompareSeqFunc(v.elems, other.All(), cmp)
}

// CompareRange is Compare with the operands written the other way around:
// it orders other against v.
func CompareRange[T cmp.Ordered, R Range[T]](other R, v View[T]) ordering.Ordering {
	return Compare(v, other).Reverse()
}

// CompareLessRange is CompareLess with the operands written the other way
// around: it orders other against v.
func CompareLessRange[T compare.LessThanComparable[T], R Range[T]](other R, v View[T]) ordering.Ordering {
	return CompareLess(v, other).Reverse()
}

// Less reports whether v orders before other.
func Less[T cmp.Ordered, R Range[T]](v View[T], other R) bool {
	return Compare(v, other).IsLess()
}

// LessOrEqual reports whether v does not order after other.
func LessOrEqual[T cmp.Ordered, R Range[T]](v View[T], other R) bool {
	return Compare(v, other).IsLessOrEqual()
}

// Greater reports whether v orders after other.
func Greater[T cmp.Ordered, R Range[T]](v View[T], other R) bool {
	return Compare(v, other).IsGreater()
}

// GreaterOrEqual reports whether v does not order before other.
func GreaterOrEqual[T cmp.Ordered, R Range[T]](v View[T], other R) bool {
	return Compare(v, other).IsGreaterOrEqual()
}
