package lexicographic

import (
	"cmp"
	"iter"

	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/ordering"
)

// Compare orders two sequences of built-in ordered values. Unsigned integer
// and byte sequences take the raw memory fast path unless it was compiled
// out; everything else is compared element by element with cmp.Compare
// semantics.
func Compare[T cmp.Ordered](a, b []T) ordering.Ordering {
	if fastPathEnabled {
		if result, ok := compareMemoryKind(a, b); ok {
			return result
		}
	}

	return CompareFunc(a, b, compare.Native[T])
}

// CompareGeneral orders two sequences of built-in ordered values without ever
// taking the fast path. It is the reference Compare is checked against.
func CompareGeneral[T cmp.Ordered](a, b []T) ordering.Ordering {
	return CompareFunc(a, b, compare.Native[T])
}

// CompareFunc orders a and b using cmp for each element pair. It returns the
// first ordering that is not Equivalent; if every pair of the common prefix
// is equivalent, the shorter sequence is Less.
func CompareFunc[T any](a, b []T, cmp func(T, T) ordering.Ordering) ordering.Ordering {
	for i := range a {
		if i >= len(b) {
			return ordering.Greater
		}

		if result := cmp(a[i], b[i]); result != ordering.Equivalent {
			return result
		}
	}

	return byLength(len(a), len(b))
}

// CompareSeqFunc is CompareFunc with a right-hand side that is only
// traversable, not indexable.
func CompareSeqFunc[T any](a []T, b iter.Seq[T], cmp func(T, T) ordering.Ordering) ordering.Ordering {
	i := 0

	for elem := range b {
		if i >= len(a) {
			// a is a strict prefix of b
			return ordering.Less
		}

		if result := cmp(a[i], elem); result != ordering.Equivalent {
			return result
		}

		i++
	}

	if i < len(a) {
		return ordering.Greater
	}

	return ordering.Equivalent
}

// CompareSeqsFunc orders two traversals. The right-hand side is pulled one
// element at a time, so it is stopped early when the answer is known.
func CompareSeqsFunc[T any](a, b iter.Seq[T], cmp func(T, T) ordering.Ordering) ordering.Ordering {
	next, stop := iter.Pull(b)
	defer stop()

	for left := range a {
		right, ok := next()
		if !ok {
			return ordering.Greater
		}

		if result := cmp(left, right); result != ordering.Equivalent {
			return result
		}
	}

	if _, more := next(); more {
		return ordering.Less
	}

	return ordering.Equivalent
}

func byLength(n, m int) ordering.Ordering {
	return ordering.FromInt(cmp.Compare(n, m))
}
