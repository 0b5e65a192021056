package lexicographic

import (
	"iter"
	"unsafe"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements. Elements are always compared with ==, so a sequence holding a
// NaN is not equal to anything, itself included.
func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality. eq is called
// for every pair up to the first mismatch, even when a and b share memory.
func EqualFunc[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}

	return true
}

// EqualSeqFunc compares a contiguous sequence against an arbitrary traversal.
// It stops pulling from b as soon as the answer is known.
func EqualSeqFunc[T any](a []T, b iter.Seq[T], eq func(T, T) bool) bool {
	i := 0

	for elem := range b {
		if i >= len(a) || !eq(a[i], elem) {
			return false
		}

		i++
	}

	return i == len(a)
}

// aliased reports whether a and b are the same run of memory. The caller
// has already checked that the lengths match. Only the raw memory ordering
// uses it: identical bytes need no comparing.
func aliased[T any](a, b []T) bool {
	return len(a) > 0 && unsafe.SliceData(a) == unsafe.SliceData(b)
}
