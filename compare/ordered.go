package compare

import (
	"cmp"

	"github.com/amp-labs/span-compare/ordering"
)

// LessThanComparable is implemented by types that only know how to answer
// "is this value less than that one". An ordering can still be synthesized
// for them, see Synthesize.
type LessThanComparable[T any] interface {
	LessThan(other T) bool
}

// ThreeWayComparable is implemented by types with a native three-way comparison.
type ThreeWayComparable[T any] interface {
	Compare(other T) ordering.Ordering
}

// Native compares two built-in ordered values. Floating point NaNs compare
// equivalent to each other and less than any other value, like cmp.Compare.
func Native[T cmp.Ordered](t, u T) ordering.Ordering {
	return ordering.FromInt(cmp.Compare(t, u))
}

// ThreeWay delegates to the native three-way comparison of T.
func ThreeWay[T ThreeWayComparable[T]](t, u T) ordering.Ordering {
	return t.Compare(u)
}

// Synthesize produces a three-way ordering for two values whose type offers
// a less-than operator.
//
// If T also implements ThreeWayComparable[T] the native comparison is used.
// Otherwise the result is derived from at most two LessThan calls: t < u is
// Less, u < t is Greater, and anything else is Equivalent. Values that are
// mutually not-less-than each other are therefore equivalent even if Equals
// would say they differ (a weak ordering).
func Synthesize[T LessThanComparable[T]](t, u T) ordering.Ordering {
	// you can't assert directly on a type parameter
	if native, ok := any(t).(ThreeWayComparable[T]); ok {
		return native.Compare(u)
	}

	if t.LessThan(u) {
		return ordering.Less
	}

	if u.LessThan(t) {
		return ordering.Greater
	}

	return ordering.Equivalent
}

// SynthesizeFunc builds a three-way comparison out of a bare less function,
// for element types that cannot carry methods.
func SynthesizeFunc[T any](less func(a, b T) bool) func(t, u T) ordering.Ordering {
	return func(t, u T) ordering.Ordering {
		if less(t, u) {
			return ordering.Less
		}

		if less(u, t) {
			return ordering.Greater
		}

		return ordering.Equivalent
	}
}
