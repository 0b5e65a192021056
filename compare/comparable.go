// Package compare defines the element capabilities that sequence comparisons
// are built on, and synthesizes three-way orderings from them.
//
// An element type can offer:
//   - equality, through the built-in comparable constraint or Comparable[T]
//   - a less-than operator, through LessThanComparable[T]
//   - a native three-way comparison, through cmp.Ordered or ThreeWayComparable[T]
//
// Generic functions across this module are constrained on these capabilities,
// so asking for an operation the element type cannot support fails to compile.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualFunc adapts the Equals method of T to a plain equality function,
// suitable for the *Func variants of the sequence comparisons.
func EqualFunc[T Comparable[T]](a, b T) bool {
	return a.Equals(b)
}
