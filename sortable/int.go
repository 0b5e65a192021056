package sortable

// Int is a sortable wrapper type for the built-in int type.
// Sequences of Int compare through LessThan rather than the native
// ordering of int, which makes Int a convenient stand-in for user types.
//
// Example:
//
//	a := span.Of[sortable.Int](1, 2)
//	b := span.Slice[sortable.Int]{1, 3}
//	span.CompareLess(a, b) // ordering.Less
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}
