package sortable

// Byte is a sortable wrapper type for the built-in byte type.
//
// Unlike []byte, a sequence of Byte never takes the raw memory fast path:
// it is always compared element by element through LessThan.
//
//	span.CompareLess(span.Of[sortable.Byte]('a', 'b'), span.Slice[sortable.Byte]{'a'})
//	// ordering.Greater
type Byte byte

// Compile-time check that Byte implements Sortable[Byte].
var _ Sortable[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}
