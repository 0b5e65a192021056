package sortable

// Uint16 is a uint16 that only offers Equals and LessThan. It does not
// satisfy cmp.Ordered, so views of Uint16 take the synthesized ordering
// path and never the raw-memory one.
type Uint16 uint16

var _ Sortable[Uint16] = (*Uint16)(nil)

func (u Uint16) Equals(other Uint16) bool {
	return uint16(u) == uint16(other)
}

func (u Uint16) LessThan(other Uint16) bool {
	return uint16(u) < uint16(other)
}
