package sortable

import "facette.io/natsort"

// Natural is a string that sorts in natural order: runs of digits compare by
// numeric value, so "img12" sorts after "img2".
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan reports whether n precedes other in natural order.
func (n Natural) LessThan(other Natural) bool {
	return natsort.Compare(string(n), string(other))
}
