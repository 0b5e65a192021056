package sortable

import (
	"github.com/amp-labs/span-compare/compare"
)

// Sortable is satisfied by types with an Equals method and a LessThan method.
type Sortable[T any] interface {
	compare.Comparable[T]
	compare.LessThanComparable[T]
}
