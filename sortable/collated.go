package sortable

import (
	"sync"

	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/ordering"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator is shared by all Collated values. A collate.Collator keeps
// internal buffers, so every use holds collatorMutex.
var (
	collator      = collate.New(language.Und) //nolint:gochecknoglobals
	collatorMutex sync.Mutex                  //nolint:gochecknoglobals
)

// Collated is a string ordered by the root Unicode collation: accents and
// case are secondary and tertiary differences, so "résumé" sorts next to
// "resume" rather than after "z".
type Collated string

var (
	_ Sortable[Collated]                   = (*Collated)(nil)
	_ compare.ThreeWayComparable[Collated] = (*Collated)(nil)
)

func (c Collated) Equals(other Collated) bool {
	return string(c) == string(other)
}

func (c Collated) LessThan(other Collated) bool {
	return c.Compare(other) == ordering.Less
}

// Compare is the native three-way comparison of two collated strings.
func (c Collated) Compare(other Collated) ordering.Ordering {
	collatorMutex.Lock()
	defer collatorMutex.Unlock()

	return ordering.FromInt(collator.CompareString(string(c), string(other)))
}
