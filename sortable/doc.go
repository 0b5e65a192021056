// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface: equality plus a less-than operator, and nothing else.
//
// # Overview
//
// Sequences of these types cannot use the built-in ordered comparisons, so a
// three-way ordering is synthesized from LessThan (see
// [github.com/amp-labs/span-compare/compare.Synthesize]):
//
//	ints := span.Of[sortable.Int](1, 2, 3)
//	other := span.Slice[sortable.Int]{1, 2, 4}
//
//	span.CompareLess(ints, other)     // ordering.Less
//	span.EqualComparable(ints, other) // false
//
// [Int], [Byte] and [String] order like their underlying types. [Natural]
// orders strings the way people expect file names to sort ("file2" before
// "file10"). [Collated] orders strings with a Unicode collator and carries a
// native three-way comparison, which the synthesizer uses directly instead of
// calling LessThan twice.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are safe for
// concurrent reads. Comparing a sequence never mutates it.
package sortable
