// Package capability classifies element types before any comparison code runs.
//
// The compile-time half is expressed as generic constraints: a comparison
// that needs a capability the element type lacks simply does not typecheck.
// The runtime half mirrors those predicates with reflection. It never gates
// correctness; it routes the generic cmp.Ordered entry points onto the raw
// memory fast path and describes element types for diagnostics.
package capability

import (
	"reflect"

	"github.com/amp-labs/span-compare/compare"
	"golang.org/x/exp/constraints"
)

// MemoryComparable permits the element types whose lexicographic order can be
// decided from their raw memory: unsigned fixed-width integers and bytes.
type MemoryComparable interface {
	constraints.Unsigned
}

// Descriptor summarizes what an element type supports.
type Descriptor struct {
	Type             reflect.Type
	Equality         bool
	Less             bool
	NativeOrdering   bool
	MemoryComparable bool
}

// Describe inspects T.
func Describe[T any]() Descriptor {
	typ := reflect.TypeFor[T]()

	return Descriptor{
		Type:             typ,
		Equality:         CanEqualityCompare[T, T](),
		Less:             hasLess[T](typ),
		NativeOrdering:   hasNativeOrdering[T](typ),
		MemoryComparable: IsMemoryComparable[T](),
	}
}

// Orderable reports whether an ordering can be produced for the type.
func (d Descriptor) Orderable() bool {
	return d.Less || d.NativeOrdering
}

// CanEqualityCompare reports whether values of T and U can be tested for
// equality in both directions: the types match and are either comparable
// with == or implement compare.Comparable of each other.
func CanEqualityCompare[T, U any]() bool {
	if !ElementsMatch[T, U]() {
		return false
	}

	typ := reflect.TypeFor[T]()

	return isStrictlyComparable(typ) || typ.Implements(reflect.TypeFor[compare.Comparable[U]]())
}

// CanSynthesizeOrdering reports whether t < u and u < t are both available
// for values of T and U, natively or through compare.LessThanComparable.
func CanSynthesizeOrdering[T, U any]() bool {
	if !ElementsMatch[T, U]() {
		return false
	}

	typ := reflect.TypeFor[T]()

	return hasLess[U](typ) || hasNativeOrdering[U](typ)
}

// IsMemoryComparable reports whether T is an unsigned integer or byte type,
// including named types defined over one.
func IsMemoryComparable[T any]() bool {
	return isUnsignedKind(reflect.TypeFor[T]().Kind())
}

// ElementsMatch reports whether two element types are identical. Sequences
// of different element types are never compared, even when individual
// elements could be converted.
func ElementsMatch[T, U any]() bool {
	return reflect.TypeFor[T]() == reflect.TypeFor[U]()
}

func hasLess[U any](typ reflect.Type) bool {
	return isOrderedKind(typ.Kind()) || typ.Implements(reflect.TypeFor[compare.LessThanComparable[U]]())
}

func hasNativeOrdering[U any](typ reflect.Type) bool {
	return isOrderedKind(typ.Kind()) || typ.Implements(reflect.TypeFor[compare.ThreeWayComparable[U]]())
}

// isStrictlyComparable excludes interfaces, whose == may panic at runtime,
// including interfaces nested in struct fields or array elements.
func isStrictlyComparable(typ reflect.Type) bool {
	switch typ.Kind() { //nolint:exhaustive
	case reflect.Interface:
		return false
	case reflect.Array:
		return isStrictlyComparable(typ.Elem())
	case reflect.Struct:
		for i := range typ.NumField() {
			if !isStrictlyComparable(typ.Field(i).Type) {
				return false
			}
		}

		return true
	default:
		return typ.Comparable()
	}
}

func isUnsignedKind(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// isOrderedKind matches the kinds admitted by cmp.Ordered.
func isOrderedKind(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return isUnsignedKind(kind)
	}
}
