package lexicographic

import (
	"bytes"
	"reflect"
	"unsafe"

	"github.com/amp-labs/span-compare/capability"
	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/ordering"
	"golang.org/x/sys/cpu"
)

// bytewiseOrdered is true when raw memory order equals numeric order for
// unsigned integers of every width, which is the case on big-endian hosts.
// On little-endian hosts it only holds for single bytes.
var bytewiseOrdered = cpu.IsBigEndian //nolint:gochecknoglobals

// CompareMemory orders two sequences of unsigned integers or bytes by
// looking at their raw memory.
//
// The common prefix is compared first. Only once it is known to be
// identical do the lengths decide the result, so a shorter sequence is Less
// exactly when it is a prefix of the longer one.
func CompareMemory[T capability.MemoryComparable](a, b []T) ordering.Ordering {
	n := min(len(a), len(b))

	if n > 0 && !aliased(a[:n], b[:n]) {
		var zero T

		size := int(unsafe.Sizeof(zero))
		left, right := asBytes(a[:n], size), asBytes(b[:n], size)

		if size == 1 || bytewiseOrdered {
			if c := bytes.Compare(left, right); c != 0 {
				return ordering.FromInt(c)
			}
		} else if !bytes.Equal(left, right) {
			// The prefixes differ, but little-endian byte order is not numeric
			// order for wide integers: let the first differing element decide.
			return CompareFunc(a[:n], b[:n], compare.Native[T])
		}
	}

	return byLength(len(a), len(b))
}

// compareMemoryKind routes a cmp.Ordered sequence to CompareMemory when its
// element kind is unsigned. Named types share the memory layout of their
// underlying type, so the slices can be reinterpreted in place.
func compareMemoryKind[T any](a, b []T) (ordering.Ordering, bool) {
	switch reflect.TypeFor[T]().Kind() { //nolint:exhaustive
	case reflect.Uint8:
		return CompareMemory(reinterpret[T, uint8](a), reinterpret[T, uint8](b)), true
	case reflect.Uint16:
		return CompareMemory(reinterpret[T, uint16](a), reinterpret[T, uint16](b)), true
	case reflect.Uint32:
		return CompareMemory(reinterpret[T, uint32](a), reinterpret[T, uint32](b)), true
	case reflect.Uint64:
		return CompareMemory(reinterpret[T, uint64](a), reinterpret[T, uint64](b)), true
	case reflect.Uint:
		return CompareMemory(reinterpret[T, uint](a), reinterpret[T, uint](b)), true
	case reflect.Uintptr:
		return CompareMemory(reinterpret[T, uintptr](a), reinterpret[T, uintptr](b)), true
	default:
		return ordering.Equivalent, false
	}
}

func reinterpret[From, To any](s []From) []To {
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func asBytes[T any](s []T, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*size)
}
