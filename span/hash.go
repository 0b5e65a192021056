package span

import (
	"unsafe"

	"github.com/amp-labs/span-compare/capability"
	"github.com/zeebo/xxh3"
)

// Hash returns a hash of the raw memory of v. Views that are Equal hash to
// the same value, so Hash can key a map of Views. The value depends on the
// host byte order and must not be persisted.
func Hash[T capability.MemoryComparable](v View[T]) uint64 {
	return xxh3.Hash(rawBytes(v.elems))
}

// HashSeed is Hash with a caller-chosen seed.
func HashSeed[T capability.MemoryComparable](v View[T], seed uint64) uint64 {
	return xxh3.HashSeed(rawBytes(v.elems), seed)
}

func rawBytes[T capability.MemoryComparable](elems []T) []byte {
	var zero T

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(elems))), len(elems)*int(unsafe.Sizeof(zero)))
}
