// Package lexicographic compares two sequences element by element, left to
// right, with the shorter sequence ordering first when it is a prefix of the
// longer one.
//
// # Paths
//
// The general path walks both sequences in lockstep and stops at the first
// element pair that is not equivalent. It works for any element type given a
// three-way comparison function, and for non-contiguous right-hand sides
// expressed as an iter.Seq.
//
// The fast path applies to contiguous sequences of unsigned integers or bytes
// (see [capability.MemoryComparable]). It compares the common prefix as raw
// memory and only falls back to lengths once that prefix is known to be
// identical. It is selected automatically by [Compare] and can be compiled
// out with the lexicographic_nofastpath build tag; results are the same
// either way.
//
// # Memory
//
// Nothing here allocates or retains its inputs. The caller must keep both
// sequences alive and unmodified for the duration of a call.
package lexicographic
