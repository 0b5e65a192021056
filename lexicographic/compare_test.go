package lexicographic

import (
	"cmp"
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/ordering"
	"github.com/stretchr/testify/assert"
)

type integer interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~uint64 | ~int64
}

func seq[T integer](values ...int) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}

	return out
}

func testScenarios[T integer](t *testing.T) {
	t.Helper()

	tests := []struct {
		name  string
		a     []T
		b     []T
		equal bool
		order ordering.Ordering
	}{
		{name: "self", a: seq[T](1, 2, 3), b: seq[T](1, 2, 3), equal: true, order: ordering.Equivalent},
		{name: "same length diff", a: seq[T](1, 2, 3), b: seq[T](1, 2, 4), order: ordering.Less},
		{name: "prefix", a: seq[T](1, 2, 3), b: seq[T](1, 2, 3, 4), order: ordering.Less},
		{name: "both empty", a: seq[T](), b: seq[T](), equal: true, order: ordering.Equivalent},
		{name: "nil and empty", a: nil, b: seq[T](), equal: true, order: ordering.Equivalent},
		{name: "non-empty vs empty", a: seq[T](5), b: seq[T](), order: ordering.Greater},
		{name: "first element decides", a: seq[T](2), b: seq[T](1, 9, 9), order: ordering.Greater},
		{name: "last element differs", a: seq[T](7, 7, 7, 7, 1), b: seq[T](7, 7, 7, 7, 2), order: ordering.Less},
		{name: "high byte decides", a: seq[T](1, 100), b: seq[T](1, 127), order: ordering.Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a))
			assert.Equal(t, tt.order, Compare(tt.a, tt.b))
			assert.Equal(t, tt.order.Reverse(), Compare(tt.b, tt.a))
			assert.Equal(t, tt.order, CompareGeneral(tt.a, tt.b))
			assert.Equal(t, tt.order, CompareSeqFunc(tt.a, slices.Values(tt.b), compare.Native[T]))
			assert.Equal(t, tt.order, CompareSeqsFunc(slices.Values(tt.a), slices.Values(tt.b), compare.Native[T]))
			assert.Equal(t, tt.equal, EqualSeqFunc(tt.a, slices.Values(tt.b), func(x, y T) bool { return x == y }))
		})
	}
}

func TestCompare_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("uint8", func(t *testing.T) { t.Parallel(); testScenarios[uint8](t) })
	t.Run("int8", func(t *testing.T) { t.Parallel(); testScenarios[int8](t) })
	t.Run("uint16", func(t *testing.T) { t.Parallel(); testScenarios[uint16](t) })
	t.Run("int16", func(t *testing.T) { t.Parallel(); testScenarios[int16](t) })
	t.Run("uint32", func(t *testing.T) { t.Parallel(); testScenarios[uint32](t) })
	t.Run("int32", func(t *testing.T) { t.Parallel(); testScenarios[int32](t) })
	t.Run("uint64", func(t *testing.T) { t.Parallel(); testScenarios[uint64](t) })
	t.Run("int64", func(t *testing.T) { t.Parallel(); testScenarios[int64](t) })
}

func TestCompare_SignedIsNotBytewise(t *testing.T) {
	t.Parallel()

	// -1 is 0xFF in memory, which would sort after 1 if compared as bytes.
	assert.Equal(t, ordering.Less, Compare([]int8{-1}, []int8{1}))
	assert.Equal(t, ordering.Less, Compare([]int32{-1, 0}, []int32{1}))
}

func TestCompare_WideUnsignedUsesNumericOrder(t *testing.T) {
	t.Parallel()

	// 256 is 00 01 in little-endian memory and 1 is 01 00: byte order and
	// numeric order disagree, the result must follow numeric order.
	assert.Equal(t, ordering.Greater, Compare([]uint16{256}, []uint16{1}))
	assert.Equal(t, ordering.Greater, CompareMemory([]uint16{256}, []uint16{1}))
	assert.Equal(t, ordering.Less, CompareMemory([]uint32{1, 0x01000000}, []uint32{1, 0x02000000}))
	assert.Equal(t, ordering.Less, CompareMemory([]uint64{math.MaxUint32}, []uint64{math.MaxUint32 + 1}))
}

func TestCompare_Aliased(t *testing.T) {
	t.Parallel()

	backing := []uint16{4, 8, 15, 16, 23, 42}

	assert.True(t, Equal(backing, backing))
	assert.Equal(t, ordering.Equivalent, Compare(backing, backing))
	assert.Equal(t, ordering.Equivalent, CompareMemory(backing[1:4], backing[1:4]))
	// same start, different lengths
	assert.Equal(t, ordering.Less, CompareMemory(backing[:2], backing[:5]))
	assert.Equal(t, ordering.Greater, Compare(backing[:5], backing[:2]))
	assert.False(t, Equal(backing[:2], backing[:5]))
	// overlapping but shifted
	assert.Equal(t, ordering.Less, Compare(backing[0:3], backing[1:4]))
}

func TestEqual_NaN(t *testing.T) {
	t.Parallel()

	nan := []float64{1, math.NaN()}

	assert.False(t, Equal(nan, nan), "== decides even when both sides share memory")
	assert.False(t, Equal(nan, []float64{1, math.NaN()}))
	assert.False(t, EqualSeqFunc(nan, slices.Values(nan), func(x, y float64) bool { return x == y }))
	assert.Equal(t, ordering.Equivalent, Compare(nan, nan))
	assert.Equal(t, ordering.Equivalent, Compare(nan, []float64{1, math.NaN()}))
}

func TestEqualFunc_AlwaysCallsEq(t *testing.T) {
	t.Parallel()

	backing := []int{1, 2, 3}
	calls := 0
	never := func(int, int) bool {
		calls++

		return false
	}

	assert.False(t, EqualFunc(backing, backing, never))
	assert.Equal(t, 1, calls)
	assert.False(t, EqualSeqFunc(backing, slices.Values(backing), never))
	assert.Equal(t, 2, calls)

	assert.True(t, EqualFunc(backing[:0], backing[:0], never), "empty sequences are equal without calling eq")
	assert.Equal(t, 2, calls)
}

func TestCompare_Strings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ordering.Less, Compare([]string{"a", "b"}, []string{"a", "c"}))
	assert.Equal(t, ordering.Greater, Compare([]string{"b"}, []string{"a", "z"}))
	assert.Equal(t, ordering.Equivalent, Compare([]string{}, nil))
}

func TestCompareFunc_ShortCircuits(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(x, y int) ordering.Ordering {
		calls++

		return compare.Native(x, y)
	}

	assert.Equal(t, ordering.Greater, CompareFunc([]int{1, 2, 3, 4}, []int{1, 0, 9, 9}, counting))
	assert.Equal(t, 2, calls)
}

func TestCompareSeqFunc_StopsPulling(t *testing.T) {
	t.Parallel()

	produced := 0
	endless := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++

			if !yield(i) {
				return
			}
		}
	}

	assert.Equal(t, ordering.Less, CompareSeqFunc([]int{0, 1, 2}, endless, compare.Native[int]))
	assert.Equal(t, 4, produced)
	assert.False(t, EqualSeqFunc([]int{0, 1, 2}, iter.Seq[int](endless), func(x, y int) bool { return x == y }))
}

func TestCompareSeqsFunc_Empty(t *testing.T) {
	t.Parallel()

	empty := slices.Values([]int(nil))

	assert.Equal(t, ordering.Equivalent, CompareSeqsFunc(empty, empty, compare.Native[int]))
	assert.Equal(t, ordering.Less, CompareSeqsFunc(empty, slices.Values([]int{0}), compare.Native[int]))
	assert.Equal(t, ordering.Greater, CompareSeqsFunc(slices.Values([]int{0}), empty, compare.Native[int]))
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	caseless := func(a, b string) bool { return len(a) == len(b) }

	assert.True(t, EqualFunc([]string{"ab", "c"}, []string{"xy", "z"}, caseless))
	assert.False(t, EqualFunc([]string{"ab"}, []string{"xy", "z"}, caseless))
	assert.False(t, EqualFunc([]string{"ab"}, []string{"xyz"}, caseless))
}

func TestFastPathEnabled(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fastPathEnabled, FastPathEnabled())
}

type port uint16

func TestCompare_NamedUnsigned(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ordering.Less, Compare([]port{80, 443}, []port{80, 8080}))
	assert.Equal(t, ordering.Greater, Compare([]port{1024}, []port{80, 8080}))
}

// naive is the textbook lexicographic comparison driven by < only.
func naive[T cmp.Ordered](a, b []T) ordering.Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return ordering.Less
		}

		if b[i] < a[i] {
			return ordering.Greater
		}
	}

	switch {
	case len(a) < len(b):
		return ordering.Less
	case len(a) > len(b):
		return ordering.Greater
	default:
		return ordering.Equivalent
	}
}
