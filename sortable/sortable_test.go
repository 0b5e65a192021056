package sortable

import (
	"slices"
	"testing"

	"github.com/amp-labs/span-compare/compare"
	"github.com/amp-labs/span-compare/ordering"
	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(3).Equals(3))
	assert.False(t, Int(3).Equals(4))
	assert.True(t, Int(-1).LessThan(0))
	assert.False(t, Int(0).LessThan(0))
	assert.Equal(t, ordering.Greater, compare.Synthesize(Int(5), Int(2)))
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.True(t, Byte('a').LessThan('b'))
	assert.False(t, Byte('b').LessThan('a'))
	assert.True(t, Byte('z').Equals('z'))
	assert.Equal(t, ordering.Equivalent, compare.Synthesize(Byte('q'), Byte('q')))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan("banana"))
	assert.True(t, String("Zebra").LessThan("apple"), "byte-wise: upper case first")
	assert.True(t, String("x").Equals("x"))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Natural
		b        Natural
		expected ordering.Ordering
	}{
		{name: "numeric runs", a: "file2", b: "file10", expected: ordering.Less},
		{name: "reverse", a: "file10", b: "file2", expected: ordering.Greater},
		{name: "same", a: "img7", b: "img7", expected: ordering.Equivalent},
		{name: "plain text", a: "alpha", b: "beta", expected: ordering.Less},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, compare.Synthesize(tt.a, tt.b))
			assert.Equal(t, tt.expected.Reverse(), compare.Synthesize(tt.b, tt.a))
		})
	}

	names := []Natural{"v10", "v9", "v1", "v100"}
	slices.SortFunc(names, func(a, b Natural) int { return compare.Synthesize(a, b).Int() })
	assert.Equal(t, []Natural{"v1", "v9", "v10", "v100"}, names)
}

func TestCollated(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ordering.Less, Collated("resume").Compare("résumé"))
	assert.Equal(t, ordering.Less, Collated("résumé").Compare("zebra"))
	assert.Equal(t, ordering.Equivalent, Collated("same").Compare("same"))
	assert.True(t, Collated("apple").LessThan("Banana"), "collation ignores case at the primary level")
	assert.False(t, Collated("a").Equals("A"))

	// Synthesize delegates to Compare
	assert.Equal(t, ordering.Greater, compare.Synthesize(Collated("zebra"), Collated("Apple")))
}

func TestUint16(t *testing.T) {
	t.Parallel()

	assert.True(t, Uint16(0x00ff).LessThan(0x0100))
	assert.False(t, Uint16(0x0100).LessThan(0x00ff))
	assert.True(t, Uint16(7).Equals(7))
	assert.Equal(t, ordering.Less, compare.Synthesize(Uint16(1), Uint16(2)))
}
