package compare

import (
	"math"
	"strings"
	"testing"

	"github.com/amp-labs/span-compare/ordering"
	"github.com/stretchr/testify/assert"
)

// lessOnly offers LessThan and nothing else. Every call is counted.
type lessOnly struct {
	value int
	calls *int
}

func (l lessOnly) LessThan(other lessOnly) bool {
	*l.calls++

	return l.value < other.value
}

// caseless has a native three-way comparison and a LessThan that must never be
// consulted when the native one is available.
type caseless string

func (c caseless) LessThan(caseless) bool {
	panic("LessThan called on a type with a native comparison")
}

func (c caseless) Compare(other caseless) ordering.Ordering {
	return ordering.FromInt(strings.Compare(strings.ToLower(string(c)), strings.ToLower(string(other))))
}

func TestNative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ordering.Less, Native(1, 2))
	assert.Equal(t, ordering.Greater, Native(uint16(9), uint16(3)))
	assert.Equal(t, ordering.Equivalent, Native("abc", "abc"))
	assert.Equal(t, ordering.Less, Native(-1.5, 0.0))
	assert.Equal(t, ordering.Less, Native(math.NaN(), math.Inf(-1)))
	assert.Equal(t, ordering.Equivalent, Native(math.NaN(), math.NaN()))
}

func TestThreeWay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ordering.Equivalent, ThreeWay(caseless("Hello"), caseless("hELLO")))
	assert.Equal(t, ordering.Less, ThreeWay(caseless("apple"), caseless("Banana")))
}

func TestSynthesize_FromLessThan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		left          int
		right         int
		expected      ordering.Ordering
		expectedCalls int
	}{
		{name: "less needs one call", left: 1, right: 2, expected: ordering.Less, expectedCalls: 1},
		{name: "greater needs two calls", left: 2, right: 1, expected: ordering.Greater, expectedCalls: 2},
		{name: "equivalent needs two calls", left: 7, right: 7, expected: ordering.Equivalent, expectedCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			result := Synthesize(lessOnly{value: tt.left, calls: &calls}, lessOnly{value: tt.right, calls: &calls})

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expectedCalls, calls)
		})
	}
}

func TestSynthesize_PrefersNative(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		assert.Equal(t, ordering.Equivalent, Synthesize(caseless("GO"), caseless("go")))
		assert.Equal(t, ordering.Greater, Synthesize(caseless("zed"), caseless("Alpha")))
	})
}

func TestSynthesize_Antisymmetric(t *testing.T) {
	t.Parallel()

	calls := 0

	for left := -3; left <= 3; left++ {
		for right := -3; right <= 3; right++ {
			forward := Synthesize(lessOnly{value: left, calls: &calls}, lessOnly{value: right, calls: &calls})
			backward := Synthesize(lessOnly{value: right, calls: &calls}, lessOnly{value: left, calls: &calls})

			assert.Equal(t, forward, backward.Reverse(), "left=%d right=%d", left, right)
			assert.Equal(t, Native(left, right), forward, "left=%d right=%d", left, right)
		}
	}
}

func TestSynthesizeFunc(t *testing.T) {
	t.Parallel()

	byLength := SynthesizeFunc(func(a, b string) bool { return len(a) < len(b) })

	assert.Equal(t, ordering.Less, byLength("a", "bb"))
	assert.Equal(t, ordering.Greater, byLength("ccc", "bb"))
	// same length, different content: weakly equivalent
	assert.Equal(t, ordering.Equivalent, byLength("ab", "cd"))
}
