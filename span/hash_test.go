package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	t.Parallel()

	a := Of[uint16](1, 2, 3)
	b := New([]uint16{1, 2, 3})
	c := Of[uint16](1, 2, 4)

	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(c))
	assert.Equal(t, Hash(Of[uint64]()), Hash(New[uint64](nil)))
	assert.NotEqual(t, HashSeed(a, 1), HashSeed(a, 2))
	assert.Equal(t, HashSeed(a, 7), HashSeed(b, 7))
}

func TestHash_MapKey(t *testing.T) {
	t.Parallel()

	seen := map[uint64][]View[byte]{}

	for _, s := range []string{"alpha", "beta", "alpha"} {
		v := New([]byte(s))
		seen[Hash(v)] = append(seen[Hash(v)], v)
	}

	assert.Len(t, seen, 2)
	assert.Len(t, seen[Hash(New([]byte("alpha")))], 2)
}
