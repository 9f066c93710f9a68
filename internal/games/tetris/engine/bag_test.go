package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagFirstSevenAreDistinct(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewBag(rand.New(rand.NewSource(seed)))
		seen := map[Kind]bool{}
		for range KindCount {
			k := b.Next()
			require.True(t, k.Valid())
			require.False(t, seen[k], "seed %d: %s drawn twice", seed, k)
			seen[k] = true
		}
	}
}

func TestBagEveryAlignedRunIsPermutation(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(42)))

	for run := range 20 {
		seen := map[Kind]int{}
		for range KindCount {
			seen[b.Next()]++
		}
		assert.Len(t, seen, KindCount, "run %d", run)
		for k, n := range seen {
			assert.Equal(t, 1, n, "run %d: kind %s", run, k)
		}
	}
}

func TestBagPeekMatchesNext(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(3)))
	for range 40 {
		want := b.Peek()
		assert.Equal(t, want, b.Next())
	}
}

func TestBagKeepsLookahead(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(9)))
	assert.Equal(t, 2*KindCount, b.Len())
	for range 100 {
		b.Next()
		assert.GreaterOrEqual(t, b.Len(), KindCount)
	}
}

func TestBagIsDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(11)))
	b := NewBag(rand.New(rand.NewSource(11)))
	for range 50 {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestBagUpcoming(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(5)))

	up := b.Upcoming(3)
	require.Len(t, up, 3)
	assert.Equal(t, b.Peek(), up[0])

	up[0] = KindNone
	assert.NotEqual(t, KindNone, b.Peek(), "upcoming must be a copy")

	assert.Nil(t, b.Upcoming(0))
	assert.Len(t, b.Upcoming(100), b.Len())

	next := b.Upcoming(2)
	assert.Equal(t, next[0], b.Next())
	assert.Equal(t, next[1], b.Next())
}
