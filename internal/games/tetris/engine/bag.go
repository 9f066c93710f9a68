package engine

import "math/rand"

// Bag supplies piece kinds using the 7-bag shuffle: each refill appends one
// uniformly shuffled permutation of all seven kinds, so every bag-aligned run of
// seven draws contains each kind exactly once.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a bag with two full permutations queued, enough for preview
// panels that look past the immediate next piece.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{
		rng:   rng,
		queue: make([]Kind, 0, 3*KindCount),
	}
	b.refill()
	b.refill()
	return b
}

// refill appends one shuffled permutation of all kinds to the tail.
func (b *Bag) refill() {
	perm := allKinds
	b.rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	b.queue = append(b.queue, perm[:]...)
}

// Next removes and returns the head of the queue, topping the queue up first
// whenever it is down to a single bag or less.
func (b *Bag) Next() Kind {
	if len(b.queue) <= KindCount {
		b.refill()
	}
	k := b.queue[0]
	// Shift in place so the backing array doesn't grow without bound.
	copy(b.queue, b.queue[1:])
	b.queue = b.queue[:len(b.queue)-1]
	return k
}

// Peek returns the head of the queue without consuming it.
func (b *Bag) Peek() Kind {
	return b.queue[0]
}

// Upcoming returns a copy of the first n queued kinds.
func (b *Bag) Upcoming(n int) []Kind {
	if n > len(b.queue) {
		n = len(b.queue)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Kind, n)
	copy(out, b.queue[:n])
	return out
}

// Len returns the number of queued kinds.
func (b *Bag) Len() int {
	return len(b.queue)
}
