package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(seed int64) *Controller {
	return NewController(NewBag(rand.New(rand.NewSource(seed))))
}

// fillExcept returns a full grid with holes only where shape would sit at pos.
func fillExcept(w, h int, shape Shape, pos Point) Grid {
	g := NewGrid(w, h)
	for y := range g {
		for x := range g[y] {
			g[y][x] = 9
		}
	}
	for j := range ShapeSize {
		for i := range ShapeSize {
			if shape[j][i] != Empty {
				g[pos.Y+j][pos.X+i] = Empty
			}
		}
	}
	return g
}

func TestSpawnPlacesNextPiece(t *testing.T) {
	c := newTestController(1)
	g := NewGrid(10, 25)
	want := c.Bag().Peek()

	overlap := c.Spawn(g, 4, 1)

	assert.False(t, overlap)
	assert.Equal(t, Piece{Kind: want, Rotation: 0, Pos: Point{X: 4, Y: 1}}, c.Active())
}

func TestSpawnReportsOverlap(t *testing.T) {
	c := newTestController(1)
	g := NewGrid(10, 25)
	for y := range 6 {
		for x := range 10 {
			g[y][x] = 2
		}
	}

	assert.True(t, c.Spawn(g, 4, 1))
}

func TestMoveAgainstWalls(t *testing.T) {
	c := newTestController(1)
	g := NewGrid(10, 25)
	c.active = Piece{Kind: KindO, Pos: Point{X: -1, Y: 5}} // cells in cols 0-1

	assert.False(t, c.MoveLeft(g))
	assert.Equal(t, Point{X: -1, Y: 5}, c.Active().Pos)

	assert.True(t, c.MoveRight(g))
	assert.Equal(t, Point{X: 0, Y: 5}, c.Active().Pos)

	c.active.Pos = Point{X: 7, Y: 5} // cells in cols 8-9
	assert.False(t, c.MoveRight(g))

	c.active.Pos = Point{X: 3, Y: 22} // cells in rows 23-24
	assert.False(t, c.MoveDown(g))
	assert.Equal(t, 22, c.Active().Pos.Y)
}

func TestRotateCyclesBack(t *testing.T) {
	g := NewGrid(10, 25)
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			c := newTestController(1)
			c.active = Piece{Kind: k, Pos: Point{X: 3, Y: 5}}
			n := len(k.Rotations())

			for i := range n {
				require.True(t, c.Rotate(g), "rotation %d", i)
			}
			assert.Equal(t, Piece{Kind: k, Rotation: 0, Pos: Point{X: 3, Y: 5}}, c.Active())
		})
	}
}

func TestRotateHasNoWallKick(t *testing.T) {
	c := newTestController(1)
	g := NewGrid(10, 25)
	// Horizontal I lying on row 23; the vertical variant would reach row 25.
	c.active = Piece{Kind: KindI, Pos: Point{X: 0, Y: 22}}

	assert.False(t, c.Rotate(g))
	assert.Equal(t, Piece{Kind: KindI, Rotation: 0, Pos: Point{X: 0, Y: 22}}, c.Active())
}

func TestHoldEmptySlotTakesNextPiece(t *testing.T) {
	c := newTestController(1)
	g := NewGrid(10, 25)
	c.Spawn(g, 4, 1)
	first := c.Active().Kind
	next := c.Bag().Peek()

	require.True(t, c.Hold(g))
	assert.Equal(t, first, c.Held())
	assert.Equal(t, Piece{Kind: next, Rotation: 0, Pos: Point{X: 4, Y: 1}}, c.Active())

	// Holding again swaps the two back.
	c.active.Pos = Point{X: 2, Y: 6}
	require.True(t, c.Hold(g))
	assert.Equal(t, next, c.Held())
	assert.Equal(t, Piece{Kind: first, Rotation: 0, Pos: Point{X: 2, Y: 6}}, c.Active())
}

func TestHoldResetsRotation(t *testing.T) {
	c := newTestController(2)
	g := NewGrid(10, 25)
	c.Spawn(g, 4, 5)
	c.held = KindT
	c.active = Piece{Kind: KindJ, Rotation: 2, Pos: Point{X: 4, Y: 5}}

	require.True(t, c.Hold(g))
	assert.Equal(t, KindJ, c.Held())
	assert.Equal(t, 0, c.Active().Rotation)
}

func TestHoldIsNotLimitedPerPiece(t *testing.T) {
	c := newTestController(4)
	g := NewGrid(10, 25)
	c.Spawn(g, 4, 1)

	for i := range 5 {
		assert.True(t, c.Hold(g), "hold %d", i)
	}
}

func TestHoldRejectedWhenNextPieceCollides(t *testing.T) {
	c := newTestController(1)
	c.Spawn(NewGrid(10, 25), 4, 1)
	before := c.Active()
	require.NotEqual(t, before.Kind, c.Bag().Peek())

	g := fillExcept(10, 25, before.Shape(), before.Pos)
	queued := c.Bag().Len()

	assert.False(t, c.Hold(g))
	assert.Equal(t, KindNone, c.Held())
	assert.Equal(t, before, c.Active())
	assert.Equal(t, queued, c.Bag().Len(), "rejected hold must not draw")
}

func TestHoldRejectedWhenHeldPieceCollides(t *testing.T) {
	c := newTestController(1)
	c.Spawn(NewGrid(10, 25), 4, 1)
	c.held = KindI
	c.active = Piece{Kind: KindO, Pos: Point{X: 4, Y: 1}}
	before := c.Active()

	g := fillExcept(10, 25, before.Shape(), before.Pos)

	assert.False(t, c.Hold(g))
	assert.Equal(t, KindI, c.Held())
	assert.Equal(t, before, c.Active())
}

func TestGhostProjection(t *testing.T) {
	c := newTestController(6)
	g := NewGrid(10, 25)
	g[20][5] = 3
	c.Spawn(g, 4, 1)

	p := c.Active()
	ghost := c.Ghost()
	assert.Equal(t, p.Pos.X, ghost.X)
	assert.GreaterOrEqual(t, ghost.Y, p.Pos.Y)
	assert.False(t, Overlaps(g, p.Shape(), ghost.X, ghost.Y))
	assert.True(t, Overlaps(g, p.Shape(), ghost.X, ghost.Y+1))
}

func TestProjectEmptyShape(t *testing.T) {
	assert.Equal(t, Point{X: 1, Y: 2}, Project(NewGrid(4, 4), Shape{}, Point{X: 1, Y: 2}))
}

func TestControllerReset(t *testing.T) {
	c := newTestController(1)
	g := NewGrid(10, 25)
	c.Spawn(g, 4, 1)
	c.Hold(g)

	c.Reset()

	assert.Equal(t, KindNone, c.Held())
	assert.Equal(t, Piece{}, c.Active())
}
