package engine

// Point is a grid coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Piece is the falling piece: its kind, rotation index and the anchor of the
// rotation variant's top-left corner.
type Piece struct {
	Kind     Kind
	Rotation int
	Pos      Point
}

// Shape returns the piece's current rotation variant.
func (p Piece) Shape() Shape {
	return p.Kind.Shape(p.Rotation)
}

// Controller owns the active piece, the hold slot and the ghost projection.
// Every mutation is checked against the grid passed in; a rejected operation
// leaves the controller untouched.
type Controller struct {
	bag    *Bag
	active Piece
	held   Kind
	ghost  Point
}

// NewController creates a controller drawing pieces from bag.
func NewController(bag *Bag) *Controller {
	return &Controller{bag: bag}
}

// Active returns the current piece.
func (c *Controller) Active() Piece {
	return c.active
}

// Held returns the kind in the hold slot, or KindNone.
func (c *Controller) Held() Kind {
	return c.held
}

// Ghost returns the anchor where the active piece would land.
func (c *Controller) Ghost() Point {
	return c.ghost
}

// Bag returns the piece supply.
func (c *Controller) Bag() *Bag {
	return c.bag
}

// Reset empties the hold slot. Used when a new game starts.
func (c *Controller) Reset() {
	c.held = KindNone
	c.active = Piece{}
	c.ghost = Point{}
}

// Spawn takes the next kind from the bag and places it at (x, y) with
// rotation 0. It returns true when the new piece already overlaps the grid,
// which the caller treats as a top-out.
func (c *Controller) Spawn(g Grid, x, y int) bool {
	c.active = Piece{
		Kind: c.bag.Next(),
		Pos:  Point{X: x, Y: y},
	}
	c.RefreshGhost(g)
	return Overlaps(g, c.active.Shape(), x, y)
}

// Move shifts the active piece by (dx, dy) if the destination is free.
func (c *Controller) Move(g Grid, dx, dy int) bool {
	next := c.active.Pos.Add(dx, dy)
	if Overlaps(g, c.active.Shape(), next.X, next.Y) {
		return false
	}
	c.active.Pos = next
	c.RefreshGhost(g)
	return true
}

// MoveDown moves the active piece one row down.
// A false result is the caller's cue to lock the piece.
func (c *Controller) MoveDown(g Grid) bool {
	return c.Move(g, 0, 1)
}

// MoveLeft moves the active piece one column left.
func (c *Controller) MoveLeft(g Grid) bool {
	return c.Move(g, -1, 0)
}

// MoveRight moves the active piece one column right.
func (c *Controller) MoveRight(g Grid) bool {
	return c.Move(g, 1, 0)
}

// Rotate advances to the next rotation variant in place. There are no wall
// kicks: if the next variant collides at the current anchor, nothing changes.
func (c *Controller) Rotate(g Grid) bool {
	rots := c.active.Kind.Rotations()
	if len(rots) == 0 {
		return false
	}
	next := (c.active.Rotation + 1) % len(rots)
	if Overlaps(g, rots[next], c.active.Pos.X, c.active.Pos.Y) {
		return false
	}
	c.active.Rotation = next
	c.RefreshGhost(g)
	return true
}

// Hold sets the active piece aside.
//
// With an empty slot the active kind is stored and the previewed next piece
// is spawned at the same anchor. With an occupied slot the held kind and the
// active kind trade places. Either way the incoming piece starts at rotation 0
// and must fit at the current anchor, otherwise nothing changes.
//
// Holding is not limited to once per piece.
func (c *Controller) Hold(g Grid) bool {
	pos := c.active.Pos

	if c.held == KindNone {
		incoming := c.bag.Peek()
		if Overlaps(g, incoming.Shape(0), pos.X, pos.Y) {
			return false
		}
		c.held = c.active.Kind
		c.Spawn(g, pos.X, pos.Y)
		return true
	}

	if Overlaps(g, c.held.Shape(0), pos.X, pos.Y) {
		return false
	}
	c.held, c.active = c.active.Kind, Piece{Kind: c.held, Pos: pos}
	c.RefreshGhost(g)
	return true
}

// RefreshGhost recomputes the landing anchor of the active piece.
func (c *Controller) RefreshGhost(g Grid) {
	c.ghost = Project(g, c.active.Shape(), c.active.Pos)
}

// Project drops shape straight down from pos and returns the last anchor
// before the next step would overlap.
func Project(g Grid, shape Shape, pos Point) Point {
	p := pos
	if shape.IsEmpty() {
		return p
	}
	for !Overlaps(g, shape, p.X, p.Y+1) {
		p.Y++
	}
	return p
}
