package engine

// View is everything a renderer needs about the pieces. Shapes are values,
// so a View never aliases engine state.
type View struct {
	Active      Piece
	ActiveShape Shape
	Ghost       Point
	Next        Kind
	NextShape   Shape
	Held        Kind // KindNone when the slot is empty
	HeldShape   Shape
	Upcoming    []Kind // Next pieces in order, Config.Preview long
}

// Stats is the score panel.
type Stats struct {
	Score          int
	Lines          int
	Level          int
	FallIntervalMs int
	Pieces         int // Pieces locked this game
}

// SnapshotView captures the active, next, held and ghost pieces.
func (e *Engine) SnapshotView() View {
	active := e.ctrl.Active()
	next := e.ctrl.Bag().Peek()
	held := e.ctrl.Held()

	v := View{
		Active:      active,
		ActiveShape: active.Shape(),
		Ghost:       e.ctrl.Ghost(),
		Next:        next,
		NextShape:   next.Shape(0),
		Held:        held,
		Upcoming:    e.ctrl.Bag().Upcoming(e.cfg.Preview),
	}
	if held != KindNone {
		v.HeldShape = held.Shape(0)
	}
	return v
}

// Composite returns the grid with the active piece drawn in, as players see it.
func (e *Engine) Composite() Grid {
	p := e.ctrl.Active()
	return Merge(e.grid, p.Shape(), p.Pos.X, p.Pos.Y)
}
