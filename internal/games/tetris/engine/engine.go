package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

// Config fixes the playfield geometry and level rules of one game.
type Config struct {
	Width       int  // Columns
	Height      int  // Rows, including the hidden spawn buffer
	HiddenRows  int  // Top rows that are collidable but not rendered
	SpawnX      int  // Spawn anchor column
	SpawnY      int  // Spawn anchor row
	StartLevel  int  // Level at the start of a game (1..20)
	Progression bool // Whether clearing lines raises the level
	Preview     int  // Number of upcoming kinds exposed in the view
}

// DefaultConfig returns the reference 10x25 playfield with a two-row buffer.
func DefaultConfig() Config {
	return Config{
		Width:       10,
		Height:      25,
		HiddenRows:  2,
		SpawnX:      4,
		SpawnY:      1,
		StartLevel:  1,
		Progression: true,
		Preview:     3,
	}
}

// Validate checks the geometry can host every piece.
func (c Config) Validate() error {
	var errs []error
	if c.Width < ShapeSize {
		errs = append(errs, fmt.Errorf("width %d is narrower than a piece (%d)", c.Width, ShapeSize))
	}
	if c.HiddenRows < 0 {
		errs = append(errs, fmt.Errorf("hidden rows %d is negative", c.HiddenRows))
	}
	if c.Height < c.HiddenRows+ShapeSize {
		errs = append(errs, fmt.Errorf("height %d leaves no room below %d hidden rows", c.Height, c.HiddenRows))
	}
	if c.SpawnX < 0 || c.SpawnX+ShapeSize > c.Width {
		errs = append(errs, fmt.Errorf("spawn column %d puts pieces outside width %d", c.SpawnX, c.Width))
	}
	if c.SpawnY < 0 || c.SpawnY+ShapeSize > c.Height {
		errs = append(errs, fmt.Errorf("spawn row %d puts pieces outside height %d", c.SpawnY, c.Height))
	}
	if c.StartLevel < MinLevel || c.StartLevel > MaxLevel {
		errs = append(errs, fmt.Errorf("start level %d outside %d..%d", c.StartLevel, MinLevel, MaxLevel))
	}
	if c.Preview < 0 || c.Preview > KindCount {
		errs = append(errs, fmt.Errorf("preview %d outside 0..%d", c.Preview, KindCount))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("engine: invalid config: %w", err)
	}
	return nil
}

// Source tells a down step apart: user steps score a point, gravity steps don't.
type Source int

const (
	SourceGravity Source = iota
	SourceUser
)

// Listener receives gameplay notifications, e.g. to show a score popup or play
// a sound. Calls happen synchronously inside the engine operation.
type Listener interface {
	OnLinesCleared(count, bonus int)
	OnLevelUp(level int)
	OnTopOut()
}

// DropResult reports what a down step or hard drop did.
type DropResult struct {
	Moved     bool        // The piece moved at least one row
	Distance  int         // Rows moved
	Locked    bool        // The piece locked into the grid
	Cleared   ClearResult // Line clear outcome when Locked
	LeveledUp bool        // The lock raised the level
	ToppedOut bool        // The next piece overlapped at spawn
}

// Engine composes grid, controller and tracker into the operations a
// presentation layer calls per tick or per input event.
type Engine struct {
	cfg      Config
	grid     Grid
	ctrl     *Controller
	tracker  *Tracker
	listener Listener
	locked   int
}

// New creates an engine. The first piece is spawned by NewGame.
func New(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}
	return &Engine{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height),
		ctrl:    NewController(NewBag(rng)),
		tracker: NewTracker(cfg.StartLevel),
	}, nil
}

// SetListener installs the notification sink. nil disables notifications.
func (e *Engine) SetListener(l Listener) {
	e.listener = l
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewGame clears the grid, score, lines, level and hold slot, then spawns the
// first piece. It returns true if that piece already overlaps.
func (e *Engine) NewGame() bool {
	e.grid = NewGrid(e.cfg.Width, e.cfg.Height)
	e.tracker.Reset(e.cfg.StartLevel)
	e.ctrl.Reset()
	e.locked = 0
	return e.Spawn(e.cfg.SpawnX, e.cfg.SpawnY)
}

// Spawn places the next piece at (x, y). True means top-out.
func (e *Engine) Spawn(x, y int) bool {
	return e.ctrl.Spawn(e.grid, x, y)
}

// MoveDown moves the active piece down one row.
func (e *Engine) MoveDown() bool {
	return e.ctrl.MoveDown(e.grid)
}

// MoveLeft moves the active piece left one column.
func (e *Engine) MoveLeft() bool {
	return e.ctrl.MoveLeft(e.grid)
}

// MoveRight moves the active piece right one column.
func (e *Engine) MoveRight() bool {
	return e.ctrl.MoveRight(e.grid)
}

// Rotate turns the active piece to its next variant.
func (e *Engine) Rotate() bool {
	return e.ctrl.Rotate(e.grid)
}

// Hold stores or swaps the active piece.
func (e *Engine) Hold() bool {
	return e.ctrl.Hold(e.grid)
}

// LockActivePiece merges the active piece into the grid and recomputes the
// ghost against the new grid.
func (e *Engine) LockActivePiece() {
	p := e.ctrl.Active()
	e.grid = Merge(e.grid, p.Shape(), p.Pos.X, p.Pos.Y)
	e.ctrl.RefreshGhost(e.grid)
	e.locked++
}

// ClearLines removes full rows from the grid.
func (e *Engine) ClearLines() ClearResult {
	res := ClearFullRows(e.grid)
	e.grid = res.Grid
	e.ctrl.RefreshGhost(e.grid)
	return res
}

// Drop performs one down step. When the piece cannot move it is locked and
// the lock sequence runs: merge, clear, score, level, spawn.
func (e *Engine) Drop(src Source) DropResult {
	if e.MoveDown() {
		if src == SourceUser {
			e.tracker.AddScore(1)
		}
		return DropResult{Moved: true, Distance: 1}
	}
	return e.lock(DropResult{})
}

// HardDrop moves the piece down until it rests, scoring one point per row,
// then runs the lock sequence.
func (e *Engine) HardDrop() DropResult {
	var res DropResult
	for e.MoveDown() {
		e.tracker.AddScore(1)
		res.Distance++
	}
	res.Moved = res.Distance > 0
	return e.lock(res)
}

// lock runs the fixed post-landing sequence.
func (e *Engine) lock(res DropResult) DropResult {
	e.LockActivePiece()
	res.Locked = true

	res.Cleared = e.ClearLines()
	if n := res.Cleared.Count; n > 0 {
		e.tracker.AddScore(res.Cleared.Bonus)
		e.tracker.AddLines(n)
		if e.listener != nil {
			e.listener.OnLinesCleared(n, res.Cleared.Bonus)
		}

		if e.cfg.Progression && e.tracker.ReachLevelRequirement(e.tracker.Lines()) {
			res.LeveledUp = e.tracker.LevelUp()
			if res.LeveledUp && e.listener != nil {
				e.listener.OnLevelUp(e.tracker.Level())
			}
		}
	}

	res.ToppedOut = e.Spawn(e.cfg.SpawnX, e.cfg.SpawnY)
	if res.ToppedOut && e.listener != nil {
		e.listener.OnTopOut()
	}
	return res
}

// SnapshotGrid returns a copy of the playfield without the active piece.
func (e *Engine) SnapshotGrid() Grid {
	return e.grid.Clone()
}

// Stats reports score, lines and level.
func (e *Engine) Stats() Stats {
	return Stats{
		Score:          e.tracker.Score(),
		Lines:          e.tracker.Lines(),
		Level:          e.tracker.Level(),
		FallIntervalMs: FallIntervalMs(e.tracker.Level()),
		Pieces:         e.locked,
	}
}
