// Package tetris adapts the rules engine to the platform's fixed-tick game
// loop: it turns input frames into engine operations, drives gravity and the
// mode timer from ticks, and renders the playfield and side panels.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// noticeSeconds is how long a "+bonus" or level-up notice stays up.
const noticeSeconds = 1.5

type notice struct {
	text  string
	color core.Color
	ttl   int // ticks left
}

// Game implements registry.Game for one mode.
type Game struct {
	mode Mode
	opts registry.Options

	eng      *engine.Engine
	rng      *rand.Rand
	tickRate int
	screenW  int
	screenH  int

	tick     uint64
	gravity  int // accumulated time, in ms*tickRate units
	timeLeft int // ticks until a timed mode ends
	gameOver bool
	timeUp   bool
	paused   bool
	tooSmall bool
	notices  []notice
}

// New creates a game for mode. The engine is built on Reset.
func New(mode Mode, opts registry.Options) *Game {
	return &Game{mode: mode, opts: opts}
}

// ID returns the mode id.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the mode's display name.
func (g *Game) Title() string {
	return g.mode.Title
}

// Mode returns the mode being played.
func (g *Game) Mode() Mode {
	return g.mode
}

// engineConfig merges the file configuration with the player's start level.
func (g *Game) engineConfig() engine.Config {
	cfg := g.opts.Config.EngineConfig()
	if lvl := g.opts.Settings.StartLevel; lvl > 0 {
		cfg.StartLevel = lvl
	}
	if cfg.Validate() != nil {
		cfg = engine.DefaultConfig()
	}
	return cfg
}

// Reset starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW, g.screenH = cfg.ScreenW, cfg.ScreenH

	eng, err := engine.New(g.engineConfig(), rand.New(rand.NewSource(g.rng.Int63())))
	if err != nil {
		// engineConfig only returns validated configs.
		panic(fmt.Sprintf("tetris: %v", err))
	}
	eng.SetListener(notifier{g})
	g.eng = eng

	g.tick = 0
	g.gravity = 0
	g.timeLeft = int(g.mode.TimeLimit.Seconds()) * g.tickRate
	g.gameOver = false
	g.timeUp = false
	g.paused = false
	g.notices = nil
	g.checkSize()

	if g.eng.NewGame() {
		g.gameOver = true
	}
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkSize()
}

func (g *Game) checkSize() {
	if g.eng == nil {
		return
	}
	minW, minH := g.layout().minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(input)
	if !g.gameOver {
		g.applyGravity()
	}
	if !g.gameOver && g.mode.Timed() {
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.timeUp = true
			g.gameOver = true
		}
	}
	g.ageNotices()

	return core.StepResult{State: g.State()}
}

// applyInput runs the frame's actions in a fixed order so one frame always
// has the same effect.
func (g *Game) applyInput(input core.InputFrame) {
	if input.Has(core.ActionHold) {
		g.eng.Hold()
	}
	if input.Has(core.ActionRotate) {
		g.eng.Rotate()
	}
	if input.Has(core.ActionLeft) {
		g.eng.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		g.eng.MoveRight()
	}
	if input.Has(core.ActionSoftDrop) {
		g.afterDrop(g.eng.Drop(engine.SourceUser))
	}
	if input.Has(core.ActionHardDrop) && !g.gameOver {
		g.afterDrop(g.eng.HardDrop())
	}
}

// applyGravity moves the piece down once per fall interval of the current level.
func (g *Game) applyGravity() {
	g.gravity += 1000
	for !g.gameOver {
		threshold := g.eng.Stats().FallIntervalMs * g.tickRate
		if g.gravity < threshold {
			return
		}
		g.gravity -= threshold
		g.afterDrop(g.eng.Drop(engine.SourceGravity))
	}
}

func (g *Game) afterDrop(res engine.DropResult) {
	if res.Locked {
		g.gravity = 0
	}
	if res.ToppedOut {
		g.gameOver = true
	}
}

func (g *Game) ageNotices() {
	kept := g.notices[:0]
	for _, n := range g.notices {
		n.ttl--
		if n.ttl > 0 {
			kept = append(kept, n)
		}
	}
	g.notices = kept
}

func (g *Game) pushNotice(text string, color core.Color) {
	g.notices = append(g.notices, notice{
		text:  text,
		color: color,
		ttl:   int(noticeSeconds * float64(g.tickRate)),
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.eng.Stats()
	return core.GameState{
		Score:    st.Score,
		Lines:    st.Lines,
		Level:    st.Level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Engine exposes the rules engine for inspection.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// notifier feeds engine events into the notice panel.
type notifier struct {
	g *Game
}

func (n notifier) OnLinesCleared(count, bonus int) {
	n.g.pushNotice(fmt.Sprintf("+%d", bonus), core.ColorBrightYellow)
}

func (n notifier) OnLevelUp(level int) {
	n.g.pushNotice(fmt.Sprintf("LEVEL %d", level), core.ColorBrightCyan)
}

func (n notifier) OnTopOut() {}
