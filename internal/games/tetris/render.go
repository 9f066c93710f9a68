package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW  = 2  // Screen columns per grid cell
	sideW  = 14 // Width of each side panel
	gutter = 2  // Space between panels and the well
)

func cellColor(c engine.Cell) core.Color {
	return core.PieceColor(uint8(c))
}

// layout positions the well and side panels on screen.
type layout struct {
	cols, rows int // Visible well size in cells
	hidden     int
	wellX      int // Screen column of the first cell
	wellY      int // Screen row of the first visible row
	leftX      int
	rightX     int
}

func (g *Game) layout() layout {
	cfg := g.eng.Config()
	l := layout{
		cols:   cfg.Width,
		rows:   cfg.Height - cfg.HiddenRows,
		hidden: cfg.HiddenRows,
	}
	w, h := l.minSize()
	originX := max(0, (g.screenW-w)/2)
	originY := max(0, (g.screenH-h)/2)

	l.leftX = originX
	l.wellX = originX + sideW + gutter + 1
	l.wellY = originY
	l.rightX = l.wellX + l.cols*cellW + 1 + gutter
	return l
}

// minSize is the smallest screen that fits the well and both panels.
func (l layout) minSize() (w, h int) {
	return 2*sideW + 2*gutter + l.cols*cellW + 2, l.rows + 1
}

// Render draws the game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.layout().minSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	l := g.layout()
	g.renderWell(dst, l)
	g.renderLeftPanel(dst, l)
	g.renderRightPanel(dst, l)

	switch {
	case g.timeUp:
		g.renderOverlay(dst, "TIME UP", g.restartHint())
	case g.gameOver:
		g.renderOverlay(dst, "GAME OVER", g.restartHint())
	case g.paused:
		g.renderOverlay(dst, "PAUSED", fmt.Sprintf("Press %s to continue", g.keyName(core.ActionPause)))
	}
}

func (g *Game) restartHint() string {
	return fmt.Sprintf("Press %s to restart", g.keyName(core.ActionRestart))
}

func (g *Game) keyName(a core.Action) string {
	if k := g.opts.Settings.KeyFor(a); k != "" {
		return k
	}
	return "?"
}

// renderWell draws walls, locked cells, the ghost and the active piece.
// Hidden rows are skipped.
func (g *Game) renderWell(dst *core.Screen, l layout) {
	for y := range l.rows {
		dst.SetColored(l.wellX-1, l.wellY+y, '│', core.ColorGray)
		dst.SetColored(l.wellX+l.cols*cellW, l.wellY+y, '│', core.ColorGray)
	}
	floor := l.wellY + l.rows
	dst.SetColored(l.wellX-1, floor, '└', core.ColorGray)
	dst.SetColored(l.wellX+l.cols*cellW, floor, '┘', core.ColorGray)
	for x := range l.cols * cellW {
		dst.SetColored(l.wellX+x, floor, '─', core.ColorGray)
	}

	grid := g.eng.SnapshotGrid()
	for row := l.hidden; row < grid.Height(); row++ {
		for col := range grid.Width() {
			if c := grid[row][col]; c != engine.Empty {
				g.drawCell(dst, l, col, row, '█', cellColor(c))
			} else {
				g.drawCell(dst, l, col, row, '·', core.ColorDarkGray)
			}
		}
	}

	v := g.eng.SnapshotView()
	if g.opts.Settings.ShowGhost && !g.gameOver {
		g.drawShape(dst, l, v.ActiveShape, v.Ghost, '░', core.ColorGray)
	}
	g.drawShape(dst, l, v.ActiveShape, v.Active.Pos, '█', cellColor(v.Active.Kind.Color()))
}

func (g *Game) drawShape(dst *core.Screen, l layout, s engine.Shape, at engine.Point, r rune, c core.Color) {
	for j := range engine.ShapeSize {
		for i := range engine.ShapeSize {
			if s[j][i] != engine.Empty {
				g.drawCell(dst, l, at.X+i, at.Y+j, r, c)
			}
		}
	}
}

// drawCell paints one grid cell; cells in hidden or out-of-range rows are skipped.
func (g *Game) drawCell(dst *core.Screen, l layout, col, row int, r rune, c core.Color) {
	if row < l.hidden || row >= l.hidden+l.rows || col < 0 || col >= l.cols {
		return
	}
	x := l.wellX + col*cellW
	y := l.wellY + row - l.hidden
	if r == '·' {
		dst.SetColored(x, y, ' ', c)
		dst.SetColored(x+1, y, r, c)
		return
	}
	for k := range cellW {
		dst.SetColored(x+k, y, r, c)
	}
}

// renderLeftPanel draws the hold box, stats and notices.
func (g *Game) renderLeftPanel(dst *core.Screen, l layout) {
	x, y := l.leftX, l.wellY

	if g.opts.Settings.ShowHold {
		v := g.eng.SnapshotView()
		drawPreviewBox(dst, core.NewRect(x, y, sideW, 4), "HOLD", []engine.Kind{v.Held})
	}
	y += 5

	st := g.eng.Stats()
	lines := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", st.Score)},
		{"LINES", fmt.Sprintf("%d", st.Lines)},
		{"LEVEL", fmt.Sprintf("%d", st.Level)},
		{"TIME", g.clock()},
	}
	for _, ln := range lines {
		dst.DrawTextColored(x+1, y, ln.label, core.ColorGray)
		dst.DrawTextColored(x+1, y+1, ln.value, core.ColorBrightWhite)
		y += 2
	}

	y++
	for _, n := range g.notices {
		dst.DrawTextColored(x+1, y, n.text, n.color)
		y++
	}
}

// clock shows the remaining time in timed modes and elapsed time otherwise.
func (g *Game) clock() string {
	var secs int
	if g.mode.Timed() {
		secs = (g.timeLeft + g.tickRate - 1) / g.tickRate
	} else {
		secs = int(g.tick) / g.tickRate
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// renderRightPanel draws the next queue and control hints.
func (g *Game) renderRightPanel(dst *core.Screen, l layout) {
	x, y := l.rightX, l.wellY

	if g.opts.Settings.ShowNext {
		up := g.eng.SnapshotView().Upcoming
		if len(up) > 0 {
			h := 3*len(up) + 1
			drawPreviewBox(dst, core.NewRect(x, y, sideW, h), "NEXT", up)
			y += h + 1
		}
	}

	if !g.opts.Settings.ShowControls {
		return
	}
	hints := []struct {
		label  string
		action core.Action
	}{
		{"Left", core.ActionLeft},
		{"Right", core.ActionRight},
		{"Rotate", core.ActionRotate},
		{"Soft", core.ActionSoftDrop},
		{"Drop", core.ActionHardDrop},
		{"Hold", core.ActionHold},
		{"Pause", core.ActionPause},
		{"New", core.ActionRestart},
	}
	for _, h := range hints {
		if y >= l.wellY+l.rows+1 {
			return
		}
		text := fmt.Sprintf("%-7s%s", h.label, g.keyName(h.action))
		if len(text) > sideW {
			text = text[:sideW]
		}
		dst.DrawTextColored(x, y, text, core.ColorGray)
		y++
	}
}

// drawPreviewBox draws a titled box holding kinds stacked vertically,
// each in its spawn orientation.
func drawPreviewBox(dst *core.Screen, r core.Rect, title string, kinds []engine.Kind) {
	dst.DrawBox(r, core.ColorGray)
	dst.DrawTextColored(r.X+2, r.Y, title, core.ColorBrightWhite)

	inner := r.Inner()
	y := inner.Y
	for _, k := range kinds {
		if k.Valid() {
			drawMiniPiece(dst, inner.X, y, inner.W, k)
		}
		y += 3
	}
}

// drawMiniPiece draws the filled rows of a kind's first variant, centered in width.
func drawMiniPiece(dst *core.Screen, x, y, width int, k engine.Kind) {
	s := k.Shape(0)
	minR, maxR, minC, maxC := engine.ShapeSize, -1, engine.ShapeSize, -1
	for j := range engine.ShapeSize {
		for i := range engine.ShapeSize {
			if s[j][i] != engine.Empty {
				minR, maxR = min(minR, j), max(maxR, j)
				minC, maxC = min(minC, i), max(maxC, i)
			}
		}
	}
	if maxR < 0 {
		return
	}
	offset := (width - (maxC-minC+1)*cellW) / 2
	color := cellColor(k.Color())
	for j := minR; j <= maxR; j++ {
		for i := minC; i <= maxC; i++ {
			if s[j][i] == engine.Empty {
				continue
			}
			px := x + offset + (i-minC)*cellW
			for c := range cellW {
				dst.SetColored(px+c, y+j-minR, '█', color)
			}
		}
	}
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorWhite)
}
