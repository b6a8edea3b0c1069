package snake

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // Status line and separator
	cellWidth = 2 // Terminal columns per board cell
)

// ghostAlpha is the snake opacity while the ghost effect runs.
const ghostAlpha = 0.5

// layout is the screen placement of the board.
type layout struct {
	offX, offY int // Top-left corner of the border box
	cols, rows int
}

func (g *Game) layout() (layout, bool) {
	l := layout{cols: g.cfg.Board.Cols(), rows: g.cfg.Board.Rows()}
	boxW := l.cols*cellWidth + 2
	boxH := l.rows + 2
	if g.screenW < boxW || g.screenH < hudHeight+boxH {
		return l, false
	}
	l.offX = (g.screenW - boxW) / 2
	l.offY = hudHeight
	return l, true
}

// RequiredSize returns the smallest screen that fits the board and HUD.
func (g *Game) RequiredSize() (w, h int) {
	return g.cfg.Board.Cols()*cellWidth + 2, hudHeight + g.cfg.Board.Rows() + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	l, ok := g.layout()
	if !ok {
		w, h := g.RequiredSize()
		g.renderOverlay(dst,
			overlayLine{"Window too small", core.ColorRed},
			overlayLine{fmt.Sprintf("Resize to at least %dx%d", w, h), core.ColorWhite},
		)
		return
	}

	g.renderBoard(dst, l)
	g.renderObstacles(dst, l)
	g.renderSnake(dst, l)
	g.renderFood(dst, l)

	// Draw overlays
	switch {
	case g.phase == PhaseIdle:
		g.renderOverlay(dst,
			overlayLine{"Snake · " + g.mode.Title(), core.ColorGreen},
			overlayLine{"", ""},
			overlayLine{"Press any key to start", core.ColorWhite},
		)
	case g.phase == PhaseOver:
		lines := []overlayLine{
			{"Game Over", core.ColorRed},
			{fmt.Sprintf("Final score: %d", g.score), core.ColorWhite},
		}
		if g.NewRecord() {
			lines = append(lines, overlayLine{"New record!", core.ColorOrange})
		}
		lines = append(lines,
			overlayLine{"", ""},
			overlayLine{"R restart · B menu", core.ColorWhite},
		)
		g.renderOverlay(dst, lines...)
	case g.paused:
		g.renderOverlay(dst,
			overlayLine{"Paused", core.ColorYellow},
			overlayLine{"Press Space to continue", core.ColorWhite},
		)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var b strings.Builder
	fmt.Fprintf(&b, " Snake · %s  Score: %d  Best: %d", g.mode.Title(), g.score, g.highScore)
	if g.mode == ModeTimed {
		fmt.Fprintf(&b, "  Time: %ds", g.timeLeft)
	}
	dst.DrawText(0, 0, b.String(), core.ColorWhite)

	// Draw separator, with running effects inset into it
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGrid)
	x := 2
	for _, e := range g.ActiveEffects(g.now) {
		text := fmt.Sprintf(" %s %ds ", e.Kind.Label(), e.Remaining)
		dst.DrawText(x, 1, text, effectColor(e.Kind))
		x += len([]rune(text)) + 1
	}
}

// renderBoard draws the border and grid dots.
func (g *Game) renderBoard(dst *core.Screen, l layout) {
	dst.DrawBox(core.NewRect(l.offX, l.offY, l.cols*cellWidth+2, l.rows+2), core.ColorGrid)
	for y := range l.rows {
		for x := range l.cols {
			sx, sy := l.cellOrigin(x, y)
			dst.SetColored(sx, sy, '·', core.ColorGrid)
		}
	}
}

// renderObstacles draws obstacles as grey blocks.
func (g *Game) renderObstacles(dst *core.Screen, l layout) {
	for _, o := range g.obstacles {
		g.drawCell(dst, l, o, "▓▓", core.ColorGray)
	}
}

// renderSnake draws the body tail first so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen, l layout) {
	ghost := g.hasEffect(EffectGhost)
	glyph := g.skin.Glyph()
	for i := len(g.snake) - 1; i >= 0; i-- {
		c := core.ColorRed
		if i > 0 {
			c = g.skin.BodyColor(i)
		}
		if ghost {
			c = c.WithAlpha(ghostAlpha)
		}
		g.drawCell(dst, l, g.snake[i], glyph, c)
	}
}

// renderFood draws the basic food and pulsing special food.
func (g *Game) renderFood(dst *core.Screen, l layout) {
	if g.food != nil {
		g.drawCell(dst, l, g.food.Pos, "● ", g.food.Kind.Color())
	}
	for _, f := range g.specials {
		glyph := "◆ "
		if f.Kind == FoodEnergy {
			glyph = "★ "
		}
		g.drawCell(dst, l, f.Pos, glyph, f.Kind.Color().WithAlpha(pulseAlpha(g.now.Sub(f.SpawnedAt))))
	}
}

// pulseAlpha oscillates special food opacity between 0.8 and 1.0.
func pulseAlpha(age time.Duration) float64 {
	pulse := math.Sin(float64(age.Milliseconds())/200)*0.5 + 0.5
	return 0.8 + pulse*0.2
}

// drawCell draws a two-column glyph at a board position.
func (g *Game) drawCell(dst *core.Screen, l layout, p Point, glyph string, c core.Color) {
	grid := g.cfg.Board.GridSize
	cx, cy := p.X/grid, p.Y/grid
	if cx < 0 || cx >= l.cols || cy < 0 || cy >= l.rows {
		return
	}
	sx, sy := l.cellOrigin(cx, cy)
	dst.DrawText(sx, sy, glyph, c)
}

// cellOrigin returns the screen position of a board cell's left column.
func (l layout) cellOrigin(cx, cy int) (int, int) {
	return l.offX + 1 + cx*cellWidth, l.offY + 1 + cy
}

type overlayLine struct {
	text  string
	color core.Color
}

// renderOverlay draws a centered overlay box.
func (g *Game) renderOverlay(dst *core.Screen, lines ...overlayLine) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	maxLen := 0
	for _, ln := range lines {
		maxLen = max(maxLen, len([]rune(ln.text)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2

	// Keep the box's top-left corner on screen when the window is tiny.
	cx, cy := core.NewRect(0, 0, w, h).Center()
	box := core.NewRect(
		core.Clamp(cx-boxW/2, 0, max(0, w-boxW)),
		core.Clamp(cy-boxH/2, 0, max(0, h-boxH)),
		boxW, boxH,
	)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, ln := range lines {
		dst.DrawTextCentered(box.Y+1+i, ln.text, ln.color)
	}
}

func effectColor(k EffectKind) core.Color {
	switch k {
	case EffectSpeedUp:
		return core.ColorYellow
	case EffectSlowDown:
		return core.ColorBlue
	case EffectDoublePoints:
		return core.ColorPurple
	case EffectGhost:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}
