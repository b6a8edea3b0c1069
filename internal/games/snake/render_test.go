package snake

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board origin for a 20x20 board on an 80x24 screen.
const (
	originX = (80-42)/2 + 1
	originY = hudHeight + 1
)

func render(g *Game) *core.Screen {
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	return screen
}

func cellAt(screen *core.Screen, p Point) core.Cell {
	return screen.GetCell(originX+p.X/20*cellWidth, originY+p.Y/20)
}

func TestRenderIdle(t *testing.T) {
	g := New(ModeTimed, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	content := render(g).String()
	for _, want := range []string{"Snake · Timed", "Score: 0", "Time: 60s", "Press any key to start"} {
		if !strings.Contains(content, want) {
			t.Errorf("idle screen missing %q", want)
		}
	}
}

func TestRenderFitsStandardTerminal(t *testing.T) {
	g := New(ModeClassic, config.DefaultSnakeConfig())
	w, h := g.RequiredSize()
	if w > 80 || h > 24 {
		t.Errorf("required size %dx%d does not fit 80x24", w, h)
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	g := New(ModeClassic, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 30, ScreenH: 10})

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too small message")
	}
}

func TestRenderOverlayStaysOnTinyScreen(t *testing.T) {
	g := New(ModeClassic, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 6})

	screen := core.NewScreen(20, 6)
	g.Render(screen)

	// The box is wider than the screen, so it starts at the left edge.
	if got := screen.Get(0, 1); got != '┌' {
		t.Errorf("box corner = %q at (0, 1), want '┌'\n%s", got, screen.String())
	}
	if !strings.Contains(screen.Row(2), "Window too small") {
		t.Errorf("message missing from %q", screen.Row(2))
	}
}

func TestRenderSnakeAndFood(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.putFood(FoodBasic, 0, 0, time.Time{})
	g.putFood(FoodEnergy, 40, 0, t0)
	g.putFood(FoodDouble, 80, 0, t0)
	g.obstacles = []Point{{0, 380}}

	screen := render(g)

	head := cellAt(screen, g.snake[0])
	if head.Rune != '◖' || head.Color != core.ColorRed {
		t.Errorf("head cell = %+v", head)
	}
	body := cellAt(screen, g.snake[1])
	if body.Color != SkinDefault.BodyColor(1) {
		t.Errorf("body color = %s, want %s", body.Color, SkinDefault.BodyColor(1))
	}
	if c := cellAt(screen, Point{0, 0}); c.Rune != '●' || c.Color != core.ColorOrange {
		t.Errorf("basic food cell = %+v", c)
	}
	if c := cellAt(screen, Point{40, 0}); c.Rune != '★' {
		t.Errorf("energy food rune = %q, want star", c.Rune)
	}
	if c := cellAt(screen, Point{80, 0}); c.Rune != '◆' {
		t.Errorf("double food rune = %q", c.Rune)
	}
	if c := cellAt(screen, Point{0, 380}); c.Rune != '▓' || c.Color != core.ColorGray {
		t.Errorf("obstacle cell = %+v", c)
	}
	if c := cellAt(screen, Point{380, 380}); c.Rune != '·' {
		t.Errorf("empty cell rune = %q, want grid dot", c.Rune)
	}
}

func TestRenderPixelSkinAndGhost(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.SetSkin(SkinPixel)
	g.ApplyEffect(EffectGhost, 8*time.Second, t0)

	screen := render(g)
	head := cellAt(screen, g.snake[0])
	if head.Rune != '█' {
		t.Errorf("pixel head rune = %q", head.Rune)
	}
	if head.Color != core.ColorRed.WithAlpha(ghostAlpha) {
		t.Errorf("ghost head color = %s, want %s", head.Color, core.ColorRed.WithAlpha(ghostAlpha))
	}
	if !strings.Contains(screen.Row(1), "Ghost 8s") {
		t.Errorf("effect countdown missing from %q", screen.Row(1))
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.HandleAction(core.ActionPause, t0)
	if !strings.Contains(render(g).String(), "Paused") {
		t.Error("paused overlay missing")
	}
	g.HandleAction(core.ActionPause, t0)

	g.putFood(FoodBasic, 220, 200, time.Time{})
	g.Step(ms(150))
	g.snake[0] = Point{380, 200}
	g.Step(ms(300))

	content := render(g).String()
	for _, want := range []string{"Game Over", "Final score: 10", "New record!", "R restart"} {
		if !strings.Contains(content, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestPulseAlpha(t *testing.T) {
	for age := 0; age < 5000; age += 37 {
		a := pulseAlpha(time.Duration(age) * time.Millisecond)
		if a < 0.8 || a > 1.0 {
			t.Fatalf("pulseAlpha(%dms) = %v out of range", age, a)
		}
	}
	if a := pulseAlpha(0); math.Abs(a-0.9) > 1e-9 {
		t.Errorf("pulseAlpha(0) = %v, want 0.9", a)
	}
}

func TestSkinColors(t *testing.T) {
	tests := []struct {
		skin Skin
		i    int
		want core.Color
	}{
		{SkinDefault, 1, core.HSL(120, 68, 40.5)},
		{SkinRainbow, 18, core.HSL(0, 70, 50)},
		{SkinMetal, 4, core.HSL(220, 10, 50)},
		{SkinPixel, 7, core.HSL(120, 60, 50)},
	}
	for _, tt := range tests {
		if got := tt.skin.BodyColor(tt.i); got != tt.want {
			t.Errorf("%s.BodyColor(%d) = %s, want %s", tt.skin, tt.i, got, tt.want)
		}
	}
}

func TestSkinCycle(t *testing.T) {
	s := SkinDefault
	seen := map[Skin]bool{}
	for range Skins() {
		seen[s] = true
		s = s.Next()
	}
	if s != SkinDefault || len(seen) != len(Skins()) {
		t.Errorf("cycle ended at %s after visiting %d skins", s, len(seen))
	}
	if _, err := ParseSkin("neon"); err == nil {
		t.Error("expected error for unknown skin")
	}
}
