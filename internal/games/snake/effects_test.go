package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSpeedEffectsExcludeEachOther(t *testing.T) {
	g := newRunning(t, ModeClassic)

	g.ApplyEffect(EffectSpeedUp, 5*time.Second, t0)
	if g.Interval() != 105*time.Millisecond {
		t.Errorf("speed-up interval = %v, want 105ms", g.Interval())
	}

	g.ApplyEffect(EffectSlowDown, 5*time.Second, ms(1000))
	if g.hasEffect(EffectSpeedUp) {
		t.Error("slow-down should cancel speed-up")
	}
	if g.Interval() != 195*time.Millisecond {
		t.Errorf("slow-down interval = %v, want 195ms", g.Interval())
	}

	g.ApplyEffect(EffectSpeedUp, 5*time.Second, ms(2000))
	if g.hasEffect(EffectSlowDown) {
		t.Error("speed-up should cancel slow-down")
	}
}

func TestSpeedUpRespectsFloor(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.baseMS = 90
	g.ApplyEffect(EffectSpeedUp, 5*time.Second, t0)
	if g.Interval() != 80*time.Millisecond {
		t.Errorf("interval = %v, want 80ms", g.Interval())
	}
}

func TestBoostedMove(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.ApplyEffect(EffectSpeedUp, 5*time.Second, t0)

	g.Step(ms(105))
	if g.snake[0] != (Point{230, 200}) {
		t.Errorf("head = %v, want {230 200}", g.snake[0])
	}

	// Food overlapping the off-grid head is still eaten
	g.putFood(FoodBasic, 260, 200, time.Time{})
	res := g.Step(ms(210))
	if !res.Has(core.EventFoodEaten) {
		t.Errorf("expected food at {260 200} to be eaten by head %v", g.snake[0])
	}
}

func TestPollEffectsExpiry(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.ApplyEffect(EffectSpeedUp, 5*time.Second, t0)
	g.ApplyEffect(EffectDoublePoints, 15*time.Second, t0)

	// Expiry is exclusive: the effect is still running at its expiry instant
	if res := g.PollEffects(ms(5000)); len(res.Events) != 0 {
		t.Errorf("events at expiry = %+v, want none", res.Events)
	}

	res := g.PollEffects(ms(5001))
	if len(res.Events) != 1 || res.Events[0].Type != core.EventEffectEnded || res.Events[0].Detail != "speedup" {
		t.Fatalf("events = %+v, want speedup ended", res.Events)
	}
	if g.Interval() != 150*time.Millisecond {
		t.Errorf("interval after speed-up ended = %v, want 150ms", g.Interval())
	}
	if !g.hasEffect(EffectDoublePoints) {
		t.Error("double points ended early")
	}

	g.PollEffects(ms(15001))
	if len(g.effects) != 0 {
		t.Errorf("effects = %v, want none", g.effects)
	}
}

func TestReapplyExtendsEffect(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.ApplyEffect(EffectDoublePoints, 15*time.Second, t0)
	g.ApplyEffect(EffectDoublePoints, 15*time.Second, ms(10000))

	g.PollEffects(ms(16000))
	if !g.hasEffect(EffectDoublePoints) {
		t.Error("reapplied effect should run from the second application")
	}
}

func TestActiveEffectsCountdown(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.ApplyEffect(EffectGhost, 8*time.Second, t0)
	g.ApplyEffect(EffectDoublePoints, 15*time.Second, t0)

	got := g.ActiveEffects(ms(2500))
	want := []ActiveEffect{
		{Kind: EffectDoublePoints, Remaining: 13},
		{Kind: EffectGhost, Remaining: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("ActiveEffects = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ActiveEffects[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFoodKindTable(t *testing.T) {
	g := newRunning(t, ModeClassic)
	tests := []struct {
		kind     FoodKind
		points   int
		effect   EffectKind
		duration time.Duration
		color    core.Color
	}{
		{FoodBasic, 10, EffectNone, 0, core.ColorOrange},
		{FoodEnergy, 25, EffectSpeedUp, 5 * time.Second, core.ColorYellow},
		{FoodSlow, 15, EffectSlowDown, 5 * time.Second, core.ColorBlue},
		{FoodDouble, 50, EffectDoublePoints, 15 * time.Second, core.ColorPurple},
		{FoodShrink, 5, EffectShrink, 0, core.ColorGreen},
		{FoodPhantom, 20, EffectGhost, 8 * time.Second, core.ColorCyan},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := g.newFood(tt.kind, Point{}, t0)
			if f.Points != tt.points || f.Effect != tt.effect || f.Duration != tt.duration {
				t.Errorf("food = %+v", f)
			}
			if tt.kind.Color() != tt.color {
				t.Errorf("color = %s, want %s", tt.kind.Color(), tt.color)
			}
			if got, ok := ParseFoodKind(tt.kind.String()); !ok || got != tt.kind {
				t.Errorf("ParseFoodKind(%q) = %v, %v", tt.kind.String(), got, ok)
			}
		})
	}
}
