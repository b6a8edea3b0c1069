package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Millisecond)
}

// newRunning returns a started game with an empty board around the snake.
func newRunning(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := New(mode, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	g.HandleAction(core.ActionOther, t0)
	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %s, want running", g.Phase())
	}
	g.obstacles = nil
	g.specials = nil
	g.food = nil
	return g
}

func (g *Game) putFood(kind FoodKind, x, y int, now time.Time) {
	f := g.newFood(kind, Point{X: x, Y: y}, now)
	if kind == FoodBasic {
		g.food = &f
		return
	}
	g.specials = append(g.specials, f)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New(ModeChallenge, config.DefaultSnakeConfig())
	g1.Reset(cfg)
	g2 := New(ModeChallenge, config.DefaultSnakeConfig())
	g2.Reset(cfg)

	g1.HandleAction(core.ActionOther, t0)
	g2.HandleAction(core.ActionOther, t0)

	for i := 1; i <= 30; i++ {
		now := ms(i * 150)
		if i == 4 {
			g1.HandleAction(core.ActionDown, now)
			g2.HandleAction(core.ActionDown, now)
		}
		if i == 8 {
			g1.HandleAction(core.ActionLeft, now)
			g2.HandleAction(core.ActionLeft, now)
		}
		g1.Step(now)
		g2.Step(now)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetPlacesSnakeAndBoard(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(string(mode), func(t *testing.T) {
			g := New(mode, config.DefaultSnakeConfig())
			g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})

			if g.Phase() != PhaseIdle {
				t.Errorf("phase = %s, want idle", g.Phase())
			}
			want := []Point{{200, 200}, {180, 200}, {160, 200}}
			for i, p := range want {
				if g.snake[i] != p {
					t.Errorf("segment %d = %v, want %v", i, g.snake[i], p)
				}
			}
			if g.food == nil {
				t.Fatal("expected basic food")
			}
			if g.occupiedBySnakeOrObstacle(g.food.Pos) {
				t.Errorf("food at %v overlaps snake or obstacle", g.food.Pos)
			}

			wantObstacles := map[Mode]int{ModeClassic: 3, ModeChallenge: 5, ModeTimed: 3}[mode]
			if len(g.obstacles) != wantObstacles {
				t.Errorf("obstacles = %d, want %d", len(g.obstacles), wantObstacles)
			}
			for _, o := range g.obstacles {
				if g.inSafeZone(o) {
					t.Errorf("obstacle %v inside the safe zone", o)
				}
				if o.X%20 != 0 || o.Y%20 != 0 {
					t.Errorf("obstacle %v not grid aligned", o)
				}
			}
			if g.Interval() != 150*time.Millisecond {
				t.Errorf("interval = %v, want 150ms", g.Interval())
			}
		})
	}
}

func (g *Game) occupiedBySnakeOrObstacle(p Point) bool {
	for _, s := range g.snake {
		if g.overlaps(s, p) {
			return true
		}
	}
	for _, o := range g.obstacles {
		if g.overlaps(o, p) {
			return true
		}
	}
	return false
}

func TestIdleWaitsForAnyKey(t *testing.T) {
	g := New(ModeClassic, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	before := g.Snapshot()
	g.Step(ms(150))
	g.TickClock(ms(1000))
	if g.Snapshot() != before {
		t.Error("idle game should not change on Step")
	}

	res := g.HandleAction(core.ActionOther, t0)
	if !res.State.Started || g.Phase() != PhaseRunning {
		t.Error("any key should start an idle game")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newRunning(t, ModeClassic)

	// Initial direction is right; left is ignored
	g.HandleAction(core.ActionLeft, t0)
	if g.nextDir != DirRight {
		t.Errorf("reversal accepted: nextDir = %s", g.nextDir)
	}

	g.HandleAction(core.ActionDown, t0)
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %s, want down", g.nextDir)
	}

	// Still moving right until the next step, so left stays rejected
	g.HandleAction(core.ActionLeft, t0)
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %s, want down", g.nextDir)
	}

	g.Step(ms(150))
	if g.snake[0] != (Point{200, 220}) {
		t.Errorf("head = %v, want {200 220}", g.snake[0])
	}
}

func TestLengthConstantWithoutFood(t *testing.T) {
	g := newRunning(t, ModeClassic)
	for i := 1; i <= 5; i++ {
		res := g.Step(ms(i * 150))
		if res.State.GameOver {
			t.Fatalf("unexpected game over at step %d", i)
		}
		if len(g.snake) != 3 {
			t.Fatalf("length = %d at step %d, want 3", len(g.snake), i)
		}
	}
	if g.snake[0] != (Point{300, 200}) {
		t.Errorf("head = %v, want {300 200}", g.snake[0])
	}
}

func TestEatBasicFood(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.putFood(FoodBasic, 220, 200, time.Time{})

	res := g.Step(ms(150))

	if res.State.Score != 10 {
		t.Errorf("score = %d, want 10", res.State.Score)
	}
	if len(g.snake) != 4 {
		t.Errorf("length = %d, want 4", len(g.snake))
	}
	if !res.Has(core.EventFoodEaten) || !res.Has(core.EventHighScore) {
		t.Errorf("events = %+v, want FoodEaten and HighScore", res.Events)
	}
	if g.food == nil || g.food.Pos == (Point{220, 200}) {
		t.Error("basic food should be replaced")
	}
	if g.occupiedBySnakeOrObstacle(g.food.Pos) {
		t.Errorf("replacement food %v overlaps the snake", g.food.Pos)
	}
	if g.Interval() != 148*time.Millisecond {
		t.Errorf("interval = %v, want 148ms", g.Interval())
	}
}

func TestSpeedProgressionByMode(t *testing.T) {
	tests := []struct {
		mode   Mode
		preset config.DifficultyPreset
		want   time.Duration
	}{
		{ModeClassic, config.DifficultyNormal, 148 * time.Millisecond},
		{ModeChallenge, config.DifficultyNormal, 147 * time.Millisecond},
		{ModeTimed, config.DifficultyNormal, 150 * time.Millisecond},
		{ModeClassic, config.DifficultyFixed, 150 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+string(tt.preset), func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			config.ApplySnakePreset(&cfg, tt.preset)
			g := New(tt.mode, cfg)
			g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})
			g.HandleAction(core.ActionOther, t0)
			g.obstacles = nil
			g.putFood(FoodBasic, 220, 200, time.Time{})

			g.Step(ms(150))
			if got := g.BaseInterval(); got != tt.want {
				t.Errorf("base interval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpeedFloor(t *testing.T) {
	g := newRunning(t, ModeChallenge)
	g.baseMS = 81
	g.speedUpAfterFood()
	if g.Interval() != 80*time.Millisecond {
		t.Errorf("interval = %v, want floor 80ms", g.Interval())
	}
}

func TestDoublePoints(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.ApplyEffect(EffectDoublePoints, 15*time.Second, t0)
	g.putFood(FoodBasic, 220, 200, time.Time{})

	res := g.Step(ms(150))
	if res.State.Score != 20 {
		t.Errorf("score = %d, want 20", res.State.Score)
	}
}

func TestHighScoreOnlyWhenBeaten(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.SetHighScore(15)

	g.putFood(FoodBasic, 220, 200, time.Time{})
	res := g.Step(ms(150))
	if res.Has(core.EventHighScore) {
		t.Error("10 points should not beat a best of 15")
	}
	if g.NewRecord() {
		t.Error("NewRecord() should be false")
	}

	g.putFood(FoodBasic, 240, 200, time.Time{})
	res = g.Step(ms(300))
	if !res.Has(core.EventHighScore) || res.State.HighScore != 20 {
		t.Errorf("expected new high score 20, got %+v", res)
	}
	if !g.NewRecord() {
		t.Error("NewRecord() should be true")
	}
}

func TestShrinkFood(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.snake = nil
	for i := range 8 {
		g.snake = append(g.snake, Point{X: 200 - i*20, Y: 200})
	}
	g.putFood(FoodShrink, 220, 200, t0)

	res := g.Step(ms(150))
	if len(g.snake) != 3 {
		t.Errorf("length = %d, want 3", len(g.snake))
	}
	if g.snake[0] != (Point{220, 200}) {
		t.Errorf("head = %v, want {220 200}", g.snake[0])
	}
	if res.State.Score != 5 {
		t.Errorf("score = %d, want 5", res.State.Score)
	}
	if len(g.specials) != 0 {
		t.Error("eaten special food should be removed")
	}
	if g.hasEffect(EffectShrink) {
		t.Error("shrink should not be tracked as a running effect")
	}
}

func TestCollisions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		ghost bool
		over  bool
	}{
		{
			name: "right wall",
			setup: func(g *Game) {
				g.snake = []Point{{380, 200}, {360, 200}, {340, 200}}
			},
			over: true,
		},
		{
			name: "top wall",
			setup: func(g *Game) {
				g.snake = []Point{{200, 0}, {200, 20}, {200, 40}}
				g.direction, g.nextDir = DirUp, DirUp
			},
			over: true,
		},
		{
			name: "obstacle",
			setup: func(g *Game) {
				g.obstacles = []Point{{220, 200}}
			},
			over: true,
		},
		{
			name: "obstacle under ghost",
			setup: func(g *Game) {
				g.obstacles = []Point{{220, 200}}
			},
			ghost: true,
			over:  true,
		},
		{
			name: "self",
			setup: func(g *Game) {
				g.snake = []Point{{200, 200}, {200, 220}, {220, 220}, {220, 200}, {220, 180}}
				g.direction, g.nextDir = DirUp, DirRight
			},
			over: true,
		},
		{
			name: "self under ghost",
			setup: func(g *Game) {
				g.snake = []Point{{200, 200}, {200, 220}, {220, 220}, {220, 200}, {220, 180}}
				g.direction, g.nextDir = DirUp, DirRight
			},
			ghost: true,
			over:  false,
		},
		{
			name: "own tail",
			setup: func(g *Game) {
				g.snake = []Point{{200, 200}, {200, 220}, {220, 220}, {220, 200}}
				g.direction, g.nextDir = DirUp, DirRight
			},
			over: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newRunning(t, ModeClassic)
			tt.setup(g)
			if tt.ghost {
				g.ApplyEffect(EffectGhost, 8*time.Second, t0)
			}
			length := len(g.snake)

			res := g.Step(ms(150))
			if res.State.GameOver != tt.over {
				t.Fatalf("game over = %v, want %v", res.State.GameOver, tt.over)
			}
			if tt.over {
				if !res.Has(core.EventMatchEnded) {
					t.Error("expected MatchEnded event")
				}
				if g.Phase() != PhaseOver {
					t.Errorf("phase = %s, want over", g.Phase())
				}
				if len(g.snake) != length {
					t.Errorf("snake changed on collision: %d -> %d", length, len(g.snake))
				}
			} else if len(g.snake) != length {
				t.Errorf("length = %d, want %d", len(g.snake), length)
			}
		})
	}
}

func TestTimedCountdown(t *testing.T) {
	g := newRunning(t, ModeTimed)
	if g.TimeLeft() != 60 {
		t.Fatalf("time left = %d, want 60", g.TimeLeft())
	}

	for i := 1; i < 60; i++ {
		if res := g.TickClock(ms(i * 1000)); res.State.GameOver {
			t.Fatalf("game over after %d seconds", i)
		}
	}
	if g.TimeLeft() != 1 {
		t.Errorf("time left = %d, want 1", g.TimeLeft())
	}

	res := g.TickClock(ms(60000))
	if !res.State.GameOver || !res.Has(core.EventMatchEnded) {
		t.Fatalf("countdown reaching 0 should end the match, got %+v", res)
	}
	if res.Events[0].Detail != "time" {
		t.Errorf("end reason = %q, want time", res.Events[0].Detail)
	}
	if res.State.Elapsed != 60*time.Second {
		t.Errorf("elapsed = %v, want 60s", res.State.Elapsed)
	}
}

func TestClockOnlyInTimedMode(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.TickClock(ms(1000))
	if g.TimeLeft() != 60 {
		t.Errorf("classic clock moved: %d", g.TimeLeft())
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newRunning(t, ModeTimed)
	g.ApplyEffect(EffectSpeedUp, 5*time.Second, t0)
	g.HandleAction(core.ActionPause, t0)

	before := g.Snapshot()
	g.Step(ms(150))
	g.TickClock(ms(1000))
	g.PollEffects(ms(6000))
	if g.Snapshot() != before {
		t.Error("paused game changed")
	}

	g.HandleAction(core.ActionPause, ms(7000))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.snake = []Point{{380, 200}, {360, 200}, {340, 200}}
	g.score = 40
	g.SetHighScore(40)
	g.Step(ms(150))
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	// Other keys do nothing while over
	g.HandleAction(core.ActionUp, ms(200))
	if !g.State().GameOver {
		t.Fatal("direction key should not restart")
	}

	res := g.HandleAction(core.ActionRestart, ms(300))
	if res.State.GameOver || g.Phase() != PhaseRunning {
		t.Errorf("restart should run a new match, phase = %s", g.Phase())
	}
	if res.State.Score != 0 || res.State.Length != 3 {
		t.Errorf("restart state = %+v", res.State)
	}
	if res.State.HighScore != 40 {
		t.Errorf("high score = %d, want 40 kept across restart", res.State.HighScore)
	}
}

func TestSpecialFoodTimer(t *testing.T) {
	tests := []struct {
		name      string
		chance    float64
		timer     int
		existing  int
		wantSpawn bool
		wantTimer int
	}{
		{"below threshold", 1, 10, 0, false, 11},
		{"spawns at threshold", 1, 49, 0, true, 0},
		{"failed roll keeps counting", 0, 60, 0, false, 61},
		{"failed roll resets past limit", 0, 100, 0, false, 0},
		{"max special reached", 1, 60, 2, false, 61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			cfg.Food.Chance["classic"] = tt.chance
			g := New(ModeClassic, cfg)
			g.Reset(core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24})
			for i := range tt.existing {
				g.putFood(FoodSlow, i*20, 0, t0)
			}
			g.specialTimer = tt.timer

			g.maybeSpawnSpecial(t0)

			spawned := len(g.specials) > tt.existing
			if spawned != tt.wantSpawn {
				t.Errorf("spawned = %v, want %v", spawned, tt.wantSpawn)
			}
			if g.specialTimer != tt.wantTimer {
				t.Errorf("timer = %d, want %d", g.specialTimer, tt.wantTimer)
			}
			if spawned {
				f := g.specials[len(g.specials)-1]
				if !f.Special() || !f.SpawnedAt.Equal(t0) {
					t.Errorf("spawned food = %+v", f)
				}
			}
		})
	}
}

func TestSpecialKindsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Food.SpecialKinds = []string{"phantom"}
	cfg.Food.Chance["classic"] = 1
	g := New(ModeClassic, cfg)
	g.Reset(core.RuntimeConfig{Seed: 9, ScreenW: 80, ScreenH: 24})
	g.specialTimer = 49

	g.maybeSpawnSpecial(t0)
	if len(g.specials) != 1 || g.specials[0].Kind != FoodPhantom {
		t.Fatalf("specials = %+v, want one phantom", g.specials)
	}
	if g.specials[0].Effect != EffectGhost || g.specials[0].Duration != 8*time.Second {
		t.Errorf("phantom food = %+v", g.specials[0])
	}
}

func TestSpecialFoodLifetime(t *testing.T) {
	g := newRunning(t, ModeClassic)
	g.putFood(FoodDouble, 0, 0, t0)

	g.expireSpecials(ms(9999))
	g.expireSpecials(ms(10000))
	if len(g.specials) != 1 {
		t.Fatal("special food removed before its lifetime elapsed")
	}
	g.expireSpecials(ms(10001))
	if len(g.specials) != 0 {
		t.Error("special food kept after its lifetime")
	}
}

func TestChallengeEscalation(t *testing.T) {
	g := New(ModeChallenge, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 11, ScreenW: 80, ScreenH: 24})
	if len(g.obstacles) != 5 {
		t.Fatalf("obstacles = %d, want 5", len(g.obstacles))
	}

	g.score = 90
	g.escalate()
	if len(g.obstacles) != 5 {
		t.Errorf("obstacles = %d below first threshold", len(g.obstacles))
	}

	g.score = 250
	g.escalate()
	g.escalate()
	if len(g.obstacles) != 7 {
		t.Errorf("obstacles = %d, want 7 after crossing 100 and 200", len(g.obstacles))
	}

	g.score = 2000
	g.escalate()
	if len(g.obstacles) != 10 {
		t.Errorf("obstacles = %d, want cap of 10", len(g.obstacles))
	}
}

func TestNoEscalationOutsideChallenge(t *testing.T) {
	g := New(ModeClassic, config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 11, ScreenW: 80, ScreenH: 24})
	g.score = 500
	g.escalate()
	if len(g.obstacles) != 3 {
		t.Errorf("obstacles = %d, want 3", len(g.obstacles))
	}
}

func TestFreeCellFallsBackToScan(t *testing.T) {
	g := newRunning(t, ModeClassic)

	// Fill every cell except one
	g.obstacles = nil
	for y := range 20 {
		for x := range 20 {
			if x == 19 && y == 19 {
				continue
			}
			g.obstacles = append(g.obstacles, Point{X: x * 20, Y: y * 20})
		}
	}
	g.snake = nil

	p, ok := g.freeCell(nil)
	if !ok || p != (Point{380, 380}) {
		t.Errorf("freeCell = %v, %v; want {380 380}", p, ok)
	}

	g.obstacles = append(g.obstacles, Point{380, 380})
	if _, ok := g.freeCell(nil); ok {
		t.Error("freeCell on a full board should fail")
	}
	g.placeBasicFood()
	if g.food != nil {
		t.Error("basic food should be skipped on a full board")
	}
}

func TestRegisteredModes(t *testing.T) {
	ids := registry.IDs()
	want := []string{"classic", "challenge", "timed"}
	if len(ids) != len(want) {
		t.Fatalf("registered = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("mode %d = %q, want %q", i, ids[i], want[i])
		}
	}

	g, err := registry.Create("timed", config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Create(timed): %v", err)
	}
	if g.ID() != "timed" || g.Title() != "Timed" {
		t.Errorf("created %s/%s", g.ID(), g.Title())
	}
	if _, err := registry.Create("endless", config.DefaultSnakeConfig()); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("challenge"); err != nil || m != ModeChallenge {
		t.Errorf("ParseMode(challenge) = %q, %v", m, err)
	}
	if _, err := ParseMode("campaign"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
