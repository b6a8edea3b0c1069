// Package snake implements the Snake game: a grid simulation with timed
// power-ups, obstacles and three modes. It has no terminal or storage
// dependencies; the platform drives it with explicit timestamps.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const minSnakeLen = 3

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Phase is the lifecycle stage of a match.
type Phase int

const (
	PhaseIdle    Phase = iota // Reset, waiting for any key
	PhaseRunning              // Moving; may be paused
	PhaseOver                 // Ended by collision or timeout
)

// Point represents a position in board units.
type Point struct {
	X, Y int
}

// Game implements the Snake game.
type Game struct {
	cfg          config.SnakeConfig
	mode         Mode
	rng          *rand.Rand
	specialKinds []FoodKind
	tick         uint64

	phase     Phase
	paused    bool
	score     int
	highScore int

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Applied on the next move

	// Board contents
	food      *Food // Nil only when the board is full
	specials  []Food
	obstacles []Point

	effects      map[EffectKind]time.Time // Expiry per running effect
	baseMS       float64                  // Interval before speed effects
	specialTimer int                      // Ticks since the last special food roll
	thresholds   int                      // Challenge score thresholds already handled
	timeLeft     int                      // Timed mode countdown, seconds

	startedAt time.Time
	endedAt   time.Time
	now       time.Time // Last instant seen, used for rendering

	skin    Skin
	screenW int
	screenH int
}

// New creates a Snake game in the given mode. Call Reset before use.
func New(mode Mode, cfg config.SnakeConfig) *Game {
	return &Game{
		cfg:          cfg,
		mode:         mode,
		specialKinds: enabledSpecialKinds(cfg.Food.SpecialKinds),
		effects:      make(map[EffectKind]time.Time),
		skin:         SkinDefault,
	}
}

func init() {
	for _, m := range Modes() {
		registry.Register(string(m), func(cfg config.SnakeConfig) registry.Game {
			return New(m, cfg)
		})
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Description returns the one-line mode summary shown in menus.
func (g *Game) Description() string {
	return g.mode.Description()
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game in the idle phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.phase = PhaseIdle
	g.paused = false
	g.score = 0
	g.baseMS = float64(g.cfg.Speed.InitialMS)
	g.specialTimer = 0
	g.thresholds = 0
	g.timeLeft = g.cfg.Timed.DurationSecs
	g.startedAt = time.Time{}
	g.endedAt = time.Time{}
	g.now = time.Time{}
	clear(g.effects)
	g.specials = nil
	g.obstacles = nil

	g.initSnake()
	g.placeBasicFood()
	g.placeObstacles()
}

// initSnake places a three segment snake in the middle of the board, heading right.
func (g *Game) initSnake() {
	grid := g.cfg.Board.GridSize
	cx := g.cfg.Board.Cols() / 2 * grid
	cy := g.cfg.Board.Rows() / 2 * grid

	g.snake = []Point{
		{X: cx, Y: cy}, // Head
		{X: cx - grid, Y: cy},
		{X: cx - 2*grid, Y: cy},
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// SetHighScore seeds the best score for this mode.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// SetSkin selects the body coloring.
func (g *Game) SetSkin(s Skin) {
	g.skin = s
}

// Resize updates the screen size used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// start moves an idle game into the running phase.
func (g *Game) start(now time.Time) {
	g.phase = PhaseRunning
	g.startedAt = now
	g.now = now
}

// HandleAction applies a player action.
func (g *Game) HandleAction(a core.Action, now time.Time) core.StepResult {
	switch g.phase {
	case PhaseIdle:
		if a != core.ActionNone {
			g.start(now)
		}
	case PhaseOver:
		if a == core.ActionRestart {
			g.Reset(core.RuntimeConfig{
				Seed:    g.rng.Int63(),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
			})
			g.start(now)
		}
	case PhaseRunning:
		switch {
		case a == core.ActionPause:
			g.paused = !g.paused
		case a.IsDirection():
			g.steer(a)
		}
	}
	return core.StepResult{State: g.State()}
}

// steer buffers a direction change, rejecting reversals.
func (g *Game) steer(a core.Action) {
	var d Direction
	switch a {
	case core.ActionUp:
		d = DirUp
	case core.ActionDown:
		d = DirDown
	case core.ActionLeft:
		d = DirLeft
	case core.ActionRight:
		d = DirRight
	default:
		return
	}
	if !isOpposite(d, g.direction) {
		g.nextDir = d
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// Step advances the game by one move.
func (g *Game) Step(now time.Time) core.StepResult {
	if g.phase != PhaseRunning || g.paused {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.now = now

	// Apply buffered direction
	g.direction = g.nextDir
	head := g.nextHead()

	if g.collides(head) {
		return g.end(now, "collision")
	}

	g.snake = append([]Point{head}, g.snake...)

	var events []core.Event
	ate := false
	if g.food != nil && g.overlaps(head, g.food.Pos) {
		events = g.consume(*g.food, now, events)
		ate = true
	}
	for i := len(g.specials) - 1; i >= 0; i-- {
		if g.overlaps(head, g.specials[i].Pos) {
			f := g.specials[i]
			g.specials = append(g.specials[:i], g.specials[i+1:]...)
			events = g.consume(f, now, events)
			ate = true
		}
	}
	if !ate {
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.maybeSpawnSpecial(now)
	g.expireSpecials(now)
	g.escalate()

	return core.StepResult{State: g.State(), Events: events}
}

// nextHead returns the head position after moving in the current direction.
func (g *Game) nextHead() Point {
	dist := g.cfg.Board.GridSize
	if g.hasEffect(EffectSpeedUp) {
		dist = int(float64(dist) * g.cfg.Speed.BoostedMove)
	}

	head := g.snake[0]
	switch g.direction {
	case DirUp:
		head.Y -= dist
	case DirDown:
		head.Y += dist
	case DirLeft:
		head.X -= dist
	case DirRight:
		head.X += dist
	}
	return head
}

// collides checks bounds, then obstacles, then the snake's own body.
func (g *Game) collides(head Point) bool {
	b := g.cfg.Board
	if !core.NewRect(0, 0, b.Width, b.Height).Contains(head.X, head.Y) {
		return true
	}
	for _, o := range g.obstacles {
		if g.overlaps(head, o) {
			return true
		}
	}
	if g.hasEffect(EffectGhost) {
		return false
	}
	for _, seg := range g.snake[1:] {
		if g.overlaps(head, seg) {
			return true
		}
	}
	return false
}

// consume scores a food and applies what it grants.
func (g *Game) consume(f Food, now time.Time, events []core.Event) []core.Event {
	points := f.Points
	if g.hasEffect(EffectDoublePoints) {
		points *= 2
	}
	g.score += points

	if g.score > g.highScore {
		g.highScore = g.score
		events = append(events, core.Event{Type: core.EventHighScore, Value: g.score})
	}

	if f.Effect != EffectNone {
		g.ApplyEffect(f.Effect, f.Duration, now)
		events = append(events, core.Event{Type: core.EventEffectStarted, Detail: f.Effect.String()})
	}

	if f.Kind == FoodBasic {
		g.placeBasicFood()
	}

	g.speedUpAfterFood()

	return append(events, core.Event{Type: core.EventFoodEaten, Detail: f.Kind.String(), Value: points})
}

// TickClock counts down the timed mode clock by one second.
func (g *Game) TickClock(now time.Time) core.StepResult {
	if g.mode != ModeTimed || g.phase != PhaseRunning || g.paused {
		return core.StepResult{State: g.State()}
	}
	g.now = now

	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		return g.end(now, "time")
	}
	return core.StepResult{State: g.State()}
}

// end finishes the match.
func (g *Game) end(now time.Time, reason string) core.StepResult {
	g.phase = PhaseOver
	g.paused = false
	g.endedAt = now
	g.now = now
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Type: core.EventMatchEnded, Detail: reason, Value: g.score}},
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var elapsed time.Duration
	switch {
	case g.startedAt.IsZero():
	case g.phase == PhaseOver:
		elapsed = g.endedAt.Sub(g.startedAt)
	default:
		elapsed = g.now.Sub(g.startedAt)
	}

	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Started:   g.phase != PhaseIdle,
		GameOver:  g.phase == PhaseOver,
		Paused:    g.paused,
		Length:    len(g.snake),
		Elapsed:   elapsed,
	}
}

// Phase returns the lifecycle stage.
func (g *Game) Phase() Phase {
	return g.phase
}

// TimeLeft returns the timed mode countdown in seconds.
func (g *Game) TimeLeft() int {
	return g.timeLeft
}

// NewRecord reports whether the current score is a positive best.
func (g *Game) NewRecord() bool {
	return g.score > 0 && g.score >= g.highScore
}

// --- String representation for Direction ---

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "idle"
	}
}
