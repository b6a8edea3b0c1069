package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Phase       Phase
	Paused      bool
	Score       int
	SnakeLen    int
	HeadX       int
	HeadY       int
	Dir         Direction
	FoodX       int
	FoodY       int
	Specials    int
	Obstacles   int
	IntervalMS  int64
	TimeLeft    int
	ActiveCount int // Running effects
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}
	foodX, foodY := -1, -1
	if g.food != nil {
		foodX = g.food.Pos.X
		foodY = g.food.Pos.Y
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Phase:       g.phase,
		Paused:      g.paused,
		Score:       g.score,
		SnakeLen:    len(g.snake),
		HeadX:       headX,
		HeadY:       headY,
		Dir:         g.direction,
		FoodX:       foodX,
		FoodY:       foodY,
		Specials:    len(g.specials),
		Obstacles:   len(g.obstacles),
		IntervalMS:  g.Interval().Milliseconds(),
		TimeLeft:    g.timeLeft,
		ActiveCount: len(g.effects),
	}
}
