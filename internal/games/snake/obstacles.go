package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// maxPlacementAttempts bounds random sampling before falling back to a
// full scan of free cells.
const maxPlacementAttempts = 200

// overlaps reports whether two points fall within one grid cell of each other.
func (g *Game) overlaps(a, b Point) bool {
	grid := g.cfg.Board.GridSize
	return core.Abs(a.X-b.X) < grid && core.Abs(a.Y-b.Y) < grid
}

// occupied reports whether p overlaps the snake, an obstacle or any food.
func (g *Game) occupied(p Point) bool {
	for _, seg := range g.snake {
		if g.overlaps(seg, p) {
			return true
		}
	}
	for _, o := range g.obstacles {
		if g.overlaps(o, p) {
			return true
		}
	}
	if g.food != nil && g.overlaps(g.food.Pos, p) {
		return true
	}
	for _, f := range g.specials {
		if g.overlaps(f.Pos, p) {
			return true
		}
	}
	return false
}

// freeCell picks a random grid-aligned cell that is not occupied and not
// rejected by extra. ok is false when no such cell exists.
func (g *Game) freeCell(extra func(Point) bool) (Point, bool) {
	cols, rows := g.cfg.Board.Cols(), g.cfg.Board.Rows()
	grid := g.cfg.Board.GridSize
	blocked := func(p Point) bool {
		return g.occupied(p) || (extra != nil && extra(p))
	}

	for range maxPlacementAttempts {
		p := Point{X: g.rng.Intn(cols) * grid, Y: g.rng.Intn(rows) * grid}
		if !blocked(p) {
			return p, true
		}
	}

	// Crowded board: collect all free cells
	var free []Point
	for y := range rows {
		for x := range cols {
			p := Point{X: x * grid, Y: y * grid}
			if !blocked(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[g.rng.Intn(len(free))], true
}

// inSafeZone reports whether p is too close to the head for an obstacle.
func (g *Game) inSafeZone(p Point) bool {
	if len(g.snake) == 0 {
		return false
	}
	zone := g.cfg.Obstacles.SafeZoneCells * g.cfg.Board.GridSize
	head := g.snake[0]
	return core.Abs(p.X-head.X) < zone && core.Abs(p.Y-head.Y) < zone
}

// addObstacle places one obstacle. It reports false if no cell was free.
func (g *Game) addObstacle() bool {
	p, ok := g.freeCell(g.inSafeZone)
	if !ok {
		return false
	}
	g.obstacles = append(g.obstacles, p)
	return true
}

// placeObstacles fills the board with the mode's starting obstacles.
func (g *Game) placeObstacles() {
	g.obstacles = g.obstacles[:0]
	for range g.cfg.Obstacles.Initial[string(g.mode)] {
		if !g.addObstacle() {
			return
		}
	}
}

// escalate adds one obstacle per score threshold crossed in challenge mode.
func (g *Game) escalate() {
	every := g.cfg.Obstacles.EscalateEvery
	if g.mode != ModeChallenge || every <= 0 {
		return
	}
	for crossed := g.score / every; g.thresholds < crossed; g.thresholds++ {
		if len(g.obstacles) < g.cfg.Obstacles.Max {
			g.addObstacle()
		}
	}
}
