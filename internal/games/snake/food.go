package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodKind identifies a type of food.
type FoodKind int

const (
	FoodBasic FoodKind = iota
	FoodEnergy
	FoodSlow
	FoodDouble
	FoodShrink
	FoodPhantom
)

var foodNames = map[FoodKind]string{
	FoodBasic:   "basic",
	FoodEnergy:  "energy",
	FoodSlow:    "slow",
	FoodDouble:  "double",
	FoodShrink:  "shrink",
	FoodPhantom: "phantom",
}

func (k FoodKind) String() string {
	if name, ok := foodNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseFoodKind converts a config name into a FoodKind.
func ParseFoodKind(s string) (FoodKind, bool) {
	for k, name := range foodNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Effect returns the effect granted by eating this kind.
func (k FoodKind) Effect() EffectKind {
	switch k {
	case FoodEnergy:
		return EffectSpeedUp
	case FoodSlow:
		return EffectSlowDown
	case FoodDouble:
		return EffectDoublePoints
	case FoodShrink:
		return EffectShrink
	case FoodPhantom:
		return EffectGhost
	default:
		return EffectNone
	}
}

// Color returns the display color of this kind.
func (k FoodKind) Color() core.Color {
	switch k {
	case FoodEnergy:
		return core.ColorYellow
	case FoodSlow:
		return core.ColorBlue
	case FoodDouble:
		return core.ColorPurple
	case FoodShrink:
		return core.ColorGreen
	case FoodPhantom:
		return core.ColorCyan
	default:
		return core.ColorOrange
	}
}

// Food is a piece of food on the board.
type Food struct {
	Kind      FoodKind
	Pos       Point
	Points    int
	Effect    EffectKind
	Duration  time.Duration
	SpawnedAt time.Time // Zero for basic food
}

// Special reports whether the food expires.
func (f Food) Special() bool {
	return f.Kind != FoodBasic
}

func foodSpec(cfg config.SnakeFood, kind FoodKind) config.FoodSpec {
	switch kind {
	case FoodEnergy:
		return cfg.Energy
	case FoodSlow:
		return cfg.Slow
	case FoodDouble:
		return cfg.Double
	case FoodShrink:
		return cfg.Shrink
	case FoodPhantom:
		return cfg.Phantom
	default:
		return cfg.Basic
	}
}

func (g *Game) newFood(kind FoodKind, pos Point, now time.Time) Food {
	spec := foodSpec(g.cfg.Food, kind)
	f := Food{
		Kind:     kind,
		Pos:      pos,
		Points:   spec.Points,
		Effect:   kind.Effect(),
		Duration: time.Duration(spec.DurationMS) * time.Millisecond,
	}
	if kind != FoodBasic {
		f.SpawnedAt = now
	}
	return f
}

// placeBasicFood replaces the basic food. If the board is full the
// basic food is removed.
func (g *Game) placeBasicFood() {
	g.food = nil
	pos, ok := g.freeCell(nil)
	if !ok {
		return
	}
	f := g.newFood(FoodBasic, pos, time.Time{})
	g.food = &f
}

// maybeSpawnSpecial runs the special food timer for one tick.
func (g *Game) maybeSpawnSpecial(now time.Time) {
	fc := g.cfg.Food
	g.specialTimer++
	if g.specialTimer < fc.SpawnEveryTicks || len(g.specials) >= fc.MaxSpecial {
		return
	}

	if len(g.specialKinds) > 0 && g.rng.Float64() < fc.Chance[string(g.mode)] {
		kind := g.specialKinds[g.rng.Intn(len(g.specialKinds))]
		if pos, ok := g.freeCell(nil); ok {
			g.specials = append(g.specials, g.newFood(kind, pos, now))
		}
		g.specialTimer = 0
	} else if g.specialTimer > fc.ResetAfterTicks {
		g.specialTimer = 0
	}
}

// expireSpecials drops special food older than its lifetime.
func (g *Game) expireSpecials(now time.Time) {
	lifetime := time.Duration(g.cfg.Food.LifetimeMS) * time.Millisecond
	kept := g.specials[:0]
	for _, f := range g.specials {
		if now.Sub(f.SpawnedAt) <= lifetime {
			kept = append(kept, f)
		}
	}
	g.specials = kept
}

// enabledSpecialKinds resolves the configured special kinds, skipping
// unknown names.
func enabledSpecialKinds(names []string) []FoodKind {
	kinds := make([]FoodKind, 0, len(names))
	for _, name := range names {
		if k, ok := ParseFoodKind(name); ok && k != FoodBasic {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
