package snake

import (
	"math"
	"sort"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// EffectKind identifies a timed power-up.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSpeedUp
	EffectSlowDown
	EffectDoublePoints
	EffectShrink
	EffectGhost
)

func (e EffectKind) String() string {
	switch e {
	case EffectSpeedUp:
		return "speedup"
	case EffectSlowDown:
		return "slowdown"
	case EffectDoublePoints:
		return "doublepoints"
	case EffectShrink:
		return "shrink"
	case EffectGhost:
		return "ghost"
	default:
		return "none"
	}
}

// Label returns the HUD name of the effect.
func (e EffectKind) Label() string {
	switch e {
	case EffectSpeedUp:
		return "Speed up"
	case EffectSlowDown:
		return "Slow down"
	case EffectDoublePoints:
		return "Double points"
	case EffectShrink:
		return "Shrink"
	case EffectGhost:
		return "Ghost"
	default:
		return ""
	}
}

// ActiveEffect is an effect with its remaining whole seconds, rounded up.
type ActiveEffect struct {
	Kind      EffectKind
	Remaining int
}

// ApplyEffect starts an effect that lasts d from now. Applying an effect
// that is already running extends it. Speed-up and slow-down replace each
// other. Shrink acts immediately and is not tracked.
func (g *Game) ApplyEffect(kind EffectKind, d time.Duration, now time.Time) {
	switch kind {
	case EffectNone:
		return
	case EffectShrink:
		if len(g.snake) > minSnakeLen {
			g.snake = g.snake[:minSnakeLen]
		}
		return
	case EffectSpeedUp:
		delete(g.effects, EffectSlowDown)
	case EffectSlowDown:
		delete(g.effects, EffectSpeedUp)
	}
	g.effects[kind] = now.Add(d)
}

// PollEffects removes effects whose expiry has passed.
func (g *Game) PollEffects(now time.Time) core.StepResult {
	if g.phase != PhaseRunning || g.paused {
		return core.StepResult{State: g.State()}
	}
	g.now = now

	var events []core.Event
	for _, kind := range g.effectKinds() {
		if now.After(g.effects[kind]) {
			delete(g.effects, kind)
			events = append(events, core.Event{Type: core.EventEffectEnded, Detail: kind.String()})
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// ActiveEffects lists running effects for the HUD.
func (g *Game) ActiveEffects(now time.Time) []ActiveEffect {
	kinds := g.effectKinds()
	out := make([]ActiveEffect, 0, len(kinds))
	for _, kind := range kinds {
		left := g.effects[kind].Sub(now).Seconds()
		out = append(out, ActiveEffect{
			Kind:      kind,
			Remaining: max(0, int(math.Ceil(left))),
		})
	}
	return out
}

// hasEffect reports whether kind is running. Expiry is handled by PollEffects.
func (g *Game) hasEffect(kind EffectKind) bool {
	_, ok := g.effects[kind]
	return ok
}

// effectKinds returns the running kinds in a stable order.
func (g *Game) effectKinds() []EffectKind {
	kinds := make([]EffectKind, 0, len(g.effects))
	for k := range g.effects {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
