package snake

import (
	"math"
	"time"
)

// Interval returns the effective delay between moves.
func (g *Game) Interval() time.Duration {
	s := g.cfg.Speed
	ms := g.baseMS
	switch {
	case g.hasEffect(EffectSpeedUp):
		ms = max(float64(s.MinMS), ms*s.SpeedUpFactor)
	case g.hasEffect(EffectSlowDown):
		ms *= s.SlowDownFactor
	}
	return msToDuration(ms)
}

// BaseInterval returns the interval before speed effects are applied.
func (g *Game) BaseInterval() time.Duration {
	return msToDuration(g.baseMS)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

// speedUpAfterFood lowers the base interval after eating, if the mode
// and difficulty allow it.
func (g *Game) speedUpAfterFood() {
	if !g.mode.speedsUp() || !g.cfg.Difficulty.Progression {
		return
	}
	step := g.cfg.Speed.StepMS
	if g.mode == ModeChallenge {
		step *= g.cfg.Speed.ChallengeStepFactor
	}
	g.baseMS = max(float64(g.cfg.Speed.MinMS), g.baseMS-step)
}
