// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// SnakeConfig contains all tunables for the Snake game.
type SnakeConfig struct {
	Board      SnakeBoard      `yaml:"board"`
	Speed      SnakeSpeed      `yaml:"speed"`
	Food       SnakeFood       `yaml:"food"`
	Obstacles  SnakeObstacles  `yaml:"obstacles"`
	Timed      SnakeTimed      `yaml:"timed"`
	Effects    SnakeEffects    `yaml:"effects"`
	History    SnakeHistory    `yaml:"history"`
	Difficulty SnakeDifficulty `yaml:"difficulty"`
}

// SnakeBoard defines the playfield, measured in board units.
type SnakeBoard struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	GridSize int `yaml:"grid_size"` // Units per grid cell
}

// Cols returns the number of grid columns.
func (b SnakeBoard) Cols() int { return b.Width / b.GridSize }

// Rows returns the number of grid rows.
func (b SnakeBoard) Rows() int { return b.Height / b.GridSize }

// SnakeSpeed defines the tick interval model.
type SnakeSpeed struct {
	InitialMS           int     `yaml:"initial_ms"`            // Starting tick interval
	MinMS               int     `yaml:"min_ms"`                // Fastest allowed interval
	StepMS              float64 `yaml:"step_ms"`               // Interval decrease per food
	ChallengeStepFactor float64 `yaml:"challenge_step_factor"` // Step multiplier in challenge mode
	SpeedUpFactor       float64 `yaml:"speed_up_factor"`       // Interval multiplier under speed-up
	SlowDownFactor      float64 `yaml:"slow_down_factor"`      // Interval multiplier under slow-down
	BoostedMove         float64 `yaml:"boosted_move"`          // Cells moved per tick under speed-up
}

// FoodSpec defines the reward of one food kind.
type FoodSpec struct {
	Points     int `yaml:"points"`
	DurationMS int `yaml:"duration_ms"` // Effect duration, 0 for none or one-shot
}

// SnakeFood defines food rewards and special food spawning.
type SnakeFood struct {
	Basic   FoodSpec `yaml:"basic"`
	Energy  FoodSpec `yaml:"energy"`
	Slow    FoodSpec `yaml:"slow"`
	Double  FoodSpec `yaml:"double"`
	Shrink  FoodSpec `yaml:"shrink"`
	Phantom FoodSpec `yaml:"phantom"`

	SpecialKinds    []string           `yaml:"special_kinds"`     // Kinds that may spawn
	SpawnEveryTicks int                `yaml:"spawn_every_ticks"` // Ticks before a spawn roll
	ResetAfterTicks int                `yaml:"reset_after_ticks"` // Timer reset after failed rolls
	MaxSpecial      int                `yaml:"max_special"`       // Max special foods on board
	LifetimeMS      int                `yaml:"lifetime_ms"`       // Special food lifetime
	Chance          map[string]float64 `yaml:"chance"`            // Spawn probability per mode
}

// SnakeObstacles defines obstacle placement and escalation.
type SnakeObstacles struct {
	Initial       map[string]int `yaml:"initial"`         // Obstacles at round start per mode
	Max           int            `yaml:"max"`             // Cap for challenge escalation
	SafeZoneCells int            `yaml:"safe_zone_cells"` // No obstacles this close to the head
	EscalateEvery int            `yaml:"escalate_every"`  // Score points per extra obstacle
}

// SnakeTimed defines the countdown mode.
type SnakeTimed struct {
	DurationSecs int `yaml:"duration_secs"`
}

// SnakeEffects defines effect expiry polling.
type SnakeEffects struct {
	PollMS int `yaml:"poll_ms"`
}

// SnakeHistory defines match history retention.
type SnakeHistory struct {
	Limit int `yaml:"limit"`
}

// SnakeDifficulty is the result of applying a difficulty preset.
type SnakeDifficulty struct {
	Preset      DifficultyPreset `yaml:"preset"`
	Level       int              `yaml:"level"`       // Recorded in match history
	Progression bool             `yaml:"progression"` // Whether food speeds up the snake
}

// KnownSpecialKinds lists the special food kinds understood by the game.
var KnownSpecialKinds = []string{"energy", "slow", "double", "shrink", "phantom"}

// Validate checks the config for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	b := c.Board
	if b.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("board.grid_size must be positive, got %d", b.GridSize))
	} else {
		if b.Width%b.GridSize != 0 || b.Height%b.GridSize != 0 {
			errs = append(errs, fmt.Errorf("board %dx%d is not a multiple of grid size %d", b.Width, b.Height, b.GridSize))
		}
		if b.Cols() < 10 || b.Rows() < 10 {
			errs = append(errs, fmt.Errorf("board must be at least 10x10 cells, got %dx%d", b.Cols(), b.Rows()))
		}
	}

	if c.Speed.MinMS <= 0 {
		errs = append(errs, fmt.Errorf("speed.min_ms must be positive, got %d", c.Speed.MinMS))
	}
	if c.Speed.InitialMS < c.Speed.MinMS {
		errs = append(errs, fmt.Errorf("speed.initial_ms (%d) must not be below speed.min_ms (%d)", c.Speed.InitialMS, c.Speed.MinMS))
	}
	if c.Speed.StepMS < 0 || c.Speed.ChallengeStepFactor < 0 {
		errs = append(errs, fmt.Errorf("speed.step_ms (%g) and speed.challenge_step_factor (%g) must not be negative", c.Speed.StepMS, c.Speed.ChallengeStepFactor))
	}
	factors := []struct {
		name  string
		value float64
	}{
		{"speed.speed_up_factor", c.Speed.SpeedUpFactor},
		{"speed.slow_down_factor", c.Speed.SlowDownFactor},
		{"speed.boosted_move", c.Speed.BoostedMove},
	}
	for _, f := range factors {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", f.name, f.value))
		}
	}
	for _, mode := range slices.Sorted(maps.Keys(c.Food.Chance)) {
		if p := c.Food.Chance[mode]; p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("food.chance.%s must be between 0 and 1, got %g", mode, p))
		}
	}
	if c.Food.LifetimeMS <= 0 {
		errs = append(errs, fmt.Errorf("food.lifetime_ms must be positive, got %d", c.Food.LifetimeMS))
	}
	for _, kind := range c.Food.SpecialKinds {
		if !isKnownKind(kind) {
			errs = append(errs, fmt.Errorf("food.special_kinds: unknown kind %q", kind))
		}
	}
	if c.Effects.PollMS <= 0 {
		errs = append(errs, fmt.Errorf("effects.poll_ms must be positive, got %d", c.Effects.PollMS))
	}
	if c.Timed.DurationSecs <= 0 {
		errs = append(errs, fmt.Errorf("timed.duration_secs must be positive, got %d", c.Timed.DurationSecs))
	}
	if c.History.Limit <= 0 {
		errs = append(errs, fmt.Errorf("history.limit must be positive, got %d", c.History.Limit))
	}

	return errors.Join(errs...)
}

func isKnownKind(kind string) bool {
	for _, k := range KnownSpecialKinds {
		if k == kind {
			return true
		}
	}
	return false
}
