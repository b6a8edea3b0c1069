package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:    400,
			Height:   400,
			GridSize: 20,
		},
		Speed: SnakeSpeed{
			InitialMS:           150,
			MinMS:               80,
			StepMS:              2,
			ChallengeStepFactor: 1.5,
			SpeedUpFactor:       0.7,
			SlowDownFactor:      1.3,
			BoostedMove:         1.5,
		},
		Food: SnakeFood{
			Basic:           FoodSpec{Points: 10},
			Energy:          FoodSpec{Points: 25, DurationMS: 5000},
			Slow:            FoodSpec{Points: 15, DurationMS: 5000},
			Double:          FoodSpec{Points: 50, DurationMS: 15000},
			Shrink:          FoodSpec{Points: 5},
			Phantom:         FoodSpec{Points: 20, DurationMS: 8000},
			SpecialKinds:    []string{"energy", "slow", "double", "shrink"},
			SpawnEveryTicks: 50,
			ResetAfterTicks: 100,
			MaxSpecial:      2,
			LifetimeMS:      10000,
			Chance: map[string]float64{
				"classic":   0.15,
				"challenge": 0.30,
				"timed":     0.15,
			},
		},
		Obstacles: SnakeObstacles{
			Initial: map[string]int{
				"classic":   3,
				"challenge": 5,
				"timed":     3,
			},
			Max:           10,
			SafeZoneCells: 4,
			EscalateEvery: 100,
		},
		Timed: SnakeTimed{
			DurationSecs: 60,
		},
		Effects: SnakeEffects{
			PollMS: 100,
		},
		History: SnakeHistory{
			Limit: 100,
		},
		Difficulty: SnakeDifficulty{
			Preset:      DifficultyNormal,
			Level:       2,
			Progression: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
