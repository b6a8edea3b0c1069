package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// LevelForPreset returns the numeric difficulty recorded in match history.
func LevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Speeds are scaled relative to whatever the loaded config declares.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Difficulty.Level = LevelForPreset(preset)
	cfg.Difficulty.Progression = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMS = cfg.Speed.InitialMS * 6 / 5
		cfg.Speed.MinMS = cfg.Speed.MinMS * 5 / 4
	case DifficultyHard:
		cfg.Speed.InitialMS = cfg.Speed.InitialMS * 4 / 5
		cfg.Speed.MinMS = cfg.Speed.MinMS * 3 / 4
	}
	if cfg.Speed.InitialMS < cfg.Speed.MinMS {
		cfg.Speed.InitialMS = cfg.Speed.MinMS
	}
}
