package storage

import (
	"fmt"
	"strconv"
	"strings"
)

// Store keys.
const (
	KeySkin         = "snakeSkin"
	KeySoundEnabled = "snakeSoundEnabled"
	KeyGameHistory  = "snakeGameHistory"
)

// Settings are the player's persisted preferences.
type Settings struct {
	Skin         string
	SoundEnabled bool
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{Skin: "default", SoundEnabled: true}
}

// HighScoreKey returns the store key for a mode's high score,
// e.g. "snakeClassicHighScore".
func HighScoreKey(mode string) string {
	if mode == "" {
		return "snakeHighScore"
	}
	return "snake" + strings.ToUpper(mode[:1]) + mode[1:] + "HighScore"
}

// HighScore returns the persisted high score for mode, or 0 if none.
func (s *Store) HighScore(mode string) (int, error) {
	value, ok, err := s.Get(HighScoreKey(mode))
	if err != nil || !ok {
		return 0, err
	}
	score, err := strconv.Atoi(value)
	if err != nil {
		s.logger.Error("corrupt high score", "mode", mode, "value", value)
		return 0, nil
	}
	return score, nil
}

// RecordHighScore stores score if it beats the current high score for mode.
// It reports whether a new record was written.
func (s *Store) RecordHighScore(mode string, score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.HighScore(mode)
	if err != nil {
		return false, err
	}
	if score <= current {
		return false, nil
	}
	if err := s.Set(HighScoreKey(mode), strconv.Itoa(score)); err != nil {
		return false, err
	}
	return true, nil
}

// LoadSettings returns the stored settings, filling gaps with defaults.
func (s *Store) LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	skin, ok, err := s.Get(KeySkin)
	if err != nil {
		return settings, err
	}
	if ok && skin != "" {
		settings.Skin = skin
	}

	sound, ok, err := s.Get(KeySoundEnabled)
	if err != nil {
		return settings, err
	}
	if ok {
		enabled, perr := strconv.ParseBool(sound)
		if perr != nil {
			s.logger.Warn("corrupt sound setting", "value", sound)
		} else {
			settings.SoundEnabled = enabled
		}
	}

	return settings, nil
}

// SaveSettings persists both settings.
func (s *Store) SaveSettings(settings Settings) error {
	if err := s.Set(KeySkin, settings.Skin); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	if err := s.Set(KeySoundEnabled, strconv.FormatBool(settings.SoundEnabled)); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}
