package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score for the current mode, including this match
	Started   bool // Whether the match has left the idle phase
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused

	Length  int           // Player length, where the game has one
	Elapsed time.Duration // Running time since the match started
}

// EventType identifies something noteworthy that happened during a tick.
type EventType int

const (
	EventFoodEaten EventType = iota
	EventHighScore
	EventEffectStarted
	EventEffectEnded
	EventMatchEnded
)

// Event is emitted by a game so the platform can react (persist, log, play sounds).
type Event struct {
	Type   EventType
	Detail string
	Value  int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
