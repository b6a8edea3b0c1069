// Package registry provides a global registry for game mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timer scheduling, persistence and rendering.
// Every method that depends on time takes the current instant explicitly.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "classic", "timed").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Challenge").
	Title() string

	// Reset puts the game back into the idle phase with a fresh board.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// HandleAction applies a player action. Idle games start on any action.
	HandleAction(a core.Action, now time.Time) core.StepResult

	// Step advances the simulation by one move.
	Step(now time.Time) core.StepResult

	// PollEffects expires timed effects.
	PollEffects(now time.Time) core.StepResult

	// TickClock advances the once-per-second countdown, if the mode has one.
	TickClock(now time.Time) core.StepResult

	// Interval returns the delay until the next Step.
	Interval() time.Duration

	// SetHighScore seeds the best score known to the platform.
	SetHighScore(score int)

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a mode from the loaded configuration.
type Factory func(cfg config.SnakeConfig) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	descs     = make(map[string]string)
	order     = make(map[string]int)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a game's init() function.
// Modes are listed in registration order.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f
	order[id] = len(order)

	// Get title by creating a temporary instance
	g := f(config.DefaultSnakeConfig())
	titles[id] = g.Title()
	if d, ok := g.(interface{ Description() string }); ok {
		descs[id] = d.Description()
	}
}

// List returns information about all registered modes in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:          id,
			Title:       titles[id],
			Description: descs[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return order[result[i].ID] < order[result[j].ID]
	})

	return result
}

// Create instantiates a mode by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.SnakeConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// IDs returns the registered mode IDs in registration order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}
