package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Env holds what every screen of a session shares.
type Env struct {
	Store  *storage.Store // Nil runs without persistence
	Logger *log.Logger
	Config config.SnakeConfig
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// GameModel runs one mode with its timers, persistence and back-to-menu capability.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	settings   storage.Settings
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gameState  core.GameState
	generation int  // Bumped whenever timers must be re-armed or abandoned
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The game is reset here so the first
// frame can be drawn before any key is pressed.
func NewGameModel(game registry.Game, env Env, settings storage.Settings, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:       env,
		settings:  settings,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	game.Reset(cfg)
	if skinned, ok := game.(interface{ SetSkin(snake.Skin) }); ok {
		if skin, err := snake.ParseSkin(settings.Skin); err == nil {
			skinned.SetSkin(skin)
		}
	}
	if env.Store != nil {
		best, err := env.Store.HighScore(game.ID())
		if err != nil {
			env.logger().Error("could not load high score", "mode", game.ID(), "err", err)
		}
		game.SetHighScore(best)
	}
	m.gameState = game.State()
	return m
}

// Init waits for the first key; timers start with the match.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case stepMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		res := m.game.Step(msg.at)
		m.applyResult(res, msg.at)
		if res.State.GameOver {
			return m, nil
		}
		return m, stepCmd(m.generation, m.game.Interval())

	case clockMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		res := m.game.TickClock(msg.at)
		m.applyResult(res, msg.at)
		if res.State.GameOver {
			return m, nil
		}
		return m, clockCmd(m.generation)

	case effectMsg:
		if msg.gen != m.generation {
			return m, nil
		}
		res := m.game.PollEffects(msg.at)
		m.applyResult(res, msg.at)
		if res.State.GameOver {
			return m, nil
		}
		return m, effectCmd(m.generation, m.pollInterval())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.env.logger().Warn("screenshot failed", "err", err)
		} else {
			m.env.logger().Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.generation++
		return m, tea.Quit
	}

	// Back to menu (B or Esc before the start, when game over or paused)
	if action == core.ActionBack && (!m.gameState.Started || m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		m.generation++
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	before := m.gameState
	now := time.Now()
	res := m.game.HandleAction(action, now)
	m.applyResult(res, now)

	started := !before.Started && res.State.Started
	restarted := before.GameOver && !res.State.GameOver
	if started || restarted {
		m.env.logger().Debug("match started", "mode", m.game.ID())
		return m, m.armTimers()
	}
	return m, nil
}

// armTimers starts a fresh generation of the three match timers.
func (m *GameModel) armTimers() tea.Cmd {
	m.generation++
	cmds := []tea.Cmd{
		stepCmd(m.generation, m.game.Interval()),
		effectCmd(m.generation, m.pollInterval()),
	}
	if m.game.ID() == string(snake.ModeTimed) {
		cmds = append(cmds, clockCmd(m.generation))
	}
	return tea.Batch(cmds...)
}

func (m GameModel) pollInterval() time.Duration {
	return time.Duration(m.env.Config.Effects.PollMS) * time.Millisecond
}

// applyResult records the new state and reacts to events.
func (m *GameModel) applyResult(res core.StepResult, now time.Time) {
	m.gameState = res.State
	for _, ev := range res.Events {
		switch ev.Type {
		case core.EventFoodEaten:
			m.playSound("eat")
		case core.EventHighScore:
			m.recordHighScore(ev.Value)
		case core.EventEffectStarted:
			m.env.logger().Debug("effect started", "mode", m.game.ID(), "effect", ev.Detail)
			m.playSound("powerup")
		case core.EventEffectEnded:
			m.env.logger().Debug("effect ended", "mode", m.game.ID(), "effect", ev.Detail)
		case core.EventMatchEnded:
			m.env.logger().Info("match ended",
				"mode", m.game.ID(),
				"reason", ev.Detail,
				"score", res.State.Score,
				"length", res.State.Length,
				"duration", res.State.Elapsed.Round(time.Second),
			)
			m.saveHistory(res.State, now)
			m.playSound("gameover")
		}
	}
}

// recordHighScore persists a new best. Failures are logged and play continues.
func (m *GameModel) recordHighScore(score int) {
	if m.env.Store == nil {
		return
	}
	if _, err := m.env.Store.RecordHighScore(m.game.ID(), score); err != nil {
		m.env.logger().Error("could not save high score", "mode", m.game.ID(), "score", score, "err", err)
	}
}

// saveHistory appends the finished match to the history.
func (m *GameModel) saveHistory(state core.GameState, now time.Time) {
	if m.env.Store == nil {
		return
	}
	rec := storage.NewHistoryRecord(
		m.game.ID(),
		state.Score,
		state.Length,
		int(state.Elapsed/time.Second),
		m.env.Config.Difficulty.Level,
		now,
	)
	if err := m.env.Store.AppendHistory(rec); err != nil {
		m.env.logger().Error("could not save history", "mode", m.game.ID(), "err", err)
	}
}

// playSound is the sound hook. Audio output is not implemented; enabled
// sounds are logged.
func (m *GameModel) playSound(name string) {
	if !m.settings.SoundEnabled {
		return
	}
	m.env.logger().Debug("sound", "name", name)
}

// handleResize processes window resize events. The match keeps running.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	if r, ok := m.game.(interface{ Resize(w, h int) }); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() (string, error) {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single mode.
func Run(game registry.Game, env Env, settings storage.Settings, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, env, settings, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
