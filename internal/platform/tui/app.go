package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenSettings
	screenHistory
	screenGame
)

// AppModel manages the full session flow: menu -> game/settings/history -> menu.
// It is the top-level model for local play and for SSH sessions.
type AppModel struct {
	env      Env
	config   core.RuntimeConfig
	settings storage.Settings
	screen   appScreen
	menu     MenuModel
	options  SettingsModel
	history  HistoryModel
	game     *GameModel
	lastGen  int // Highest timer generation used by this session
	quitting bool
}

// NewAppModel creates a session that starts at the main menu.
func NewAppModel(env Env, cfg core.RuntimeConfig) AppModel {
	settings := storage.DefaultSettings()
	if env.Store != nil {
		loaded, err := env.Store.LoadSettings()
		if err != nil {
			env.logger().Error("could not load settings", "err", err)
		} else {
			settings = loaded
		}
	}

	return AppModel{
		env:      env,
		config:   cfg,
		settings: settings,
		menu:     NewMenuModel(env.Store, cfg),
	}
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuChoiceSettings:
		m.options = NewSettingsModel(m.env.Store, m.env.Logger, m.settings, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenSettings
		return m, m.options.Init()

	case MenuChoiceHistory:
		m.history = NewHistoryModel(m.env.Store, m.env.Logger, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()

	case MenuChoicePlay:
		selected := m.menu.Selected()
		game, err := registry.Create(selected.GameID, m.env.Config)
		if err != nil {
			// Shouldn't happen since menu only shows registered modes
			m.env.logger().Error("could not create game", "mode", selected.GameID, "err", err)
			m.menu = NewMenuModel(m.env.Store, m.config)
			return m, nil
		}

		gameModel := NewGameModel(game, m.env, m.settings, m.config)
		// Continue the session's generations so timers of an abandoned
		// match never match the new one.
		gameModel.generation = m.lastGen
		m.game = &gameModel
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Check if user quit game (back to menu)
	if m.game.BackToMenu() {
		m.lastGen = m.game.generation
		m.game = nil
		return m.toMenu()
	}

	// Check if user quit entirely
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m AppModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.options.Update(msg)
	if settingsModel, ok := newModel.(SettingsModel); ok {
		m.options = settingsModel
	}
	m.settings = m.options.Settings()

	if m.options.WantsBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// toMenu rebuilds the menu so best scores are current.
func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.env.Store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenSettings:
		return m.options.View()
	case screenHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven session in the local terminal.
func RunApp(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewAppModel(env, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
