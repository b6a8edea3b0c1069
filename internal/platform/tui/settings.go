package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	settingSkin = iota
	settingSound
	settingBack
	settingCount
)

// SettingsModel lets users pick a skin and toggle sound.
// Every change is written to the store immediately.
type SettingsModel struct {
	cursor    int
	width     int
	height    int
	store     *storage.Store
	logger    *log.Logger
	settings  storage.Settings
	keyMapper *KeyMapper
	lastErr   error
	back      bool
}

// NewSettingsModel creates a settings screen starting from settings.
func NewSettingsModel(store *storage.Store, logger *log.Logger, settings storage.Settings, width, height int) SettingsModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SettingsModel{
		width:     width,
		height:    height,
		store:     store,
		logger:    logger,
		settings:  settings,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.back = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < settingCount-1 {
			m.cursor++
		}
	case MenuActionSelect, MenuActionRight, MenuActionLeft:
		m.change()
	}
	return m, nil
}

// change applies the row under the cursor and saves the result.
func (m *SettingsModel) change() {
	switch m.cursor {
	case settingSkin:
		skin, err := snake.ParseSkin(m.settings.Skin)
		if err != nil {
			skin = snake.SkinDefault
		}
		m.settings.Skin = string(skin.Next())
	case settingSound:
		m.settings.SoundEnabled = !m.settings.SoundEnabled
	case settingBack:
		m.back = true
		return
	}

	m.lastErr = nil
	if m.store == nil {
		return
	}
	if err := m.store.SaveSettings(m.settings); err != nil {
		m.lastErr = err
		m.logger.Error("could not save settings", "err", err)
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	sound := "off"
	if m.settings.SoundEnabled {
		sound = "on"
	}
	rows := []string{
		fmt.Sprintf("Skin:  < %s >", m.settings.Skin),
		fmt.Sprintf("Sound: < %s >", sound),
		"Back",
	}

	for i, row := range rows {
		if i == m.cursor {
			row = menuCursorStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(centerText(row, m.width))
		b.WriteString("\n")
	}

	if m.lastErr != nil {
		b.WriteString("\n")
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
		b.WriteString(centerText(errStyle.Render("Settings could not be saved"), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter/Left/Right: Change  |  Esc: Back"), m.width))

	return b.String()
}

// Settings returns the current settings.
func (m SettingsModel) Settings() storage.Settings {
	return m.settings
}

// WantsBack returns true if user pressed back.
func (m SettingsModel) WantsBack() bool {
	return m.back
}
