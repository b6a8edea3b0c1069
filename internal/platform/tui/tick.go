// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, timers and persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timer messages carry the generation they were armed for. A message from an
// older generation belongs to a finished or abandoned match and is dropped.

// stepMsg triggers one simulation move.
type stepMsg struct {
	gen int
	at  time.Time
}

// clockMsg triggers the once-per-second countdown.
type clockMsg struct {
	gen int
	at  time.Time
}

// effectMsg triggers effect expiry polling.
type effectMsg struct {
	gen int
	at  time.Time
}

// stepCmd schedules the next move after d.
func stepCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return stepMsg{gen: gen, at: t}
	})
}

// clockCmd schedules the next countdown second.
func clockCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg{gen: gen, at: t}
	})
}

// effectCmd schedules the next effect poll after d.
func effectCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return effectMsg{gen: gen, at: t}
	})
}
