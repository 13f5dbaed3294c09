// Package tui runs a registered game in the terminal with Bubble Tea.
// It owns frame pacing, key mapping and styled output; the game owns the
// simulation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg marks the start of a platform frame.
type TickMsg time.Time

// tickCmd schedules the next frame after one frame duration.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
