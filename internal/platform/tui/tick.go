// Package tui provides the Bubble Tea front end for t2048.
// It handles the terminal UI loop, key bindings, score saving and replays.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg asks the model to drop status line id.
// Newer status lines carry a higher id and are not cleared by stale ticks.
type clearStatusMsg struct {
	id int
}

// clearStatusCmd returns a command that clears status id after statusTimeout.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
