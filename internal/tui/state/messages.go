// Package state holds the bubbletea model for the interactive directory browser.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusExpiredMsg asks for a redraw once a status message has aged out.
type statusExpiredMsg struct{}

func statusExpiredAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}
