package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusExpiredMsg is sent when a status message has been shown for its
// full TTL.
type statusExpiredMsg struct{}

// statusTick schedules a redraw once the current status message expires.
func (m *Model) statusTick() tea.Cmd {
	ttl := m.deps.StatusTTL
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg { return statusExpiredMsg{} })
}
