package state

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/viewmodel"
)

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPane):
		m.switchPane(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevPane):
		m.switchPane(-1)
		return m, nil
	}

	if m.pane == PaneMods {
		return m.handleModsKey(msg)
	}
	return m.handlePickerKey(msg)
}

func (m *Model) switchPane(delta int) {
	m.pane = Pane((int(m.pane) + delta + int(paneCount)) % int(paneCount))
	if m.pane == PaneMods {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// handleModsKey routes keys in the mods pane. Keys without a binding edit
// the search text.
func (m *Model) handleModsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextMatch):
		m.deps.Search.MoveToNext()
		return m, nil
	case key.Matches(msg, m.keys.PrevMatch):
		m.deps.Search.MoveToPrevious()
		return m, nil
	case key.Matches(msg, m.keys.ClearSearch):
		m.deps.Search.ClearText()
		m.input.SetValue("")
		return m, nil
	case key.Matches(msg, m.keys.ToggleEnable):
		return m, m.toggleSelectedMod()
	case msg.Type == tea.KeyUp:
		m.modCursor = clamp(m.modCursor-1, len(m.mods))
		return m, nil
	case msg.Type == tea.KeyDown:
		m.modCursor = clamp(m.modCursor+1, len(m.mods))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.deps.Search.SetText(m.input.Value())
	return m, cmd
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := &m.langCursor
	n := len(m.deps.Languages.Options())
	if m.pane == PaneThemes {
		cursor = &m.themeCursor
		n = len(m.deps.Themes.Options())
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		*cursor = clamp(*cursor-1, n)
	case key.Matches(msg, m.keys.Down):
		*cursor = clamp(*cursor+1, n)
	case key.Matches(msg, m.keys.Select):
		if m.pane == PaneThemes {
			selectAt(m, m.deps.Themes, m.themeCursor)
		} else {
			selectAt(m, m.deps.Languages, m.langCursor)
		}
		return m, m.statusTick()
	}
	return m, nil
}

// selectAt selects the option under cursor. Rejections and failures become
// an error status; accepted changes report through the bus handlers.
func selectAt[T viewmodel.Selectable](m *Model, c *viewmodel.SelectionControl[T], cursor int) {
	options := c.Options()
	if cursor < 0 || cursor >= len(options) {
		return
	}
	option := options[cursor]
	if err := c.Select(option); err != nil {
		m.logger.Warn("selection failed", "control", c.Name(), "id", option.ID(), "error", err)
		m.status.Error(m.deps.Texts.Textf(localization.KeyStatusRejected, fmt.Sprint(option)))
	}
}

func (m *Model) toggleSelectedMod() tea.Cmd {
	if m.modCursor >= len(m.mods) {
		return nil
	}
	mod := m.mods[m.modCursor]
	if err := m.deps.Mods.SetEnabled(context.Background(), mod.ID, !mod.Enabled); err != nil {
		m.logger.Error("toggle mod failed", "id", mod.ID, "error", err)
		m.status.Error(err.Error())
		return m.statusTick()
	}
	m.mods[m.modCursor].Enabled = !mod.Enabled
	return nil
}
