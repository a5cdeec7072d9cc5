package state

import (
	"fmt"
	"strings"

	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/tui/render"
	"github.com/modkeeper/modkeeper/internal/viewmodel"
)

// View renders the TUI.
func (m *Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(render.Title(s, m.captions[labelTitle]))
	b.WriteString("  ")
	b.WriteString(render.Tabs(s, []string{
		m.captions[labelMods],
		m.captions[viewmodel.LabelLanguages],
		m.captions[viewmodel.LabelThemes],
	}, int(m.pane)))
	b.WriteString("\n\n")

	switch m.pane {
	case PaneLanguages:
		renderOptions(&b, s, m.deps.Languages, m.langCursor)
	case PaneThemes:
		renderOptions(&b, s, m.deps.Themes, m.themeCursor)
	default:
		m.renderMods(&b)
	}

	b.WriteString("\n\n")
	footer := render.FooterState{
		Help:    m.help.View(m.keys),
		Matches: m.matchesText(),
		Width:   m.width,
	}
	if msg, ok := m.status.Current(); ok {
		footer.Status = msg.Text
		footer.Type = msg.Type
	}
	b.WriteString(render.Footer(s, footer))
	return b.String()
}

func (m *Model) renderMods(b *strings.Builder) {
	s := m.styles
	b.WriteString(s.Input.Render(m.input.View()))
	b.WriteString("\n")

	if len(m.mods) == 0 {
		b.WriteString(render.Empty(s, m.deps.Texts.Text(localization.KeyModsEmpty)))
		return
	}

	matched := make(map[int]bool, len(m.matches))
	for _, i := range m.matches {
		matched[i] = true
	}
	enabled := m.deps.Texts.Text(localization.KeyModsEnabled)
	disabled := m.deps.Texts.Text(localization.KeyModsDisabled)

	start, end := visibleRange(m.modCursor, len(m.mods), m.height-chromeLines)
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(render.ModRow(s, render.RowState{
			Mod:      m.mods[i],
			Cursor:   i == m.modCursor,
			Match:    matched[i],
			Enabled:  enabled,
			Disabled: disabled,
			Width:    m.width,
		}))
	}
}

func renderOptions[T viewmodel.Selectable](b *strings.Builder, s render.Styles, c *viewmodel.SelectionControl[T], cursor int) {
	selected := c.Selected().Get()
	for i, o := range c.Options() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(render.Option(s, render.OptionState{
			Label:    fmt.Sprint(o),
			Selected: o.ID() == selected.ID(),
			Cursor:   i == cursor,
		}))
	}
}

// matchesText describes the cursor position among the search matches.
func (m *Model) matchesText() string {
	if !m.deps.Search.HasText().Get() {
		return ""
	}
	if len(m.matches) == 0 {
		return m.deps.Texts.Text(localization.KeySearchNoMatches)
	}
	pos := 0
	for i, idx := range m.matches {
		if idx == m.modCursor {
			pos = i + 1
			break
		}
	}
	return m.deps.Texts.Textf(localization.KeySearchMatches, pos, len(m.matches))
}

// visibleRange returns the window of rows to draw so that cursor stays
// visible.
func visibleRange(cursor, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
