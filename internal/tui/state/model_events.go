package state

import (
	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/service"
	"github.com/modkeeper/modkeeper/internal/tui/render"
)

func (m *Model) onLocaleChanged(e bus.Event) {
	ev, ok := e.(domain.LocaleChangedEvent)
	if !ok {
		return
	}
	m.relabel()
	m.reloadThemes()
	m.status.Success(m.deps.Texts.Textf(localization.KeyStatusLocaleChanged, service.NativeName(ev.Locale)))
}

// reloadThemes re-reads the theme options so their names follow the locale.
func (m *Model) reloadThemes() {
	m.deps.Themes.Deactivate()
	if err := m.deps.Themes.Activate(); err != nil {
		m.logger.Warn("reload themes failed", "error", err)
		return
	}
	m.themeCursor = clamp(m.themeCursor, len(m.deps.Themes.Options()))
}

func (m *Model) onThemeChanged(e bus.Event) {
	ev, ok := e.(domain.ThemeChangedEvent)
	if !ok {
		return
	}
	m.styles = render.StylesFor(ev.Theme)
	m.status.Success(m.deps.Texts.Textf(localization.KeyStatusThemeChanged, m.deps.Texts.Text("themes."+string(ev.Theme))))
}

func (m *Model) onSearchNavigation(e bus.Event) {
	ev, ok := e.(domain.SearchNavigationEvent)
	if !ok {
		return
	}
	m.moveToMatch(ev.Forward)
}

func (m *Model) onQueryChanged(query string) {
	m.matches = m.deps.Mods.Matches(m.mods, query)
}

// moveToMatch moves the mod cursor to the next or previous match, wrapping
// around at either end.
func (m *Model) moveToMatch(forward bool) {
	if len(m.matches) == 0 {
		return
	}
	if forward {
		for _, i := range m.matches {
			if i > m.modCursor {
				m.modCursor = i
				return
			}
		}
		m.modCursor = m.matches[0]
		return
	}
	for j := len(m.matches) - 1; j >= 0; j-- {
		if m.matches[j] < m.modCursor {
			m.modCursor = m.matches[j]
			return
		}
	}
	m.modCursor = m.matches[len(m.matches)-1]
}
