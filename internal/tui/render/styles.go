package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/errors"
)

// Styles is the set of lipgloss styles for one theme.
type Styles struct {
	Theme     domain.ThemeType
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Row       lipgloss.Style
	Cursor    lipgloss.Style
	Match     lipgloss.Style
	Muted     lipgloss.Style
	Input     lipgloss.Style
	status    map[errors.MessageType]lipgloss.Style
}

type palette struct {
	fg, bg, accent, cursorFg, muted lipgloss.Color
	errorFg, warnFg, okFg, infoFg   lipgloss.Color
}

var palettes = map[domain.ThemeType]palette{
	domain.ThemeLight: {
		fg: "0", bg: "255", accent: lipgloss.Color(ansiColorNumber(colors.Blue)), cursorFg: "15", muted: "245",
		errorFg: lipgloss.Color(ansiColorNumber(colors.Red)), warnFg: "130",
		okFg: lipgloss.Color(ansiColorNumber(colors.Green)), infoFg: lipgloss.Color(ansiColorNumber(colors.Blue)),
	},
	domain.ThemeDark: {
		fg: "252", bg: "", accent: lipgloss.Color(ansiColorNumber(colors.Cyan)), cursorFg: "0", muted: "241",
		errorFg: lipgloss.Color(ansiColorNumber(colors.Red)), warnFg: lipgloss.Color(ansiColorNumber(colors.Yellow)),
		okFg: lipgloss.Color(ansiColorNumber(colors.Green)), infoFg: lipgloss.Color(ansiColorNumber(colors.Cyan)),
	},
	domain.ThemeMaterialDark: {
		fg: "#EEFFFF", bg: "#263238", accent: "#80CBC4", cursorFg: "#263238", muted: "#546E7A",
		errorFg: "#F07178", warnFg: "#FFCB6B", okFg: "#C3E88D", infoFg: "#82AAFF",
	},
}

// StylesFor returns the styles of theme. Unknown themes get the dark styles.
func StylesFor(theme domain.ThemeType) Styles {
	p, ok := palettes[theme]
	if !ok {
		theme = domain.ThemeDark
		p = palettes[theme]
	}

	base := lipgloss.NewStyle().Foreground(p.fg)
	if p.bg != "" {
		base = base.Background(p.bg)
	}

	return Styles{
		Theme:     theme,
		Title:     base.Bold(true).Foreground(p.accent),
		Tab:       base.Padding(0, 1).Foreground(p.muted),
		ActiveTab: base.Padding(0, 1).Bold(true).Underline(true).Foreground(p.accent),
		Row:       base,
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(p.cursorFg).Background(p.accent),
		Match:     base.Foreground(p.accent),
		Muted:     base.Foreground(p.muted),
		Input:     base.Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
		status: map[errors.MessageType]lipgloss.Style{
			errors.MessageTypeError:   base.Bold(true).Foreground(p.errorFg),
			errors.MessageTypeWarning: base.Foreground(p.warnFg),
			errors.MessageTypeSuccess: base.Foreground(p.okFg),
			errors.MessageTypeInfo:    base.Foreground(p.infoFg),
		},
	}
}

// StatusStyle returns the style for a status message of typ.
func (s Styles) StatusStyle(typ errors.MessageType) lipgloss.Style {
	if st, ok := s.status[typ]; ok {
		return st
	}
	return s.Row
}
