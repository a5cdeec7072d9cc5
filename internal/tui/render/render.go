// Package render draws the TUI panes as strings.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/errors"
)

const (
	nameWidth     = 32
	versionWidth  = 10
	sourceWidth   = 8
	stateWidth    = 9
	cursorMark    = "›"
	selectedMark  = "●"
	unselectedMk  = "○"
	defaultWidth  = 80
	ellipsis      = "..."
)

// RowState defines the inputs needed to render a mod row.
type RowState struct {
	Mod      domain.Mod
	Cursor   bool
	Match    bool
	Enabled  string
	Disabled string
	Width    int
}

// OptionState defines the inputs needed to render a picker option.
type OptionState struct {
	Label    string
	Selected bool
	Cursor   bool
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Help    string
	Status  string
	Type    errors.MessageType
	Matches string
	Width   int
}

// Tabs renders the pane titles with the active one highlighted.
func Tabs(s Styles, names []string, active int) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			parts = append(parts, s.ActiveTab.Render(name))
			continue
		}
		parts = append(parts, s.Tab.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Title renders the application title.
func Title(s Styles, title string) string {
	return s.Title.Render(title)
}

// ModRow renders a single mod row.
func ModRow(s Styles, state RowState) string {
	name := truncate(state.Mod.Name, nameWidth)
	version := truncate(state.Mod.Version, versionWidth)
	source := truncate(state.Mod.Source, sourceWidth)
	enabled := state.Disabled
	if state.Mod.Enabled {
		enabled = state.Enabled
	}

	prefix := " "
	if state.Cursor {
		prefix = cursorMark
	}
	line := fmt.Sprintf("%s %-*s  %-*s  %-*s  %-*s  %s",
		prefix,
		nameWidth, name,
		versionWidth, version,
		sourceWidth, source,
		stateWidth, truncate(enabled, stateWidth),
		strings.Join(state.Mod.Tags, ","),
	)
	line = truncate(line, width(state.Width))

	switch {
	case state.Cursor:
		return s.Cursor.Render(line)
	case state.Match:
		return s.Match.Render(line)
	default:
		return s.Row.Render(line)
	}
}

// Option renders a picker option with its selection mark.
func Option(s Styles, state OptionState) string {
	mark := unselectedMk
	if state.Selected {
		mark = selectedMark
	}
	prefix := " "
	if state.Cursor {
		prefix = cursorMark
	}
	line := fmt.Sprintf("%s %s %s", prefix, mark, state.Label)
	if state.Cursor {
		return s.Cursor.Render(line)
	}
	return s.Row.Render(line)
}

// Empty renders the placeholder for an empty list.
func Empty(s Styles, text string) string {
	return s.Muted.Render(text)
}

// Footer renders the status line above the help line.
func Footer(s Styles, state FooterState) string {
	var b strings.Builder
	if state.Status != "" {
		b.WriteString(s.StatusStyle(state.Type).Render(truncate(state.Status, width(state.Width))))
		b.WriteString("\n")
	}
	if state.Matches != "" {
		b.WriteString(s.Muted.Render(state.Matches))
		b.WriteString("  ")
	}
	b.WriteString(s.Muted.Render(state.Help))
	return b.String()
}

func width(w int) int {
	if w <= 0 {
		return defaultWidth
	}
	return w
}

// truncate shortens value to max runes, ending with an ellipsis.
func truncate(value string, max int) string {
	if max <= 0 || utf8.RuneCountInString(value) <= max {
		return value
	}
	if max <= len(ellipsis) {
		return string([]rune(value)[:max])
	}
	return string([]rune(value)[:max-len(ellipsis)]) + ellipsis
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
