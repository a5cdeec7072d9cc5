// Package domain holds the records shared by services, view models and the
// UI: selectable options, mods and the change events published on the bus.
package domain

import (
	"fmt"
	"strings"
)

// Option is a selectable record with an identity and an "is currently
// active" flag.
type Option interface {
	ID() string
	IsSelected() bool
}

// Language is a selectable UI language.
type Language struct {
	Abrv     string
	Name     string
	Selected bool
}

// ID returns the locale abbreviation.
func (l Language) ID() string { return l.Abrv }

// IsSelected reports whether the language is the active one.
func (l Language) IsSelected() bool { return l.Selected }

// String returns the display name.
func (l Language) String() string {
	if l.Name == "" {
		return l.Abrv
	}
	return l.Name
}

// ThemeType identifies a theme.
type ThemeType string

const (
	ThemeLight        ThemeType = "light"
	ThemeDark         ThemeType = "dark"
	ThemeMaterialDark ThemeType = "material-dark"
)

// ThemeTypes lists the supported themes in display order.
var ThemeTypes = []ThemeType{ThemeLight, ThemeDark, ThemeMaterialDark}

// IsValid checks if the theme type is known.
func (t ThemeType) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeMaterialDark:
		return true
	default:
		return false
	}
}

// String returns the string representation of the theme type.
func (t ThemeType) String() string {
	return string(t)
}

// ParseThemeType parses a theme type, ignoring case and surrounding spaces.
func ParseThemeType(s string) (ThemeType, error) {
	t := ThemeType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return t, nil
}

// Theme is a selectable color theme.
type Theme struct {
	Type     ThemeType
	Name     string
	Selected bool
}

// ID returns the theme type.
func (t Theme) ID() string { return string(t.Type) }

// IsSelected reports whether the theme is the active one.
func (t Theme) IsSelected() bool { return t.Selected }

// String returns the display name.
func (t Theme) String() string {
	if t.Name == "" {
		return string(t.Type)
	}
	return t.Name
}

// FirstSelected returns the first option flagged active.
func FirstSelected[T Option](options []T) (T, bool) {
	for _, o := range options {
		if o.IsSelected() {
			return o, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an option with the same ID is in options.
func Contains[T Option](options []T, candidate T) bool {
	for _, o := range options {
		if o.ID() == candidate.ID() {
			return true
		}
	}
	return false
}
