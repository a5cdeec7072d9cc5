package domain

// EventType represents the type of a bus event.
type EventType string

// Event types.
const (
	EventLocaleChanged    EventType = "LocaleChanged"
	EventThemeChanged     EventType = "ThemeChanged"
	EventSearchNavigation EventType = "SearchNavigation"
)

// Event is the interface for everything published on the bus.
type Event interface {
	Type() EventType
}

// LocaleChangedEvent is published once per accepted, distinct language change.
type LocaleChangedEvent struct {
	Locale    string
	OldLocale string
}

func (e LocaleChangedEvent) Type() EventType { return EventLocaleChanged }

// ThemeChangedEvent is published once per accepted, distinct theme change.
type ThemeChangedEvent struct {
	Theme    ThemeType
	OldTheme ThemeType
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// SearchNavigationEvent asks the results view to move to the previous or
// next match.
type SearchNavigationEvent struct {
	Query   string
	Forward bool
}

func (e SearchNavigationEvent) Type() EventType { return EventSearchNavigation }
