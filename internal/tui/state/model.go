// Package state implements the root bubbletea model hosting the mod list,
// the language picker and the theme picker.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/errors"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/reactive"
	"github.com/modkeeper/modkeeper/internal/tui/render"
	"github.com/modkeeper/modkeeper/internal/viewmodel"
)

// Pane identifies a tab of the root model.
type Pane int

const (
	PaneMods Pane = iota
	PaneLanguages
	PaneThemes
	paneCount
)

const (
	labelTitle = "title"
	labelMods  = "mods"

	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	chromeLines           = 8
)

// ModSource is the mod list behind the mods pane.
type ModSource interface {
	List(ctx context.Context) ([]domain.Mod, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	Matches(mods []domain.Mod, query string) []int
}

// Deps holds the collaborators of the root model.
type Deps struct {
	Bus       bus.Bus
	Texts     *localization.Provider
	Languages *viewmodel.LanguageControl
	Themes    *viewmodel.ThemeControl
	Search    *viewmodel.SearchControl
	Mods      ModSource
	Logger    logging.Logger
	// StatusTTL is how long a status message stays visible. Zero keeps it
	// until the next one.
	StatusTTL time.Duration
}

// Model represents the TUI model for bubbletea.
type Model struct {
	deps   Deps
	logger logging.Logger

	labels   *localization.Labels
	captions map[string]string
	styles   render.Styles
	keys     keyMap
	help     help.Model
	input    textinput.Model
	status   *errors.TUIHandler

	pane        Pane
	mods        []domain.Mod
	matches     []int
	modCursor   int
	langCursor  int
	themeCursor int
	width       int
	height      int

	subs   reactive.Disposables
	closed bool
}

// NewModel activates the controls and subscribes to their change events.
// Close releases both.
func NewModel(deps Deps) (*Model, error) {
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}

	m := &Model{
		deps:   deps,
		logger: deps.Logger.With("component", "tui"),
		labels: localization.NewLabels(),
		help:   help.New(),
		input:  textinput.New(),
		status: errors.NewTUIHandler(deps.StatusTTL, nil),
		width:  defaultViewportWidth,
		height: defaultViewportHeight,
	}
	viewmodel.RegisterLabels(m.labels)
	m.labels.Register(labelTitle, localization.KeyAppTitle)
	m.labels.Register(labelMods, localization.KeyModsName)

	if err := m.activate(); err != nil {
		m.Close()
		return nil, err
	}

	m.subs.Add(deps.Bus.Subscribe(domain.EventLocaleChanged, m.onLocaleChanged))
	m.subs.Add(deps.Bus.Subscribe(domain.EventThemeChanged, m.onThemeChanged))
	m.subs.Add(deps.Bus.Subscribe(domain.EventSearchNavigation, m.onSearchNavigation))
	m.subs.Add(deps.Search.Text().Subscribe(m.onQueryChanged))

	m.relabel()
	m.styles = render.StylesFor(deps.Themes.Selected().Get().Type)
	m.langCursor = indexOf(deps.Languages.Options(), deps.Languages.Selected().Get())
	m.themeCursor = indexOf(deps.Themes.Options(), deps.Themes.Selected().Get())
	m.input.SetValue(deps.Search.Text().Get())
	m.input.Focus()

	if err := m.loadMods(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

func (m *Model) activate() error {
	if err := m.deps.Languages.Activate(); err != nil {
		return fmt.Errorf("activate %s: %w", m.deps.Languages.Name(), err)
	}
	if err := m.deps.Themes.Activate(); err != nil {
		return fmt.Errorf("activate %s: %w", m.deps.Themes.Name(), err)
	}
	if err := m.deps.Search.Activate(); err != nil {
		return fmt.Errorf("activate search: %w", err)
	}
	return nil
}

// Close deactivates the controls and drops every subscription. Safe to
// call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.subs.Dispose()
	m.deps.Search.Deactivate()
	m.deps.Themes.Deactivate()
	m.deps.Languages.Deactivate()
	m.logger.Debug("closed")
}

func (m *Model) loadMods() error {
	mods, err := m.deps.Mods.List(context.Background())
	if err != nil {
		return fmt.Errorf("load mods: %w", err)
	}
	m.mods = mods
	m.matches = m.deps.Mods.Matches(mods, m.deps.Search.Text().Get())
	m.modCursor = clamp(m.modCursor, len(mods))
	return nil
}

// relabel resolves every caption in the active locale.
func (m *Model) relabel() {
	m.captions = m.labels.Resolve(m.deps.Texts)
	m.keys = newKeyMap(m.deps.Texts)
	m.input.Placeholder = m.captions[viewmodel.LabelSearch]
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 6
		return m, nil
	case statusExpiredMsg:
		// Rendering again drops the expired message.
		return m, nil
	}
	return m, nil
}

// Pane returns the focused pane.
func (m *Model) Pane() Pane { return m.pane }

// Mods returns the loaded mods.
func (m *Model) Mods() []domain.Mod { return m.mods }

// Matches returns the indices of the mods matching the search text.
func (m *Model) Matches() []int { return m.matches }

// Cursor returns the cursor position of the focused pane.
func (m *Model) Cursor() int {
	switch m.pane {
	case PaneLanguages:
		return m.langCursor
	case PaneThemes:
		return m.themeCursor
	default:
		return m.modCursor
	}
}

// Styles returns the styles of the active theme.
func (m *Model) Styles() render.Styles { return m.styles }

// Caption returns the resolved caption for a label id.
func (m *Model) Caption(id string) string { return m.captions[id] }

// Status returns the current status message, if it has not expired.
func (m *Model) Status() (errors.Message, bool) { return m.status.Current() }

func indexOf[T viewmodel.Selectable](options []T, v T) int {
	for i, o := range options {
		if o.ID() == v.ID() {
			return i
		}
	}
	return 0
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
