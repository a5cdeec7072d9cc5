package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/modkeeper/modkeeper/internal/app"
	"github.com/modkeeper/modkeeper/internal/colors"
	"github.com/modkeeper/modkeeper/internal/tui/state"
	"github.com/modkeeper/modkeeper/internal/viewmodel"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	// Close releases the controls and subscriptions the model holds.
	Close()
}

// Client defines dependencies needed by the tui command.
type Client interface {
	CreateModel() (Model, error)
	RunProgram(model Model) error
}

// DefaultClient builds models on top of an application runtime.
type DefaultClient struct {
	runtime       *app.Runtime
	programRunner ProgramRunner
	statusTTL     time.Duration
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(runtime *app.Runtime, programRunner ProgramRunner, statusTTL time.Duration) *DefaultClient {
	if runtime == nil {
		panic("NewDefaultClient: runtime dependency cannot be nil")
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		runtime:       runtime,
		programRunner: programRunner,
		statusTTL:     statusTTL,
	}
}

// session owns the search control it created next to the model.
type session struct {
	*state.Model
	search *viewmodel.SearchControl
}

func (s *session) Close() {
	s.Model.Close()
	s.search.Close()
}

// CreateModel builds a TUI model wired to the runtime's bus and services.
func (d *DefaultClient) CreateModel() (Model, error) {
	rt := d.runtime
	search := viewmodel.NewSearchControl(rt.Bus, rt.Logger)
	model, err := state.NewModel(state.Deps{
		Bus:       rt.Bus,
		Texts:     rt.Texts,
		Languages: viewmodel.NewLanguageControl(rt.Languages, rt.Bus, rt.Logger),
		Themes:    viewmodel.NewThemeControl(rt.Themes, rt.Bus, rt.Logger),
		Search:    search,
		Mods:      rt.Mods,
		Logger:    rt.Logger,
		StatusTTL: d.statusTTL,
	})
	if err != nil {
		search.Close()
		return nil, err
	}
	return &session{Model: model, search: search}, nil
}

// RunProgram starts the bubbletea program and closes model when it exits.
func (d *DefaultClient) RunProgram(model Model) error {
	defer model.Close()

	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	if err := d.programRunner.Run(model); err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
