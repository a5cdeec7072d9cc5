package viewmodel

import (
	"errors"
	"testing"

	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService[T Selectable] struct {
	mock.Mock
}

func (m *mockService[T]) Get() ([]T, error) {
	args := m.Called()
	options, _ := args.Get(0).([]T)
	return options, args.Error(1)
}

func (m *mockService[T]) SetSelected(options []T, selected T) (bool, error) {
	args := m.Called(options, selected)
	return args.Bool(0), args.Error(1)
}

var (
	english = domain.Language{Abrv: "en", Name: "English"}
	french  = domain.Language{Abrv: "fr", Name: "Français"}
	german  = domain.Language{Abrv: "de", Name: "Deutsch"}
)

func selected(l domain.Language) domain.Language {
	l.Selected = true
	return l
}

type fixture struct {
	svc     *mockService[domain.Language]
	bus     *bus.EventBus
	events  *bus.Recorder
	control *LanguageControl
}

func newFixture(t *testing.T, options []domain.Language, err error) *fixture {
	t.Helper()
	svc := &mockService[domain.Language]{}
	svc.On("Get").Return(options, err)
	b := bus.New(nil)
	f := &fixture{
		svc:     svc,
		bus:     b,
		events:  bus.NewRecorder(b, domain.EventLocaleChanged),
		control: NewLanguageControl(svc, b, nil),
	}
	t.Cleanup(f.events.Dispose)
	return f
}

func (f *fixture) localeEvents(t *testing.T) []domain.LocaleChangedEvent {
	t.Helper()
	var out []domain.LocaleChangedEvent
	for _, e := range f.events.Events() {
		out = append(out, e.(domain.LocaleChangedEvent))
	}
	return out
}

// acceptSeed expects the call that persists the seeded option on activation.
func (f *fixture) acceptSeed(options []domain.Language) {
	seed, _ := domain.FirstSelected(options)
	f.svc.On("SetSelected", options, seed).Return(true, nil).Once()
}

func TestActivateSeedsSelection(t *testing.T) {
	tests := []struct {
		name        string
		options     []domain.Language
		want        string
		wantCalls   int
		wantOutcome OutcomeStatus
	}{
		{name: "single active entry", options: []domain.Language{english, selected(french)}, want: "fr", wantCalls: 1, wantOutcome: OutcomeUnchanged},
		{name: "no active entry", options: []domain.Language{english, french}, want: "", wantCalls: 0, wantOutcome: OutcomeSkipped},
		{name: "first active wins", options: []domain.Language{selected(german), selected(english)}, want: "de", wantCalls: 1, wantOutcome: OutcomeUnchanged},
		{name: "empty", options: nil, want: "", wantCalls: 0, wantOutcome: OutcomeSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.options, nil)
			if tt.wantCalls > 0 {
				f.acceptSeed(tt.options)
			}
			require.NoError(t, f.control.Activate())
			defer f.control.Deactivate()

			assert.Equal(t, tt.want, f.control.Selected().Get().ID())
			assert.Equal(t, tt.want, f.control.Latch().ID())
			assert.Equal(t, 0, f.events.Len(), "activation must not publish")
			assert.Equal(t, tt.wantOutcome, f.control.LastOutcome().Status)
			f.svc.AssertNumberOfCalls(t, "SetSelected", tt.wantCalls)
		})
	}
}

func TestActivationPersistsSeed(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	f.svc.On("SetSelected", options, selected(english)).Return(true, nil).Once()

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	f.svc.AssertExpectations(t)
	assert.Equal(t, 0, f.events.Len())
	assert.Equal(t, Outcome{Status: OutcomeUnchanged, ID: "en"}, f.control.LastOutcome())
}

func TestActivationSurfacesRejectedSeed(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	f.svc.On("SetSelected", options, selected(english)).Return(false, nil).Once()

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	assert.True(t, f.control.Rejected().Get())
	assert.Equal(t, "en", f.control.Latch().ID())
	assert.Equal(t, 0, f.events.Len())
}

func TestActivateToleratesServiceError(t *testing.T) {
	f := newFixture(t, nil, errors.New("locales unavailable"))

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	assert.Empty(t, f.control.Options())
	assert.Equal(t, domain.Language{}, f.control.Selected().Get())

	require.NoError(t, f.control.Select(french))
	assert.Equal(t, OutcomeSkipped, f.control.LastOutcome().Status, "no options means no service call")
	f.svc.AssertNotCalled(t, "SetSelected", mock.Anything, mock.Anything)
}

func TestActivateTwice(t *testing.T) {
	options := []domain.Language{selected(english)}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)
	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	assert.ErrorIs(t, f.control.Activate(), ErrAlreadyActive)
}

func TestExampleScenario(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)
	f.svc.On("SetSelected", options, french).Return(true, nil).Twice()

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()
	require.Equal(t, "en", f.control.Selected().Get().ID())

	require.NoError(t, f.control.Select(french))
	events := f.localeEvents(t)
	require.Len(t, events, 1)
	assert.Equal(t, domain.LocaleChangedEvent{Locale: "fr", OldLocale: "en"}, events[0])
	assert.Equal(t, OutcomeNotified, f.control.LastOutcome().Status)

	require.NoError(t, f.control.Select(french))
	assert.Equal(t, 1, f.events.Len(), "reselecting must not publish again")
	assert.Equal(t, OutcomeUnchanged, f.control.LastOutcome().Status)

	f.svc.AssertNumberOfCalls(t, "SetSelected", 3)
}

func TestAlternatingSelectionsPairIdentifiers(t *testing.T) {
	options := []domain.Language{english, french}
	f := newFixture(t, options, nil)
	f.svc.On("SetSelected", options, mock.Anything).Return(true, nil)

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	require.NoError(t, f.control.Select(english))
	require.NoError(t, f.control.Select(french))
	require.NoError(t, f.control.Select(english))

	assert.Equal(t, []domain.LocaleChangedEvent{
		{Locale: "en", OldLocale: ""},
		{Locale: "fr", OldLocale: "en"},
		{Locale: "en", OldLocale: "fr"},
	}, f.localeEvents(t))
	assert.Equal(t, "en", f.control.Latch().ID())
}

func TestRejectedSelection(t *testing.T) {
	options := []domain.Language{selected(english), french, german}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)
	f.svc.On("SetSelected", options, french).Return(false, nil)
	f.svc.On("SetSelected", options, german).Return(true, nil)

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	err := f.control.Select(french)
	assert.ErrorIs(t, err, ErrSelectionRejected)
	assert.Equal(t, 0, f.events.Len())
	assert.Equal(t, "en", f.control.Latch().ID(), "latch must not move on rejection")
	assert.Equal(t, "fr", f.control.Selected().Get().ID(), "selection is left as chosen")
	assert.True(t, f.control.Rejected().Get())
	assert.Equal(t, Outcome{Status: OutcomeRejected, ID: "fr"}, f.control.LastOutcome())

	require.NoError(t, f.control.Select(german))
	assert.False(t, f.control.Rejected().Get())
	assert.Equal(t, []domain.LocaleChangedEvent{{Locale: "de", OldLocale: "en"}}, f.localeEvents(t))
}

func TestServiceErrorIsSurfaced(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	storeErr := errors.New("disk full")
	f.acceptSeed(options)
	f.svc.On("SetSelected", options, french).Return(false, storeErr)

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	err := f.control.Select(french)
	assert.ErrorIs(t, err, ErrSelectionRejected)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, OutcomeFailed, f.control.LastOutcome().Status)
	assert.Equal(t, 0, f.events.Len())
	assert.Equal(t, "en", f.control.Latch().ID())
}

func TestPropertyChangeDrivesEvaluation(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)
	f.svc.On("SetSelected", options, french).Return(true, nil).Once()

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	f.control.Selected().Set(french)

	assert.Equal(t, 1, f.events.Len())
	f.svc.AssertExpectations(t)
}

func TestZeroSelectionIsSkipped(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)

	require.NoError(t, f.control.Activate())
	defer f.control.Deactivate()

	f.control.Selected().Set(domain.Language{})

	assert.Equal(t, OutcomeSkipped, f.control.LastOutcome().Status)
	f.svc.AssertNumberOfCalls(t, "SetSelected", 1)
}

func TestDeactivateStopsReacting(t *testing.T) {
	options := []domain.Language{selected(english), french}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)

	require.NoError(t, f.control.Activate())
	f.control.Deactivate()
	f.control.Deactivate()

	assert.False(t, f.control.Active())
	assert.Equal(t, 0, f.control.Selected().Observers())

	f.control.Selected().Set(french)
	assert.ErrorIs(t, f.control.Select(french), ErrNotActive)
	f.svc.AssertNumberOfCalls(t, "SetSelected", 1)
	assert.Equal(t, 0, f.events.Len())
}

func TestReactivateReloadsOptions(t *testing.T) {
	svc := &mockService[domain.Language]{}
	svc.On("Get").Return([]domain.Language{selected(english)}, nil).Once()
	svc.On("Get").Return([]domain.Language{english, selected(german)}, nil).Once()
	svc.On("SetSelected", mock.Anything, mock.Anything).Return(true, nil)
	c := NewLanguageControl(svc, bus.New(nil), nil)

	require.NoError(t, c.Activate())
	c.Deactivate()
	require.NoError(t, c.Activate())
	defer c.Deactivate()

	assert.Equal(t, "de", c.Latch().ID())
	assert.Len(t, c.Options(), 2)
	assert.Equal(t, 1, c.Selected().Observers())
}

func TestRunActiveReleasesOnPanic(t *testing.T) {
	options := []domain.Language{selected(english)}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)

	assert.Panics(t, func() {
		_ = f.control.RunActive(func() error { panic("view crashed") })
	})
	assert.False(t, f.control.Active())
	assert.Equal(t, 0, f.control.Selected().Observers())
}

func TestRunActiveReturnsError(t *testing.T) {
	options := []domain.Language{selected(english)}
	f := newFixture(t, options, nil)
	f.acceptSeed(options)
	want := errors.New("done")

	err := f.control.RunActive(func() error {
		assert.True(t, f.control.Active())
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.False(t, f.control.Active())
}

func TestThemeControlPublishesThemeChanged(t *testing.T) {
	light := domain.Theme{Type: domain.ThemeLight}
	dark := domain.Theme{Type: domain.ThemeDark, Selected: true}
	options := []domain.Theme{light, dark}

	svc := &mockService[domain.Theme]{}
	svc.On("Get").Return(options, nil)
	svc.On("SetSelected", options, dark).Return(true, nil).Once()
	svc.On("SetSelected", options, light).Return(true, nil)
	b := bus.New(nil)
	rec := bus.NewRecorder(b, domain.EventThemeChanged)
	defer rec.Dispose()

	c := NewThemeControl(svc, b, nil)
	require.NoError(t, c.RunActive(func() error { return c.Select(light) }))

	require.Equal(t, 1, rec.Len())
	assert.Equal(t, domain.ThemeChangedEvent{Theme: domain.ThemeLight, OldTheme: domain.ThemeDark}, rec.Events()[0])
	assert.Equal(t, "theme", c.Name())
}

func TestOutcomeStatusString(t *testing.T) {
	assert.Equal(t, "notified", OutcomeNotified.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "OutcomeStatus(42)", OutcomeStatus(42).String())
}
