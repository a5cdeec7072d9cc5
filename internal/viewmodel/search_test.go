package viewmodel

import (
	"testing"

	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowEnablement(t *testing.T) {
	tests := []struct {
		text    string
		enabled bool
	}{
		{text: "", enabled: false},
		{text: " ", enabled: false},
		{text: "\t", enabled: false},
		{text: " \n\t ", enabled: false},
		{text: "a", enabled: true},
		{text: " a ", enabled: true},
		{text: "better ui", enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c := NewSearchControl(bus.New(nil), nil)
			defer c.Close()

			c.SetText(tt.text)

			assert.Equal(t, tt.enabled, c.HasText().Get())
			assert.Equal(t, tt.enabled, c.PreviousCommand().CanExecute())
			assert.Equal(t, tt.enabled, c.NextCommand().CanExecute())
			assert.True(t, c.ClearCommand().CanExecute())
		})
	}
}

func TestEnablementTracksEveryChange(t *testing.T) {
	c := NewSearchControl(nil, nil)
	defer c.Close()

	var seen []bool
	sub := c.NextCommand().Enabled().Subscribe(func(v bool) { seen = append(seen, v) })
	defer sub.Dispose()

	for _, s := range []string{"b", "be", " ", "", "x"} {
		c.SetText(s)
	}

	assert.Equal(t, []bool{true, false, true}, seen)
}

func TestClearTextAlwaysSucceeds(t *testing.T) {
	for _, text := range []string{"", "  ", "ui"} {
		c := NewSearchControl(nil, nil)
		c.SetText(text)

		c.ClearText()

		assert.Equal(t, "", c.Text().Get())
		assert.False(t, c.PreviousCommand().CanExecute())
		c.Close()
	}
}

func TestNavigationResults(t *testing.T) {
	b := bus.New(nil)
	rec := bus.NewRecorder(b, domain.EventSearchNavigation)
	defer rec.Dispose()

	c := NewSearchControl(b, nil)
	defer c.Close()
	require.NoError(t, c.Activate())

	assert.Equal(t, NavigationResult{Forward: true, Status: StatusDisabled}, c.MoveToNext())
	assert.Equal(t, NavigationResult{Forward: false, Status: StatusDisabled}, c.MoveToPrevious())
	assert.Equal(t, 0, rec.Len(), "disabled commands publish nothing")

	c.SetText("ui")
	assert.Equal(t, NavigationResult{Forward: true, Status: StatusExecuted}, c.MoveToNext())
	assert.Equal(t, NavigationResult{Forward: false, Status: StatusExecuted}, c.MoveToPrevious())

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.SearchNavigationEvent{Query: "ui", Forward: true}, events[0])
	assert.Equal(t, domain.SearchNavigationEvent{Query: "ui", Forward: false}, events[1])
}

func TestSearchLifecycle(t *testing.T) {
	b := bus.New(nil)
	rec := bus.NewRecorder(b, domain.EventSearchNavigation)
	defer rec.Dispose()
	c := NewSearchControl(b, nil)
	defer c.Close()

	c.SetText("ui")
	assert.True(t, c.NextCommand().CanExecute(), "enablement is computed before activation")
	assert.Equal(t, StatusExecuted, c.MoveToNext().Status)
	assert.Equal(t, 0, rec.Len(), "inactive control does not publish")

	require.NoError(t, c.Activate())
	assert.ErrorIs(t, c.Activate(), ErrAlreadyActive)
	assert.Equal(t, 1, c.HasText().Observers())

	c.Deactivate()
	c.Deactivate()
	assert.False(t, c.Active())
	assert.Equal(t, 0, c.HasText().Observers())

	c.Close()
	assert.Equal(t, 0, c.Text().Observers())
}

func TestRegisterLabels(t *testing.T) {
	p, err := localization.NewProvider()
	require.NoError(t, err)
	labels := localization.NewLabels()

	RegisterLabels(labels)
	resolved := labels.Resolve(p)

	assert.Equal(t, "Language", resolved[LabelLanguages])
	assert.Equal(t, "Theme", resolved[LabelThemes])
	assert.Equal(t, "Search mods", resolved[LabelSearch])
	assert.Equal(t, "Next", resolved[LabelSearchNext])
}
