package service

import (
	"errors"
	"fmt"

	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/preferences"
)

var (
	// ErrNoSelectedTheme means a selection left no theme active.
	ErrNoSelectedTheme = errors.New("no selected themes")
	// ErrTooManySelectedThemes means a selection left several themes active.
	ErrTooManySelectedThemes = errors.New("too many selected themes")
)

// ThemeService lists the color themes and persists the chosen one.
type ThemeService struct {
	texts        localization.Texter
	store        preferences.Store
	defaultTheme domain.ThemeType
	logger       logging.Logger
}

// NewThemeService creates a theme service. Theme names are looked up in
// texts at every Get, so they follow the active locale.
func NewThemeService(texts localization.Texter, store preferences.Store, defaultTheme domain.ThemeType, logger logging.Logger) *ThemeService {
	if logger == nil {
		logger = logging.Nop()
	}
	if !defaultTheme.IsValid() {
		defaultTheme = domain.ThemeDark
	}
	return &ThemeService{
		texts:        texts,
		store:        store,
		defaultTheme: defaultTheme,
		logger:       logger.With("service", "theme"),
	}
}

// Current returns the stored theme, or the default when none is stored or
// the stored value is not a known theme.
func (s *ThemeService) Current() (domain.ThemeType, error) {
	p, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load preferences: %w", err)
	}
	if p.Theme == "" {
		return s.defaultTheme, nil
	}
	t, err := domain.ParseThemeType(p.Theme)
	if err != nil {
		s.logger.Warn("stored theme ignored", "theme", p.Theme)
		return s.defaultTheme, nil
	}
	return t, nil
}

// Get returns every theme with the current one flagged selected.
func (s *ThemeService) Get() ([]domain.Theme, error) {
	current, err := s.Current()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Theme, 0, len(domain.ThemeTypes))
	for _, t := range domain.ThemeTypes {
		out = append(out, domain.Theme{
			Type:     t,
			Name:     s.texts.Text("themes." + string(t)),
			Selected: t == current,
		})
	}
	return out, nil
}

// SetSelected persists theme when it is one of options. The options are
// copied with theme flagged as the only selected entry before saving.
func (s *ThemeService) SetSelected(options []domain.Theme, theme domain.Theme) (bool, error) {
	if !theme.Type.IsValid() || !domain.Contains(options, theme) {
		s.logger.Warn("rejected unknown theme", "theme", string(theme.Type))
		return false, nil
	}

	marked := make([]domain.Theme, len(options))
	for i, o := range options {
		o.Selected = o.ID() == theme.ID()
		marked[i] = o
	}
	if err := s.Save(marked); err != nil {
		return false, err
	}
	return true, nil
}

// Save persists the single theme flagged selected in themes.
func (s *ThemeService) Save(themes []domain.Theme) error {
	var selected []domain.Theme
	for _, t := range themes {
		if t.Selected {
			selected = append(selected, t)
		}
	}
	switch {
	case len(selected) == 0:
		return ErrNoSelectedTheme
	case len(selected) > 1:
		return ErrTooManySelectedThemes
	}

	if err := preferences.Update(s.store, func(p *preferences.Preferences) { p.Theme = string(selected[0].Type) }); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
