// Package service implements the backends behind the pickers and the mod
// list.
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/preferences"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageService lists the UI locales and persists the chosen one.
type LanguageService struct {
	provider      *localization.Provider
	store         preferences.Store
	defaultLocale string
	logger        logging.Logger
}

// NewLanguageService creates a service over the provider's locales.
// defaultLocale is used while no preference is stored.
func NewLanguageService(provider *localization.Provider, store preferences.Store, defaultLocale string, logger logging.Logger) *LanguageService {
	if logger == nil {
		logger = logging.Nop()
	}
	if defaultLocale == "" {
		defaultLocale = localization.FallbackLocale
	}
	return &LanguageService{
		provider:      provider,
		store:         store,
		defaultLocale: defaultLocale,
		logger:        logger.With("service", "language"),
	}
}

// NativeName returns the language's own name for itself, e.g. "Français"
// for fr. Unparseable tags return abrv unchanged.
func NativeName(abrv string) string {
	tag, err := language.Parse(abrv)
	if err != nil {
		return abrv
	}
	name := display.Self.Name(tag)
	if name == "" {
		return abrv
	}
	return cases.Title(tag).String(name)
}

func (s *LanguageService) current() (string, error) {
	p, err := s.store.Load()
	if err != nil {
		return "", fmt.Errorf("load preferences: %w", err)
	}
	if p.Locale != "" {
		return p.Locale, nil
	}
	return s.defaultLocale, nil
}

// Get returns every locale, flagged selected when it matches the stored
// preference, ordered by native name.
func (s *LanguageService) Get() ([]domain.Language, error) {
	current, err := s.current()
	if err != nil {
		return nil, err
	}

	locales := s.provider.Locales()
	out := make([]domain.Language, 0, len(locales))
	for _, abrv := range locales {
		out = append(out, domain.Language{
			Abrv:     abrv,
			Name:     NativeName(abrv),
			Selected: strings.EqualFold(abrv, current),
		})
	}

	c := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

// GetSelected returns the selected language, or false when the stored
// locale is not available.
func (s *LanguageService) GetSelected() (domain.Language, bool, error) {
	langs, err := s.Get()
	if err != nil {
		return domain.Language{}, false, err
	}
	lang, ok := domain.FirstSelected(langs)
	return lang, ok, nil
}

// SetSelected persists lang and switches the active locale. It rejects
// languages missing from options or unknown to the provider.
func (s *LanguageService) SetSelected(options []domain.Language, lang domain.Language) (bool, error) {
	if !domain.Contains(options, lang) || !s.provider.Has(lang.Abrv) {
		s.logger.Warn("rejected unknown language", "locale", lang.Abrv)
		return false, nil
	}
	if err := preferences.Update(s.store, func(p *preferences.Preferences) { p.Locale = lang.Abrv }); err != nil {
		return false, fmt.Errorf("save locale: %w", err)
	}
	if err := s.provider.SetLocale(lang.Abrv); err != nil {
		return false, err
	}
	return true, nil
}

// ApplySelected activates the stored locale at startup. A stored locale
// that no longer exists falls back to the default, then to English.
func (s *LanguageService) ApplySelected() error {
	current, err := s.current()
	if err != nil {
		return err
	}
	for _, candidate := range []string{current, s.defaultLocale, localization.FallbackLocale} {
		if err := s.provider.SetLocale(candidate); err == nil {
			return nil
		}
		s.logger.Warn("locale unavailable", "locale", candidate)
	}
	return fmt.Errorf("%w: %q", localization.ErrUnknownLocale, current)
}
