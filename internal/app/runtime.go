// Package app wires configuration, storage and services, and holds the
// use cases behind the CLI commands.
package app

import (
	"fmt"

	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/config"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/search"
	"github.com/modkeeper/modkeeper/internal/service"
	"github.com/modkeeper/modkeeper/internal/storage"
	"github.com/modkeeper/modkeeper/internal/viewmodel"
)

// Runtime holds the services shared by the CLI and the TUI.
type Runtime struct {
	Logger    logging.Logger
	Bus       *bus.EventBus
	Texts     *localization.Provider
	Backend   *storage.Backend
	Languages *service.LanguageService
	Themes    *service.ThemeService
	Mods      *service.ModService
}

// Settings are the configuration values a Runtime depends on.
type Settings struct {
	Locale       string
	DefaultTheme domain.ThemeType
	Search       search.Provider
}

// SettingsFromConfig reads Settings from the loaded config.
func SettingsFromConfig() Settings {
	theme, err := domain.ParseThemeType(config.Get("default_theme", string(domain.ThemeDark)))
	if err != nil {
		theme = domain.ThemeDark
	}
	return Settings{
		Locale:       config.Get("locale", localization.FallbackLocale),
		DefaultTheme: theme,
		Search:       search.NewFromConfig(),
	}
}

// Open builds a Runtime from the loaded config.
func Open() (*Runtime, error) {
	backend, err := storage.NewFromConfig()
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	rt, err := New(backend, SettingsFromConfig(), logging.Component("app"))
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return rt, nil
}

// New builds a Runtime over backend and applies the stored locale.
func New(backend *storage.Backend, settings Settings, logger logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	texts, err := localization.NewProvider()
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Logger:    logger,
		Bus:       bus.New(logger),
		Texts:     texts,
		Backend:   backend,
		Languages: service.NewLanguageService(texts, backend.Preferences, settings.Locale, logger),
		Themes:    service.NewThemeService(texts, backend.Preferences, settings.DefaultTheme, logger),
		Mods:      service.NewModService(backend.Mods, settings.Search),
	}
	if err := rt.Languages.ApplySelected(); err != nil {
		logger.Warn("apply locale failed", "error", err)
	}
	logger.Debug("runtime ready", "backend", backend.Name, "locale", texts.Locale())
	return rt, nil
}

// Close releases the storage backend.
func (r *Runtime) Close() error {
	return r.Backend.Close()
}

// LanguageService implements LanguageClient.
func (r *Runtime) LanguageService() viewmodel.SelectionService[domain.Language] {
	return r.Languages
}

// ThemeService implements ThemeClient.
func (r *Runtime) ThemeService() viewmodel.SelectionService[domain.Theme] {
	return r.Themes
}

// EventBus implements the picker clients.
func (r *Runtime) EventBus() bus.Bus { return r.Bus }

// Log implements the picker clients.
func (r *Runtime) Log() logging.Logger { return r.Logger }

// ModStore implements ModsClient.
func (r *Runtime) ModStore() ModStore { return r.Mods }
