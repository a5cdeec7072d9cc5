package viewmodel

import (
	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/logging"
)

// Label ids registered by the picker controls.
const (
	LabelLanguages = "languages"
	LabelThemes    = "themes"
)

type (
	LanguageControl = SelectionControl[domain.Language]
	ThemeControl    = SelectionControl[domain.Theme]
)

// NewLanguageControl creates the language picker. Accepted changes publish
// a LocaleChangedEvent.
func NewLanguageControl(svc SelectionService[domain.Language], b bus.Bus, logger logging.Logger) *LanguageControl {
	return NewSelectionControl("language", svc, b, func(old, cur domain.Language) bus.Event {
		return domain.LocaleChangedEvent{Locale: cur.Abrv, OldLocale: old.Abrv}
	}, logger)
}

// NewThemeControl creates the theme picker. Accepted changes publish a
// ThemeChangedEvent.
func NewThemeControl(svc SelectionService[domain.Theme], b bus.Bus, logger logging.Logger) *ThemeControl {
	return NewSelectionControl("theme", svc, b, func(old, cur domain.Theme) bus.Event {
		return domain.ThemeChangedEvent{Theme: cur.Type, OldTheme: old.Type}
	}, logger)
}

// RegisterLabels binds the picker and search captions to their resource keys.
func RegisterLabels(labels *localization.Labels) {
	labels.Register(LabelLanguages, localization.KeyLanguagesName)
	labels.Register(LabelThemes, localization.KeyThemesName)
	labels.Register(LabelSearch, localization.KeySearchPlaceholder)
	labels.Register(LabelSearchClear, localization.KeySearchClear)
	labels.Register(LabelSearchPrevious, localization.KeySearchPrevious)
	labels.Register(LabelSearchNext, localization.KeySearchNext)
}
