package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/format"
	"github.com/modkeeper/modkeeper/internal/localization"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/viewmodel"
)

// LanguageClient defines dependencies required by the language commands.
type LanguageClient interface {
	LanguageService() viewmodel.SelectionService[domain.Language]
	EventBus() bus.Bus
	Log() logging.Logger
}

// ThemeClient defines dependencies required by the theme commands.
type ThemeClient interface {
	ThemeService() viewmodel.SelectionService[domain.Theme]
	EventBus() bus.Bus
	Log() logging.Logger
}

// LanguageUseCase lists and switches the UI language.
type LanguageUseCase struct {
	client LanguageClient
}

// NewLanguageUseCase creates a language use-case.
func NewLanguageUseCase(client LanguageClient) *LanguageUseCase {
	if client == nil {
		panic("NewLanguageUseCase: client dependency cannot be nil")
	}
	return &LanguageUseCase{client: client}
}

// List prints the available languages with f.
func (u *LanguageUseCase) List(f format.Formatter, w io.Writer) error {
	options, err := u.client.LanguageService().Get()
	if err != nil {
		return fmt.Errorf("language list: %w", err)
	}
	return f.FormatOptions(format.OptionsOf(options), w)
}

// Set selects the language abrv through the language control and prints
// the change it published.
func (u *LanguageUseCase) Set(abrv string, w io.Writer) error {
	ctrl := viewmodel.NewLanguageControl(u.client.LanguageService(), u.client.EventBus(), u.client.Log())
	return selectAndReport(ctrl, u.client.EventBus(), domain.EventLocaleChanged, w,
		func(l domain.Language) bool { return strings.EqualFold(l.Abrv, strings.TrimSpace(abrv)) },
		func() error { return fmt.Errorf("%w: %q", localization.ErrUnknownLocale, abrv) },
		func(e bus.Event) string {
			ev := e.(domain.LocaleChangedEvent)
			return fmt.Sprintf("language changed: %s -> %s", ev.OldLocale, ev.Locale)
		},
	)
}

// ThemeUseCase lists and switches the color theme.
type ThemeUseCase struct {
	client ThemeClient
}

// NewThemeUseCase creates a theme use-case.
func NewThemeUseCase(client ThemeClient) *ThemeUseCase {
	if client == nil {
		panic("NewThemeUseCase: client dependency cannot be nil")
	}
	return &ThemeUseCase{client: client}
}

// List prints the available themes with f.
func (u *ThemeUseCase) List(f format.Formatter, w io.Writer) error {
	options, err := u.client.ThemeService().Get()
	if err != nil {
		return fmt.Errorf("theme list: %w", err)
	}
	return f.FormatOptions(format.OptionsOf(options), w)
}

// Set selects the theme named typ through the theme control and prints the
// change it published.
func (u *ThemeUseCase) Set(typ string, w io.Writer) error {
	want, err := domain.ParseThemeType(typ)
	if err != nil {
		return err
	}
	ctrl := viewmodel.NewThemeControl(u.client.ThemeService(), u.client.EventBus(), u.client.Log())
	return selectAndReport(ctrl, u.client.EventBus(), domain.EventThemeChanged, w,
		func(t domain.Theme) bool { return t.Type == want },
		func() error { return fmt.Errorf("%w: %q", domain.ErrUnknownTheme, typ) },
		func(e bus.Event) string {
			ev := e.(domain.ThemeChangedEvent)
			return fmt.Sprintf("theme changed: %s -> %s", ev.OldTheme, ev.Theme)
		},
	)
}

// selectAndReport activates ctrl, selects the first option matching match
// and prints every event of eventType published meanwhile. The control is
// deactivated on return.
func selectAndReport[T viewmodel.Selectable](
	ctrl *viewmodel.SelectionControl[T],
	b bus.Bus,
	eventType domain.EventType,
	w io.Writer,
	match func(T) bool,
	notFound func() error,
	describe func(bus.Event) string,
) error {
	rec := bus.NewRecorder(b, eventType)
	defer rec.Dispose()

	return ctrl.RunActive(func() error {
		var (
			target T
			found  bool
		)
		for _, o := range ctrl.Options() {
			if match(o) {
				target, found = o, true
				break
			}
		}
		if !found {
			return notFound()
		}
		if err := ctrl.Select(target); err != nil {
			return err
		}

		events := rec.Events()
		if len(events) == 0 {
			_, err := fmt.Fprintf(w, "%s already selected\n", target.ID())
			return err
		}
		for _, e := range events {
			if _, err := fmt.Fprintln(w, describe(e)); err != nil {
				return err
			}
		}
		return nil
	})
}
