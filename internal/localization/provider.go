// Package localization resolves UI text from embedded per-locale TOML
// resources.
package localization

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// FallbackLocale is used when a key is missing from the active locale.
const FallbackLocale = "en"

// Resource keys used outside this package.
const (
	KeyAppTitle            = "app.title"
	KeyLanguagesName       = "languages.name"
	KeyThemesName          = "themes.name"
	KeySearchPlaceholder   = "search.placeholder"
	KeySearchClear         = "search.clear"
	KeySearchPrevious      = "search.previous"
	KeySearchNext          = "search.next"
	KeySearchMatches       = "search.matches"
	KeySearchNoMatches     = "search.no_matches"
	KeyModsName            = "mods.name"
	KeyModsEmpty           = "mods.empty"
	KeyModsEnabled         = "mods.enabled"
	KeyModsDisabled        = "mods.disabled"
	KeyStatusLocaleChanged = "status.locale_changed"
	KeyStatusThemeChanged  = "status.theme_changed"
	KeyStatusRejected      = "status.rejected"
	KeyHelpPanes           = "help.panes"
	KeyHelpSelect          = "help.select"
	KeyHelpNavigate        = "help.navigate"
	KeyHelpClear           = "help.clear"
	KeyHelpQuit            = "help.quit"
)

// ErrUnknownLocale is returned when no resource exists for a locale.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed locales/*.toml
var embedded embed.FS

// Provider holds every locale table and the active locale.
type Provider struct {
	mu     sync.RWMutex
	tables map[string]map[string]string
	locale string
}

// NewProvider loads the locales shipped with the binary.
func NewProvider() (*Provider, error) {
	return Load(embedded, "locales")
}

// Load reads every *.toml file in dir of fsys. The file name without the
// extension is the locale abbreviation. The fallback locale must exist.
func Load(fsys fs.FS, dir string) (*Provider, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	tables := make(map[string]map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".toml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		var raw map[string]interface{}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}
		table := make(map[string]string)
		flatten("", raw, table)
		tables[strings.TrimSuffix(name, ".toml")] = table
	}

	if _, ok := tables[FallbackLocale]; !ok {
		return nil, fmt.Errorf("%w: fallback %q missing", ErrUnknownLocale, FallbackLocale)
	}
	return &Provider{tables: tables, locale: FallbackLocale}, nil
}

// flatten turns nested TOML tables into dotted keys. Non-string leaves are
// skipped.
func flatten(prefix string, raw map[string]interface{}, out map[string]string) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch typed := v.(type) {
		case string:
			out[key] = typed
		case map[string]interface{}:
			flatten(key, typed, out)
		}
	}
}

// Locales returns the available locale abbreviations, sorted.
func (p *Provider) Locales() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.tables))
	for abrv := range p.tables {
		out = append(out, abrv)
	}
	sort.Strings(out)
	return out
}

// Has reports whether abrv names a known locale, ignoring case.
func (p *Provider) Has(abrv string) bool {
	_, ok := p.canonical(abrv)
	return ok
}

// SetLocale switches the active locale. Matching ignores case, so "pt-br"
// selects "pt-BR".
func (p *Provider) SetLocale(abrv string) error {
	canonical, ok := p.canonical(abrv)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, abrv)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locale = canonical
	return nil
}

// Locale returns the active locale.
func (p *Provider) Locale() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.locale
}

// Text returns key in the active locale, then in the fallback locale, then
// the key itself.
func (p *Provider) Text(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if s, ok := p.tables[p.locale][key]; ok {
		return s
	}
	if s, ok := p.tables[FallbackLocale][key]; ok {
		return s
	}
	return key
}

// Textf formats the text for key with args.
func (p *Provider) Textf(key string, args ...any) string {
	return fmt.Sprintf(p.Text(key), args...)
}

func (p *Provider) canonical(abrv string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.tables[abrv]; ok {
		return abrv, true
	}
	for name := range p.tables {
		if strings.EqualFold(name, abrv) {
			return name, true
		}
	}
	return "", false
}
