// Package search filters mods by a query. Substring, token and regex
// strategies share the Provider interface so the CLI and the TUI filter the
// same way.
package search

import (
	"strings"

	"github.com/modkeeper/modkeeper/internal/config"
	"github.com/modkeeper/modkeeper/internal/domain"
)

// Searchable fields.
const (
	FieldName     = "name"
	FieldVersion  = "version"
	FieldSource   = "source"
	FieldRemoteID = "remote_id"
	FieldTags     = "tags"
)

// AllFields lists every searchable field.
var AllFields = []string{FieldName, FieldVersion, FieldSource, FieldRemoteID, FieldTags}

// Provider matches mods against a query.
type Provider interface {
	// Match reports whether mod matches query. An empty query matches all.
	Match(mod domain.Mod, query string) bool
	Name() string
}

// Options configures a provider.
type Options struct {
	CaseInsensitive bool
	Fields          []string
}

// DefaultOptions searches every field, case-sensitively.
func DefaultOptions() Options {
	return Options{Fields: AllFields}
}

// Option modifies Options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive matching.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) { o.CaseInsensitive = enabled }
}

// WithFields restricts matching to fields. Unknown names are ignored.
func WithFields(fields []string) Option {
	return func(o *Options) { o.Fields = fields }
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValues returns the values of field on mod. Tags yield one value each.
func fieldValues(mod domain.Mod, field string) []string {
	switch field {
	case FieldName:
		return []string{mod.Name}
	case FieldVersion:
		return []string{mod.Version}
	case FieldSource:
		return []string{mod.Source}
	case FieldRemoteID:
		return []string{mod.RemoteID}
	case FieldTags:
		return mod.Tags
	default:
		return nil
	}
}

// anyField reports whether match accepts a non-empty value of one of fields.
func anyField(mod domain.Mod, fields []string, match func(string) bool) bool {
	for _, field := range fields {
		for _, v := range fieldValues(mod, field) {
			if v != "" && match(v) {
				return true
			}
		}
	}
	return false
}

func fold(s string, caseInsensitive bool) string {
	if caseInsensitive {
		return strings.ToLower(s)
	}
	return s
}

// New returns the provider for mode: "substring", "regex" or "token".
// Unknown modes get the token provider.
func New(mode string, opts ...Option) Provider {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "substring":
		return NewSubstringProvider(opts...)
	case "regex":
		return NewRegexProvider(opts...)
	default:
		return NewTokenProvider(opts...)
	}
}

// NewFromConfig builds the provider selected by search_mode and
// search_case_insensitive.
func NewFromConfig() Provider {
	return New(
		config.Get("search_mode", "token"),
		WithCaseInsensitive(config.GetBool("search_case_insensitive", true)),
	)
}

// Filter returns the mods matching query, keeping their order.
func Filter(p Provider, mods []domain.Mod, query string) []domain.Mod {
	out := make([]domain.Mod, 0, len(mods))
	for _, m := range mods {
		if p.Match(m, query) {
			out = append(out, m)
		}
	}
	return out
}

// Matches returns the indices of the mods matching query. A blank query
// matches nothing, since there is nothing to navigate to.
func Matches(p Provider, mods []domain.Mod, query string) []int {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	var idx []int
	for i, m := range mods {
		if p.Match(m, query) {
			idx = append(idx, i)
		}
	}
	return idx
}
