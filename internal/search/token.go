package search

import (
	"slices"
	"strings"

	"github.com/modkeeper/modkeeper/internal/domain"
)

// TokenProvider splits the query on whitespace and requires every token to
// match some field (AND logic).
//
// The tokens "enabled" and "disabled" filter on the mod's enabled flag;
// giving both cancels them out. A token of the form field:value only
// matches the named field, e.g. "source:steam".
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a token provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{opts: applyOptions(opts)}
}

type token struct {
	fields []string
	text   string
}

func (p *TokenProvider) Match(mod domain.Mod, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	wantEnabled, wantDisabled := false, false
	var text []token
	for _, raw := range tokens {
		switch strings.ToLower(raw) {
		case "enabled":
			wantEnabled = true
			continue
		case "disabled":
			wantDisabled = true
			continue
		}
		text = append(text, p.parse(raw))
	}

	if wantEnabled != wantDisabled {
		if wantEnabled && !mod.Enabled || wantDisabled && mod.Enabled {
			return false
		}
	}

	for _, t := range text {
		matched := anyField(mod, t.fields, func(v string) bool {
			return strings.Contains(fold(v, p.opts.CaseInsensitive), t.text)
		})
		if !matched {
			return false
		}
	}
	return true
}

// parse splits a field:value token. A prefix that is not a configured
// field is treated as plain text.
func (p *TokenProvider) parse(raw string) token {
	if field, value, ok := strings.Cut(raw, ":"); ok && value != "" {
		field = strings.ToLower(field)
		if slices.Contains(p.opts.Fields, field) {
			return token{fields: []string{field}, text: fold(value, p.opts.CaseInsensitive)}
		}
	}
	return token{fields: p.opts.Fields, text: fold(raw, p.opts.CaseInsensitive)}
}

func (p *TokenProvider) Name() string {
	return "token"
}
