package search

import (
	"strings"

	"github.com/modkeeper/modkeeper/internal/domain"
)

// SubstringProvider matches when any configured field contains the query.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a substring provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{opts: applyOptions(opts)}
}

func (p *SubstringProvider) Match(mod domain.Mod, query string) bool {
	if query == "" {
		return true
	}
	q := fold(query, p.opts.CaseInsensitive)
	return anyField(mod, p.opts.Fields, func(v string) bool {
		return strings.Contains(fold(v, p.opts.CaseInsensitive), q)
	})
}

func (p *SubstringProvider) Name() string {
	return "substring"
}
