package search

import (
	"regexp"
	"sync"

	"github.com/modkeeper/modkeeper/internal/domain"
)

// RegexProvider matches when any configured field matches the query as a
// regular expression. An invalid pattern matches nothing.
type RegexProvider struct {
	opts Options

	mu      sync.Mutex
	pattern string
	re      *regexp.Regexp
	err     error
	cached  bool
}

// NewRegexProvider creates a regex provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{opts: applyOptions(opts)}
}

func (p *RegexProvider) Match(mod domain.Mod, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.compile(query)
	if err != nil {
		return false
	}
	return anyField(mod, p.opts.Fields, re.MatchString)
}

// compile keeps only the most recent pattern and its result. The TUI runs
// one query against every mod per keystroke, so older patterns are never
// needed again.
func (p *RegexProvider) compile(pattern string) (*regexp.Regexp, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached && p.pattern == pattern {
		return p.re, p.err
	}

	expr := pattern
	if p.opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}
	p.re, p.err = regexp.Compile(expr)
	p.pattern = pattern
	p.cached = true
	return p.re, p.err
}

func (p *RegexProvider) Name() string {
	return "regex"
}
