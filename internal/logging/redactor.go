package logging

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

var keySegments = regexp.MustCompile(`[^a-z0-9]+`)

// redactor masks values whose key names a credential. Mod sources such as
// Steam workshop downloads carry API keys and session tokens.
type redactor struct {
	sensitive map[string]struct{}
}

func newRedactor() *redactor {
	r := &redactor{sensitive: make(map[string]struct{})}
	for _, w := range []string{"secret", "password", "token", "key", "auth", "credential", "session"} {
		r.sensitive[w] = struct{}{}
	}
	return r
}

// redact returns a copy of the flattened key/value pairs with sensitive
// values replaced. A trailing key without a value is left alone.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		if key, ok := out[i].(string); ok && r.isSensitive(key) {
			out[i+1] = redacted
		}
	}
	return out
}

// isSensitive matches whole key segments only, so "secretary" passes and
// "api_token" does not.
func (r *redactor) isSensitive(key string) bool {
	for _, part := range keySegments.Split(strings.ToLower(key), -1) {
		if _, ok := r.sensitive[part]; ok {
			return true
		}
	}
	return false
}
