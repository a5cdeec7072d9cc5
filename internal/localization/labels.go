package localization

import "sync"

// Texter resolves a resource key to display text.
type Texter interface {
	Text(key string) string
}

// Labels maps UI label ids to resource keys. Text is looked up when the
// labels are resolved, so a locale change only needs a new Resolve.
type Labels struct {
	mu    sync.RWMutex
	order []string
	keys  map[string]string
}

// NewLabels creates an empty registry.
func NewLabels() *Labels {
	return &Labels{keys: make(map[string]string)}
}

// Register binds id to key. Registering an id again replaces its key.
func (l *Labels) Register(id, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.keys[id]; !ok {
		l.order = append(l.order, id)
	}
	l.keys[id] = key
}

// Key returns the resource key bound to id.
func (l *Labels) Key(id string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	key, ok := l.keys[id]
	return key, ok
}

// IDs returns the registered ids in registration order.
func (l *Labels) IDs() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.order...)
}

// Resolve returns the text of every label in the texter's current locale.
func (l *Labels) Resolve(t Texter) map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]string, len(l.keys))
	for id, key := range l.keys {
		out[id] = t.Text(key)
	}
	return out
}
