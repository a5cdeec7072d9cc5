package reactive

import "sync"

// Subscription releases an observer registration.
type Subscription interface {
	Dispose()
}

type funcSubscription struct {
	once    sync.Once
	release func()
}

// NewSubscription wraps release so that it runs at most once.
func NewSubscription(release func()) Subscription {
	return &funcSubscription{release: release}
}

func (s *funcSubscription) Dispose() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}

// Disposables collects subscriptions that share a lifetime.
// The zero value is ready to use.
type Disposables struct {
	mu       sync.Mutex
	items    []Subscription
	disposed bool
}

// Add registers s. If the collection was already disposed, s is disposed
// immediately.
func (d *Disposables) Add(s Subscription) {
	if s == nil {
		return
	}
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		s.Dispose()
		return
	}
	d.items = append(d.items, s)
	d.mu.Unlock()
}

// Len returns the number of live subscriptions.
func (d *Disposables) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Disposed reports whether Dispose has been called.
func (d *Disposables) Disposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

// Dispose releases every subscription, newest first. Safe to call twice.
func (d *Disposables) Dispose() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	items := d.items
	d.items = nil
	d.mu.Unlock()

	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}
