// Package reactive provides observable properties, disposable subscriptions
// and commands used by the view models.
package reactive

import "sync"

// Property holds a value and notifies observers when it changes.
// Observers run synchronously on the goroutine that calls Set, in the order
// they subscribed.
type Property[T comparable] struct {
	mu        sync.RWMutex
	value     T
	nextID    uint64
	observers []observer[T]
}

type observer[T comparable] struct {
	id uint64
	fn func(T)
}

// NewProperty creates a property holding the initial value.
func NewProperty[T comparable](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set stores v and notifies observers. Setting an equal value is a no-op.
// It returns true when the value changed.
func (p *Property[T]) Set(v T) bool {
	p.mu.Lock()
	if p.value == v {
		p.mu.Unlock()
		return false
	}
	p.value = v
	snapshot := make([]observer[T], len(p.observers))
	copy(snapshot, p.observers)
	p.mu.Unlock()

	for _, o := range snapshot {
		if p.subscribed(o.id) {
			o.fn(v)
		}
	}
	return true
}

// Subscribe registers fn to be called on every subsequent change.
// The current value is not replayed; use WhenValue for that.
func (p *Property[T]) Subscribe(fn func(T)) Subscription {
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, observer[T]{id: id, fn: fn})
	p.mu.Unlock()

	return NewSubscription(func() { p.unsubscribe(id) })
}

// Observers returns the number of registered observers.
func (p *Property[T]) Observers() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.observers)
}

func (p *Property[T]) subscribed(id uint64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, o := range p.observers {
		if o.id == id {
			return true
		}
	}
	return false
}

func (p *Property[T]) unsubscribe(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, o := range p.observers {
		if o.id == id {
			p.observers = append(p.observers[:i:i], p.observers[i+1:]...)
			return
		}
	}
}

// WhenValue calls fn with the current value and then on every change.
func WhenValue[T comparable](p *Property[T], fn func(T)) Subscription {
	fn(p.Get())
	return p.Subscribe(fn)
}
