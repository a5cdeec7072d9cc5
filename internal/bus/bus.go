// Package bus provides the in-process event bus shared by the view models
// and the UI.
package bus

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/reactive"
)

// Event and EventType are re-exported so subscribers only import bus.
type (
	Event     = domain.Event
	EventType = domain.EventType
)

// Handler handles one published event.
type Handler func(Event)

// Bus broadcasts events to handlers subscribed by event type.
type Bus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler Handler) reactive.Subscription
}

type subscriber struct {
	id      uint64
	handler Handler
}

// EventBus delivers events synchronously on the publishing goroutine, in
// subscription order.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscriber
	nextID   uint64
	logger   logging.Logger
}

var _ Bus = (*EventBus)(nil)

// New creates an empty bus. A nil logger discards handler failures.
func New(logger logging.Logger) *EventBus {
	if logger == nil {
		logger = logging.Nop()
	}
	return &EventBus{
		handlers: make(map[EventType][]subscriber),
		logger:   logger,
	}
}

// Publish calls every handler subscribed to the event's type when Publish
// starts. Handlers subscribed or disposed during delivery take effect for
// the next event, except that a disposed handler that has not run yet is
// skipped.
func (b *EventBus) Publish(event Event) {
	if event == nil {
		return
	}
	b.mu.RLock()
	snapshot := append([]subscriber(nil), b.handlers[event.Type()]...)
	b.mu.RUnlock()

	b.logger.Debug("publish", "event", string(event.Type()), "handlers", len(snapshot))
	for _, s := range snapshot {
		if !b.subscribed(event.Type(), s.id) {
			continue
		}
		b.deliver(s.handler, event)
	}
}

func (b *EventBus) deliver(h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", string(event.Type()),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe registers handler for eventType. Disposing the returned
// subscription removes it; disposing twice is harmless.
func (b *EventBus) Subscribe(eventType EventType, handler Handler) reactive.Subscription {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})
	b.mu.Unlock()

	return reactive.NewSubscription(func() { b.unsubscribe(eventType, id) })
}

// Subscribers returns how many handlers are registered for eventType.
func (b *EventBus) Subscribers(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

func (b *EventBus) subscribed(eventType EventType, id uint64) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.handlers[eventType] {
		if s.id == id {
			return true
		}
	}
	return false
}

func (b *EventBus) unsubscribe(eventType EventType, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}
