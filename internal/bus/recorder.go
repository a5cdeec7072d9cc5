package bus

import (
	"sync"

	"github.com/modkeeper/modkeeper/internal/reactive"
)

// Recorder captures events from a bus in delivery order, so a caller can
// report what a component published.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	subs   reactive.Disposables
}

// NewRecorder subscribes to each of types on b.
func NewRecorder(b Bus, types ...EventType) *Recorder {
	r := &Recorder{}
	for _, t := range types {
		r.subs.Add(b.Subscribe(t, r.record))
	}
	return r
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset forgets recorded events but keeps listening.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Dispose stops recording.
func (r *Recorder) Dispose() {
	r.subs.Dispose()
}
