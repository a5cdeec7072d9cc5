// Package viewmodel holds the observable state and commands behind the
// language picker, the theme picker and the mod search box.
package viewmodel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/reactive"
)

var (
	// ErrAlreadyActive is returned by Activate on an active control.
	ErrAlreadyActive = errors.New("control already active")
	// ErrNotActive is returned by Select before Activate or after Deactivate.
	ErrNotActive = errors.New("control not active")
	// ErrSelectionRejected is returned by Select when the backing service
	// refused the new selection.
	ErrSelectionRejected = errors.New("selection rejected")
)

// Selectable is an option that can live in a reactive property.
type Selectable interface {
	comparable
	domain.Option
}

// SelectionService loads options and persists the chosen one.
type SelectionService[T Selectable] interface {
	Get() ([]T, error)
	// SetSelected marks selected active among options. It reports whether
	// the change was accepted.
	SetSelected(options []T, selected T) (bool, error)
}

// NotifyFunc builds the change event published for an accepted change.
type NotifyFunc[T Selectable] func(old, cur T) bus.Event

// OutcomeStatus describes what happened to the last selection change.
type OutcomeStatus int

const (
	// OutcomeNone means no change has been evaluated yet.
	OutcomeNone OutcomeStatus = iota
	// OutcomeSkipped means the change was ignored: nothing selected or no options.
	OutcomeSkipped
	// OutcomeNotified means the change was accepted and published.
	OutcomeNotified
	// OutcomeUnchanged means the change was accepted but matched the latch.
	OutcomeUnchanged
	// OutcomeRejected means the service refused the change.
	OutcomeRejected
	// OutcomeFailed means the service returned an error.
	OutcomeFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeNone:
		return "none"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNotified:
		return "notified"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("OutcomeStatus(%d)", int(s))
	}
}

// Outcome is the result of evaluating one selection change.
type Outcome struct {
	Status OutcomeStatus
	// ID is the identifier of the option that was evaluated.
	ID  string
	Err error
}

// SelectionControl keeps a picker's selection in sync with its service and
// publishes a change event once per accepted, distinct selection.
//
// The latch holds the last value an event was published for, and is only
// advanced after a successful publish.
type SelectionControl[T Selectable] struct {
	name    string
	service SelectionService[T]
	bus     bus.Bus
	notify  NotifyFunc[T]
	logger  logging.Logger

	selected *reactive.Property[T]
	rejected *reactive.Property[bool]

	mu      sync.Mutex
	options []T
	latch   T
	active  bool
	last    Outcome
	subs    *reactive.Disposables
}

// NewSelectionControl creates an inactive control. name tags log entries.
func NewSelectionControl[T Selectable](name string, service SelectionService[T], b bus.Bus, notify NotifyFunc[T], logger logging.Logger) *SelectionControl[T] {
	if logger == nil {
		logger = logging.Nop()
	}
	var zero T
	return &SelectionControl[T]{
		name:     name,
		service:  service,
		bus:      b,
		notify:   notify,
		logger:   logger.With("control", name),
		selected: reactive.NewProperty(zero),
		rejected: reactive.NewProperty(false),
	}
}

// Activate loads the options, seeds the selection from the option flagged
// active and starts reacting to selection changes. The seed is evaluated
// right away, so the service persists it; the latch already holds it, so
// nothing is published.
func (c *SelectionControl[T]) Activate() error {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return ErrAlreadyActive
	}
	c.active = true
	c.subs = &reactive.Disposables{}
	c.mu.Unlock()

	options, err := c.service.Get()
	if err != nil {
		c.logger.Warn("load options failed", "error", err)
		options = nil
	}
	initial, _ := domain.FirstSelected(options)

	c.mu.Lock()
	c.options = options
	c.latch = initial
	c.last = Outcome{}
	subs := c.subs
	c.mu.Unlock()

	c.rejected.Set(false)
	c.selected.Set(initial)
	subs.Add(reactive.WhenValue(c.selected, c.evaluate))

	c.logger.Debug("activated", "options", len(options), "selected", initial.ID())
	return nil
}

// Deactivate releases every subscription. Safe to call more than once.
func (c *SelectionControl[T]) Deactivate() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	subs := c.subs
	c.mu.Unlock()

	subs.Dispose()
	c.logger.Debug("deactivated")
}

// RunActive activates the control, runs fn and deactivates on every exit
// path, including a panic in fn.
func (c *SelectionControl[T]) RunActive(fn func() error) error {
	if err := c.Activate(); err != nil {
		return err
	}
	defer c.Deactivate()
	return fn()
}

// Select sets the selection and returns the evaluation result as an error.
// Selecting the current value again re-runs the evaluation.
func (c *SelectionControl[T]) Select(option T) error {
	if !c.Active() {
		return ErrNotActive
	}
	if !c.selected.Set(option) {
		c.evaluate(option)
	}

	out := c.LastOutcome()
	switch out.Status {
	case OutcomeRejected:
		return fmt.Errorf("%w: %s", ErrSelectionRejected, option.ID())
	case OutcomeFailed:
		return fmt.Errorf("%w: %s: %w", ErrSelectionRejected, option.ID(), out.Err)
	default:
		return nil
	}
}

func (c *SelectionControl[T]) evaluate(value T) {
	var zero T
	c.mu.Lock()
	options := append([]T(nil), c.options...)
	c.mu.Unlock()

	if value == zero || len(options) == 0 {
		c.record(Outcome{Status: OutcomeSkipped, ID: value.ID()})
		return
	}

	accepted, err := c.service.SetSelected(options, value)
	switch {
	case err != nil:
		c.logger.Error("set selected failed", "id", value.ID(), "error", err)
		c.record(Outcome{Status: OutcomeFailed, ID: value.ID(), Err: err})
		return
	case !accepted:
		c.logger.Warn("selection rejected", "id", value.ID())
		c.record(Outcome{Status: OutcomeRejected, ID: value.ID()})
		return
	}

	c.mu.Lock()
	old := c.latch
	c.mu.Unlock()
	if old.ID() == value.ID() {
		c.record(Outcome{Status: OutcomeUnchanged, ID: value.ID()})
		return
	}

	c.bus.Publish(c.notify(old, value))
	c.mu.Lock()
	c.latch = value
	c.mu.Unlock()
	c.logger.Info("selection changed", "old", old.ID(), "new", value.ID())
	c.record(Outcome{Status: OutcomeNotified, ID: value.ID()})
}

func (c *SelectionControl[T]) record(out Outcome) {
	c.mu.Lock()
	c.last = out
	c.mu.Unlock()
	c.rejected.Set(out.Status == OutcomeRejected || out.Status == OutcomeFailed)
}

// Name returns the control name used in logs.
func (c *SelectionControl[T]) Name() string { return c.name }

// Selected is the observable current selection.
func (c *SelectionControl[T]) Selected() *reactive.Property[T] { return c.selected }

// Rejected is true while the last evaluated change was refused or failed.
// The selection is left as chosen, so the UI may differ from the store
// until the next accepted change.
func (c *SelectionControl[T]) Rejected() *reactive.Property[bool] { return c.rejected }

// Options returns a copy of the options loaded on activation.
func (c *SelectionControl[T]) Options() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.options...)
}

// Latch returns the last value a change event was published for, or the
// initial selection.
func (c *SelectionControl[T]) Latch() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latch
}

// Active reports whether the control is between Activate and Deactivate.
func (c *SelectionControl[T]) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// LastOutcome returns the result of the most recent evaluation.
func (c *SelectionControl[T]) LastOutcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
