package viewmodel

import (
	"strings"
	"sync"

	"github.com/modkeeper/modkeeper/internal/bus"
	"github.com/modkeeper/modkeeper/internal/domain"
	"github.com/modkeeper/modkeeper/internal/logging"
	"github.com/modkeeper/modkeeper/internal/reactive"
)

// Label ids registered for the search box.
const (
	LabelSearch         = "search"
	LabelSearchClear    = "search.clear"
	LabelSearchPrevious = "search.previous"
	LabelSearchNext     = "search.next"
)

// NavigationStatus is the outcome of an arrow command.
type NavigationStatus int

const (
	StatusDisabled NavigationStatus = iota
	StatusExecuted
)

func (s NavigationStatus) String() string {
	if s == StatusExecuted {
		return "executed"
	}
	return "disabled"
}

// NavigationResult asks the results view to move one match in a direction.
// The control does not track match positions itself.
type NavigationResult struct {
	Forward bool
	Status  NavigationStatus
}

// SearchControl holds the mod filter text and the clear/previous/next
// commands. The arrow commands are enabled while the text is not blank,
// re-evaluated on every change.
type SearchControl struct {
	bus    bus.Bus
	logger logging.Logger

	text    *reactive.Property[string]
	hasText *reactive.Property[bool]

	clear    *reactive.Command[struct{}]
	previous *reactive.Command[NavigationResult]
	next     *reactive.Command[NavigationResult]

	mu     sync.Mutex
	active bool
	subs   *reactive.Disposables
	// derived keeps hasText in step with text for the control's lifetime,
	// independent of Activate.
	derived reactive.Subscription
}

// NewSearchControl creates a search control with empty text.
func NewSearchControl(b bus.Bus, logger logging.Logger) *SearchControl {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &SearchControl{
		bus:     b,
		logger:  logger.With("control", "search"),
		text:    reactive.NewProperty(""),
		hasText: reactive.NewProperty(false),
	}
	c.derived = c.text.Subscribe(func(s string) { c.hasText.Set(notBlank(s)) })

	c.clear = reactive.NewCommand(nil, func() struct{} {
		c.text.Set("")
		return struct{}{}
	})
	c.previous = reactive.NewCommand(c.hasText, func() NavigationResult { return c.navigate(false) })
	c.next = reactive.NewCommand(c.hasText, func() NavigationResult { return c.navigate(true) })
	return c
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Activate marks the control live. Navigation events are only published
// while active.
func (c *SearchControl) Activate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return ErrAlreadyActive
	}
	c.active = true
	c.subs = &reactive.Disposables{}
	c.subs.Add(c.hasText.Subscribe(func(enabled bool) {
		c.logger.Debug("navigation enablement changed", "enabled", enabled)
	}))
	return nil
}

// Deactivate releases the control's subscriptions. Safe to call twice.
func (c *SearchControl) Deactivate() {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return
	}
	c.active = false
	subs := c.subs
	c.mu.Unlock()
	subs.Dispose()
}

// Close releases the derived-state subscription. The control is unusable
// afterwards.
func (c *SearchControl) Close() {
	c.Deactivate()
	c.derived.Dispose()
}

// Active reports whether the control is active.
func (c *SearchControl) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Text is the observable filter text.
func (c *SearchControl) Text() *reactive.Property[string] { return c.text }

// HasText is true while the text is not blank.
func (c *SearchControl) HasText() *reactive.Property[bool] { return c.hasText }

// SetText replaces the filter text.
func (c *SearchControl) SetText(s string) { c.text.Set(s) }

// ClearCommand is always enabled.
func (c *SearchControl) ClearCommand() *reactive.Command[struct{}] { return c.clear }

// PreviousCommand is enabled while the text is not blank.
func (c *SearchControl) PreviousCommand() *reactive.Command[NavigationResult] { return c.previous }

// NextCommand is enabled while the text is not blank.
func (c *SearchControl) NextCommand() *reactive.Command[NavigationResult] { return c.next }

// ClearText empties the text.
func (c *SearchControl) ClearText() {
	c.clear.Execute()
}

// MoveToPrevious requests the previous match.
func (c *SearchControl) MoveToPrevious() NavigationResult {
	return c.run(c.previous, false)
}

// MoveToNext requests the next match.
func (c *SearchControl) MoveToNext() NavigationResult {
	return c.run(c.next, true)
}

func (c *SearchControl) run(cmd *reactive.Command[NavigationResult], forward bool) NavigationResult {
	if res, ok := cmd.Execute(); ok {
		return res
	}
	return NavigationResult{Forward: forward, Status: StatusDisabled}
}

func (c *SearchControl) navigate(forward bool) NavigationResult {
	if c.Active() && c.bus != nil {
		c.bus.Publish(domain.SearchNavigationEvent{Query: c.text.Get(), Forward: forward})
	}
	return NavigationResult{Forward: forward, Status: StatusExecuted}
}
