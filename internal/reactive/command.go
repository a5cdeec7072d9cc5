package reactive

// Command is a UI action whose enablement is driven by a boolean property.
type Command[R any] struct {
	enabled *Property[bool]
	action  func() R
}

// NewCommand creates a command that runs action while enabled is true.
// A nil enabled property means the command is always enabled.
func NewCommand[R any](enabled *Property[bool], action func() R) *Command[R] {
	if enabled == nil {
		enabled = NewProperty(true)
	}
	return &Command[R]{enabled: enabled, action: action}
}

// CanExecute reports whether the command is currently enabled.
func (c *Command[R]) CanExecute() bool {
	return c.enabled.Get()
}

// Enabled exposes the enablement property for observers.
func (c *Command[R]) Enabled() *Property[bool] {
	return c.enabled
}

// Execute runs the action. It returns false without running anything when
// the command is disabled.
func (c *Command[R]) Execute() (R, bool) {
	if !c.CanExecute() {
		var zero R
		return zero, false
	}
	return c.action(), true
}
