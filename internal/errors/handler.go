// Package errors routes user-facing feedback to the console or the TUI
// status line.
package errors

import (
	"fmt"
	"sync"

	"github.com/modkeeper/modkeeper/internal/colors"
)

// ErrorHandler receives user-facing feedback.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink used by CLIHandler.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler prints feedback through a ColorOutput.
type CLIHandler struct {
	out        ColorOutput
	mu         sync.Mutex
	inHandling bool
	quiet      bool
}

// NewCLIHandler creates a handler writing to out.
func NewCLIHandler(out ColorOutput) *CLIHandler {
	return &CLIHandler{out: out}
}

// NewDefaultCLIHandler writes to the colored console.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(colors.Output{})
}

// SetQuiet suppresses Info and Success messages.
func (h *CLIHandler) SetQuiet(quiet bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.quiet = quiet
}

// Error prints msg. A nested call made while an error is being printed goes
// straight to the output so a failing sink cannot recurse forever.
func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	if h.inHandling {
		h.mu.Unlock()
		h.out.Error(msg)
		return
	}
	h.inHandling = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inHandling = false
		h.mu.Unlock()
	}()
	h.out.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.out.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	if h.isQuiet() {
		return
	}
	h.out.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	if h.isQuiet() {
		return
	}
	h.out.Success(msg)
}

func (h *CLIHandler) isQuiet() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.quiet
}

// Report sends err to h as an error prefixed with action. A nil err is ignored.
func Report(h ErrorHandler, action string, err error) {
	if err == nil || h == nil {
		return
	}
	if action == "" {
		h.Error(err.Error())
		return
	}
	h.Error(fmt.Sprintf("%s: %v", action, err))
}
