package errors

import (
	"sync"
	"time"
)

// historyLimit bounds the messages kept by a TUIHandler.
const historyLimit = 50

// MessageType classifies a status message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeError:
		return "error"
	case MessageTypeWarning:
		return "warning"
	case MessageTypeInfo:
		return "info"
	case MessageTypeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Message is one entry on the TUI status line.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler stores feedback for the status line instead of printing it,
// since writes to the terminal would corrupt the rendered screen.
type TUIHandler struct {
	mu       sync.RWMutex
	messages []Message
	ttl      time.Duration
	now      func() time.Time
	onNotify func(Message)
}

// NewTUIHandler creates a handler whose messages expire after ttl.
// A zero ttl keeps the latest message until Clear. onNotify, if set, runs
// for every new message.
func NewTUIHandler(ttl time.Duration, onNotify func(Message)) *TUIHandler {
	return &TUIHandler{
		ttl:      ttl,
		now:      time.Now,
		onNotify: onNotify,
	}
}

func (h *TUIHandler) Error(msg string)   { h.add(msg, MessageTypeError) }
func (h *TUIHandler) Warning(msg string) { h.add(msg, MessageTypeWarning) }
func (h *TUIHandler) Info(msg string)    { h.add(msg, MessageTypeInfo) }
func (h *TUIHandler) Success(msg string) { h.add(msg, MessageTypeSuccess) }

func (h *TUIHandler) add(text string, typ MessageType) {
	h.mu.Lock()
	msg := Message{Text: text, Type: typ, Timestamp: h.now()}
	h.messages = append(h.messages, msg)
	if len(h.messages) > historyLimit {
		h.messages = append([]Message(nil), h.messages[len(h.messages)-historyLimit:]...)
	}
	notify := h.onNotify
	h.mu.Unlock()

	if notify != nil {
		notify(msg)
	}
}

// Current returns the latest message if it has not expired.
func (h *TUIHandler) Current() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	latest := h.messages[len(h.messages)-1]
	if h.ttl > 0 && h.now().Sub(latest.Timestamp) >= h.ttl {
		return Message{}, false
	}
	return latest, true
}

// GetLatest returns the latest message regardless of expiry.
func (h *TUIHandler) GetLatest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.messages) == 0 {
		return Message{}, false
	}
	return h.messages[len(h.messages)-1], true
}

// GetAll returns a copy of the retained history, oldest first.
func (h *TUIHandler) GetAll() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *TUIHandler) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = nil
}
