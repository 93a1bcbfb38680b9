package errors

import (
	"slices"
	"sync"
	"time"
)

// historySize bounds the status history kept for a browse session.
const historySize = 50

// MessageType is the severity of a status line message.
type MessageType int

const (
	MessageTypeError MessageType = iota
	MessageTypeWarning
	MessageTypeInfo
	MessageTypeSuccess
)

var messageTypeNames = [...]string{
	MessageTypeError:   "error",
	MessageTypeWarning: "warning",
	MessageTypeInfo:    "info",
	MessageTypeSuccess: "success",
}

func (t MessageType) String() string {
	if t < 0 || int(t) >= len(messageTypeNames) {
		return "unknown"
	}
	return messageTypeNames[t]
}

// Message is one status line entry.
type Message struct {
	Text      string
	Type      MessageType
	Timestamp time.Time
}

// TUIHandler keeps the browse session's status messages. The newest one is
// what the status line shows until it ages out.
type TUIHandler struct {
	mu      sync.RWMutex
	history []Message
	notify  func(Message)
	now     func() time.Time
}

var _ ErrorHandler = (*TUIHandler)(nil)

// NewTUIHandler creates a handler. notify, when set, sees every message
// after it is stored.
func NewTUIHandler(notify func(Message)) *TUIHandler {
	return &TUIHandler{notify: notify, now: time.Now}
}

func (h *TUIHandler) Error(msg string)   { h.push(MessageTypeError, msg) }
func (h *TUIHandler) Warning(msg string) { h.push(MessageTypeWarning, msg) }
func (h *TUIHandler) Info(msg string)    { h.push(MessageTypeInfo, msg) }
func (h *TUIHandler) Success(msg string) { h.push(MessageTypeSuccess, msg) }

func (h *TUIHandler) push(kind MessageType, text string) {
	h.mu.Lock()
	msg := Message{Text: text, Type: kind, Timestamp: h.now()}
	h.history = append(h.history, msg)
	if n := len(h.history); n > historySize {
		h.history = slices.Delete(h.history, 0, n-historySize)
	}
	notify := h.notify
	h.mu.Unlock()

	if notify != nil {
		notify(msg)
	}
}

// Latest returns the newest message.
func (h *TUIHandler) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.history) == 0 {
		return Message{}, false
	}
	return h.history[len(h.history)-1], true
}

// Current returns the newest message while it is younger than ttl.
func (h *TUIHandler) Current(ttl time.Duration) (Message, bool) {
	msg, ok := h.Latest()
	if !ok || h.now().Sub(msg.Timestamp) > ttl {
		return Message{}, false
	}
	return msg, true
}

// History returns a copy of the kept messages, oldest first.
func (h *TUIHandler) History() []Message {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.history)
}

// Clear drops every kept message.
func (h *TUIHandler) Clear() {
	h.mu.Lock()
	h.history = nil
	h.mu.Unlock()
}
