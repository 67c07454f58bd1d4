//go:generate mockgen -destination=./mocks/notify.go . Notifier,Peer

// Package notify surfaces status lines and one-shot messages to the user, on the
// console or on a connected UI.
package notify

import "time"

// Level classifies a user-facing message.
type Level string

// Message levels.
const (
	LevelStatus Level = "status"
	LevelInfo   Level = "info"
	LevelError  Level = "error"
)

// Message is a user-facing notification as sent to a UI.
type Message struct {
	ID      string `json:"id,omitempty"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
	// TimeoutMs is how long a status stays visible; 0 means until hidden.
	TimeoutMs int64 `json:"timeoutMs,omitempty"`
}

// Notifier shows messages to the user.
type Notifier interface {
	// Status shows a transient status line until the returned func is called.
	Status(msg string) (dismiss func())
	// StatusFor shows a transient status line for d.
	StatusFor(msg string, d time.Duration)
	Info(msg string)
	Error(msg string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Status(string) func()             { return func() {} }
func (Nop) StatusFor(string, time.Duration) {}
func (Nop) Info(string)                     {}
func (Nop) Error(string)                    {}
