package notify

import (
	"sync"
	"time"
)

// Hub fans notifications out to a fixed base notifier and to any notifiers attached
// at runtime, such as the UI connections currently open.
type Hub struct {
	base Notifier

	mu       sync.RWMutex
	next     uint64
	attached map[uint64]Notifier
}

// NewHub creates a hub that always notifies base. A nil base is replaced by Nop.
func NewHub(base Notifier) *Hub {
	if base == nil {
		base = Nop{}
	}
	return &Hub{base: base, attached: make(map[uint64]Notifier)}
}

// Attach adds n to the fan-out until the returned detach func is called.
func (h *Hub) Attach(n Notifier) (detach func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.attached[id] = n
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.attached, id)
		h.mu.Unlock()
	}
}

func (h *Hub) targets() []Notifier {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Notifier, 0, len(h.attached)+1)
	out = append(out, h.base)
	for _, n := range h.attached {
		out = append(out, n)
	}
	return out
}

func (h *Hub) Status(msg string) func() {
	var dismissers []func()
	for _, n := range h.targets() {
		dismissers = append(dismissers, n.Status(msg))
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			for _, d := range dismissers {
				d()
			}
		})
	}
}

func (h *Hub) StatusFor(msg string, d time.Duration) {
	for _, n := range h.targets() {
		n.StatusFor(msg, d)
	}
}

func (h *Hub) Info(msg string) {
	for _, n := range h.targets() {
		n.Info(msg)
	}
}

func (h *Hub) Error(msg string) {
	for _, n := range h.targets() {
		n.Error(msg)
	}
}
