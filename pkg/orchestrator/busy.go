package orchestrator

import (
	"slices"
	"sync"

	"github.com/glorpus-work/genhub/pkg/model"
)

// BusySet holds the generators currently being installed or uninstalled.
type BusySet struct {
	mu    sync.RWMutex
	names map[model.GeneratorName]struct{}
}

// NewBusySet creates an empty set.
func NewBusySet() *BusySet {
	return &BusySet{names: make(map[model.GeneratorName]struct{})}
}

// Add marks name as busy. It reports false if name was already busy.
func (b *BusySet) Add(name model.GeneratorName) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.names[name]; ok {
		return false
	}
	b.names[name] = struct{}{}
	return true
}

// Discard clears name. Discarding a name that is not busy is a no-op.
func (b *BusySet) Discard(name model.GeneratorName) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.names, name)
}

// Has reports whether name is busy.
func (b *BusySet) Has(name model.GeneratorName) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.names[name]
	return ok
}

// Len returns the number of busy names.
func (b *BusySet) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.names)
}

// Names returns the busy names, sorted.
func (b *BusySet) Names() []model.GeneratorName {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.GeneratorName, 0, len(b.names))
	for n := range b.names {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
