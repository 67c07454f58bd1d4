// Package installed keeps the per-session set of installed generator names.
package installed

import (
	"context"
	"slices"
	"sync"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/model"
)

// Loader computes the initial set, usually by listing what npm has installed.
type Loader func(ctx context.Context) []model.GeneratorName

// Cache is an ordered, duplicate-free set of installed generator names. A single
// goroutine owns the set; every read and mutation is a message to it, so concurrent
// installs and uninstalls apply one after another against the latest state.
type Cache struct {
	ops       chan func(*[]model.GeneratorName)
	done      chan struct{}
	closeOnce sync.Once
}

// New starts the owner goroutine. The loader runs once, before any operation is
// served; callers arriving during the load wait for it.
func New(ctx context.Context, load Loader) *Cache {
	c := &Cache{
		ops:  make(chan func(*[]model.GeneratorName)),
		done: make(chan struct{}),
	}
	go c.run(ctx, load)
	return c
}

func (c *Cache) run(ctx context.Context, load Loader) {
	var names []model.GeneratorName
	if load != nil {
		for _, n := range load(ctx) {
			if !slices.Contains(names, n) {
				names = append(names, n)
			}
		}
	}

	for {
		select {
		case op := <-c.ops:
			op(&names)
		case <-c.done:
			return
		}
	}
}

// do hands op to the owner and waits until it has run.
func (c *Cache) do(ctx context.Context, op func(*[]model.GeneratorName)) error {
	select {
	case <-c.done:
		return errors.ErrCacheClosed
	default:
	}

	ran := make(chan struct{})
	wrapped := func(names *[]model.GeneratorName) {
		op(names)
		close(ran)
	}

	select {
	case c.ops <- wrapped:
	case <-c.done:
		return errors.ErrCacheClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	<-ran
	return nil
}

// Add records name as installed. Adding a name twice keeps a single entry.
func (c *Cache) Add(ctx context.Context, name model.GeneratorName) error {
	return c.do(ctx, func(names *[]model.GeneratorName) {
		if !slices.Contains(*names, name) {
			*names = append(*names, name)
		}
	})
}

// Remove drops the first entry equal to name.
func (c *Cache) Remove(ctx context.Context, name model.GeneratorName) error {
	return c.do(ctx, func(names *[]model.GeneratorName) {
		if i := slices.Index(*names, name); i >= 0 {
			*names = slices.Delete(*names, i, i+1)
		}
	})
}

// Contains reports whether name is in the set.
func (c *Cache) Contains(ctx context.Context, name model.GeneratorName) (bool, error) {
	var found bool
	err := c.do(ctx, func(names *[]model.GeneratorName) {
		found = slices.Contains(*names, name)
	})
	return found, err
}

// List returns a copy of the set in insertion order.
func (c *Cache) List(ctx context.Context) ([]model.GeneratorName, error) {
	var out []model.GeneratorName
	err := c.do(ctx, func(names *[]model.GeneratorName) {
		out = slices.Clone(*names)
	})
	if out == nil {
		out = []model.GeneratorName{}
	}
	return out, err
}

// Close stops the owner goroutine. Later operations fail with ErrCacheClosed.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
