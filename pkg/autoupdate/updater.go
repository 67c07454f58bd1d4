//go:generate mockgen -destination=./mocks/autoupdate.go . Generators,Store,Settings

// Package autoupdate reinstalls the installed generators at their latest version,
// at most once a day.
package autoupdate

import (
	"context"
	"time"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/notify"
	"github.com/glorpus-work/genhub/pkg/state"
	"golang.org/x/sync/errgroup"
)

const (
	// Interval is the minimum time between two automatic updates.
	Interval = 24 * time.Hour

	// FinishedDisplay is how long the finished message stays visible.
	FinishedDisplay = 10 * time.Second

	UpdatingMessage = "Auto updating of installed generators..."
	FinishedMessage = "Finished auto updating of installed generators."
)

// Generators lists and updates installed generators.
type Generators interface {
	ListInstalled(ctx context.Context) []model.GeneratorName
	UpdateGenerator(ctx context.Context, name model.GeneratorName) error
}

// Store persists the time of the last update.
type Store interface {
	GetInt64(ctx context.Context, key string) (int64, bool, error)
	SetInt64(ctx context.Context, key string, value int64) error
}

// Settings holds the user's auto-update preference.
type Settings interface {
	AutoUpdate() bool
}

// Updater runs the daily update.
type Updater struct {
	generators Generators
	store      Store
	settings   Settings
	notifier   notify.Notifier
	now        func() time.Time
}

// New creates an Updater. A nil notifier discards messages.
func New(generators Generators, store Store, settings Settings, notifier notify.Notifier) *Updater {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Updater{
		generators: generators,
		store:      store,
		settings:   settings,
		notifier:   notifier,
		now:        time.Now,
	}
}

// WithClock replaces the clock, for tests.
func (u *Updater) WithClock(now func() time.Time) *Updater {
	u.now = now
	return u
}

// Due reports whether more than Interval passed since the last recorded update.
// A missing or unreadable timestamp counts as never.
func (u *Updater) Due(ctx context.Context) bool {
	last, _, err := u.store.GetInt64(ctx, state.LastAutoUpdateKey)
	if err != nil {
		logger.Warn("failed to read last auto update time", logger.Fields{"error": err.Error()})
		last = 0
	}
	return u.now().UnixMilli()-last > Interval.Milliseconds()
}

// Run updates all installed generators if the last update is older than Interval.
// The new timestamp is stored before anything else, whether or not auto update is
// enabled.
func (u *Updater) Run(ctx context.Context) error {
	if !u.Due(ctx) {
		logger.Debug("auto update not due")
		return nil
	}

	if err := u.store.SetInt64(ctx, state.LastAutoUpdateKey, u.now().UnixMilli()); err != nil {
		logger.Warn("failed to store auto update time", logger.Fields{"error": err.Error()})
	}

	if !u.settings.AutoUpdate() {
		logger.Debug("auto update disabled")
		return nil
	}
	return u.UpdateAll(ctx)
}

// UpdateAll reinstalls every installed generator concurrently and waits for all of
// them. One failing install does not stop the others; the first failure is returned.
func (u *Updater) UpdateAll(ctx context.Context) error {
	names := u.generators.ListInstalled(ctx)
	if len(names) == 0 {
		return nil
	}

	logger.Debug(UpdatingMessage, logger.Fields{"count": len(names)})
	dismiss := u.notifier.Status(UpdatingMessage)

	var g errgroup.Group
	for _, name := range names {
		g.Go(func() error {
			return u.generators.UpdateGenerator(ctx, name)
		})
	}
	err := g.Wait()

	dismiss()
	u.notifier.StatusFor(FinishedMessage, FinishedDisplay)
	return err
}
