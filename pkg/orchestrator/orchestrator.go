package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/hooks"
	"github.com/glorpus-work/genhub/pkg/metrics"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/notify"
	"github.com/glorpus-work/genhub/pkg/npm"
)

// Operations as recorded in metrics and passed to hooks.
const (
	OpInstall   = "install"
	OpUninstall = "uninstall"
	OpUpdate    = "update"
)

// Explorer ties the npm client, the registry and the user's settings together for
// generator search, install and uninstall. There is one Explorer per process;
// each connected UI gets its own Session.
type Explorer struct {
	NPM      PackageManager
	Registry RegistryClient
	Settings Settings
	Hooks    HookRunner
	Metrics  *metrics.Metrics
	Events   Events // Events for progress notifications

	notifier *notify.Hub
	busy     *BusySet

	mu       sync.RWMutex
	sessions map[string]*Session
}

// New constructs an Explorer. Messages go to notifier and to every attached session.
// Hooks and metrics can be nil.
func New(pm PackageManager, reg RegistryClient, settings Settings, notifier notify.Notifier, hookRunner HookRunner, m *metrics.Metrics, events Events) *Explorer {
	return &Explorer{
		NPM:      pm,
		Registry: reg,
		Settings: settings,
		Hooks:    hookRunner,
		Metrics:  m,
		Events:   events,
		notifier: notify.NewHub(notifier),
		busy:     NewBusySet(),
		sessions: make(map[string]*Session),
	}
}

// Busy returns the set of generators being handled.
func (e *Explorer) Busy() *BusySet {
	return e.busy
}

// Notifier returns the notifier reaching the console and every session.
func (e *Explorer) Notifier() notify.Notifier {
	return e.notifier
}

// Location returns the configured install location. It is read on every call.
func (e *Explorer) Location() npm.Location {
	return npm.LocationFor(e.Settings.InstallationLocation())
}

// ListInstalled lists the installed generators at the current location, bypassing
// any session cache.
func (e *Explorer) ListInstalled(ctx context.Context) []model.GeneratorName {
	return e.NPM.ListInstalled(ctx, e.Location())
}

// RecommendedQuery returns the configured recommended search tags without duplicates.
func (e *Explorer) RecommendedQuery() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, q := range e.Settings.SearchQuery() {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}

// Search queries the registry and flags every hit that is currently being handled.
// Failures are logged and shown to the user before being returned.
func (e *Explorer) Search(ctx context.Context, query, tag string) (*model.SearchResult, error) {
	return e.search(ctx, query, tag, e.notifier)
}

// search reports a failure through n only, so one UI's failed search is not shown
// on the others.
func (e *Explorer) search(ctx context.Context, query, tag string, n notify.Notifier) (*model.SearchResult, error) {
	url := e.Registry.QueryURL(query, tag)

	start := time.Now()
	res, err := e.Registry.Search(ctx, url)
	e.Metrics.ObserveSearch(time.Since(start))
	if err != nil {
		logger.Error(err.Error(), logger.Fields{"url": url})
		n.Error(failedMessage("Failed to get generators with the queryUrl "+url, err))
		return nil, err
	}

	objects := make([]model.GeneratorInfo, 0, len(res.Objects))
	for _, gen := range res.Objects {
		gen.DisabledToHandle = e.busy.Has(gen.Package.Name)
		objects = append(objects, gen)
	}
	return &model.SearchResult{Objects: objects, Total: res.Total}, nil
}

// InstallGenerator installs the latest version of name, showing progress to the user.
func (e *Explorer) InstallGenerator(ctx context.Context, name model.GeneratorName) error {
	if err := model.ValidateName(name); err != nil {
		return err
	}
	return e.installGenerator(ctx, name, true)
}

// UpdateGenerator reinstalls the latest version of name without per-item messages.
func (e *Explorer) UpdateGenerator(ctx context.Context, name model.GeneratorName) error {
	if err := model.ValidateName(name); err != nil {
		return err
	}
	return e.installGenerator(ctx, name, false)
}

// UninstallGenerator removes name.
func (e *Explorer) UninstallGenerator(ctx context.Context, name model.GeneratorName) error {
	if err := model.ValidateName(name); err != nil {
		return err
	}
	return e.uninstallGenerator(ctx, name)
}

func (e *Explorer) installGenerator(ctx context.Context, name model.GeneratorName, interactive bool) (err error) {
	e.markBusy(name)
	msg := installingMessage(name)
	dismiss := func() {}
	if interactive {
		dismiss = e.notifier.Status(msg)
	}

	op, hookType := OpInstall, hooks.PostInstall
	if !interactive {
		op, hookType = OpUpdate, hooks.PostUpdate
	}

	defer func() {
		e.unmarkBusy(name)
		e.updateBeingHandled(ctx, name, false)
		dismiss()
		e.Metrics.RecordOperation(op, err)
	}()

	logger.Debug(msg)
	loc := e.Location()
	e.updateBeingHandled(ctx, name, true)
	emit(e.Events, Event{Phase: "installing", ID: name, Msg: loc.String()})

	if err = e.NPM.Install(ctx, loc, name); err != nil {
		logger.Error(err.Error(), logger.Fields{"generator": name})
		e.notifier.Error(failedMessage("Failed to install "+name, err))
		emit(e.Events, Event{Phase: "error", ID: name, Msg: err.Error()})
		return err
	}

	done := installedMessage(name)
	logger.Debug(done)
	if interactive {
		e.notifier.Info(done)
	}
	e.runHook(hookType, op, name, loc)
	emit(e.Events, Event{Phase: "done", ID: name})
	return nil
}

// uninstallGenerator tells the UI when the uninstall starts but not when it ends.
func (e *Explorer) uninstallGenerator(ctx context.Context, name model.GeneratorName) (err error) {
	e.markBusy(name)
	msg := uninstallingMessage(name)
	dismiss := e.notifier.Status(msg)

	defer func() {
		e.unmarkBusy(name)
		dismiss()
		e.Metrics.RecordOperation(OpUninstall, err)
	}()

	logger.Debug(msg)
	loc := e.Location()
	e.updateBeingHandled(ctx, name, true)
	emit(e.Events, Event{Phase: "uninstalling", ID: name, Msg: loc.String()})

	if err = e.NPM.Uninstall(ctx, loc, name); err != nil {
		logger.Error(err.Error(), logger.Fields{"generator": name})
		e.notifier.Error(failedMessage("Failed to uninstall "+name, err))
		emit(e.Events, Event{Phase: "error", ID: name, Msg: err.Error()})
		return err
	}

	done := uninstalledMessage(name)
	logger.Debug(done)
	e.notifier.Info(done)
	e.runHook(hooks.PostUninstall, OpUninstall, name, loc)
	emit(e.Events, Event{Phase: "done", ID: name})
	return nil
}

func (e *Explorer) markBusy(name model.GeneratorName) {
	e.busy.Add(name)
	e.Metrics.SetBusy(e.busy.Len())
}

func (e *Explorer) unmarkBusy(name model.GeneratorName) {
	e.busy.Discard(name)
	e.Metrics.SetBusy(e.busy.Len())
}

// runHook runs a lifecycle hook. A failing hook is reported but does not fail the
// operation, which already happened.
func (e *Explorer) runHook(hookType hooks.HookType, op string, name model.GeneratorName, loc npm.Location) {
	if e.Hooks == nil {
		return
	}
	err := e.Hooks.Execute(hookType, hooks.HookContext{
		GeneratorName: name,
		Operation:     op,
		Location:      loc.String(),
	})
	if err != nil {
		logger.Warn("hook failed", logger.Fields{"hook": string(hookType), "generator": name, "error": err.Error()})
		e.notifier.Error(fmt.Sprintf("%s hook failed for %s: %s", hookType, name, err))
	}
}

// updateBeingHandled tells every attached UI whether name is being handled.
func (e *Explorer) updateBeingHandled(ctx context.Context, name model.GeneratorName, handled bool) {
	for _, s := range e.Sessions() {
		if s.ui == nil {
			continue
		}
		if err := s.ui.Invoke(ctx, MethodUpdateBeingHandledGenerator, []any{name, handled}); err != nil {
			logger.Debug("failed to notify UI", logger.Fields{"session": s.ID, "error": err.Error()})
		}
	}
}

// Sessions returns the attached sessions.
func (e *Explorer) Sessions() []*Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		out = append(out, s)
	}
	return out
}
