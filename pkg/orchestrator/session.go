package orchestrator

import (
	"context"

	"github.com/glorpus-work/genhub/pkg/installed"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/notify"
	"github.com/google/uuid"
)

// Session is the state of one connected UI: its view of the installed generators
// and the generator run it is tracking.
type Session struct {
	ID string

	explorer  *Explorer
	ui        UI
	notifier  notify.Notifier
	installed *installed.Cache
	events    *notify.GeneratorEvents
	detach    func()
}

// NewSession attaches a UI. Listing the installed generators starts right away; the
// first operation that needs the list waits for it. ui may be nil for a local session.
func (e *Explorer) NewSession(ctx context.Context, ui UI) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		explorer: e,
		ui:       ui,
		detach:   func() {},
	}

	s.installed = installed.New(context.WithoutCancel(ctx), func(ctx context.Context) []model.GeneratorName {
		return e.ListInstalled(ctx)
	})

	if ui != nil {
		remote := notify.NewRemote(ui)
		s.notifier = remote
		s.detach = e.notifier.Attach(remote)
	} else {
		s.notifier = e.notifier
	}
	s.events = notify.NewGeneratorEvents(s.notifier)

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()
	e.Metrics.IncSessions()
	return s
}

// Close detaches the session. Operations it started keep running.
func (s *Session) Close() {
	e := s.explorer
	e.mu.Lock()
	_, attached := e.sessions[s.ID]
	delete(e.sessions, s.ID)
	e.mu.Unlock()

	if !attached {
		return
	}
	s.detach()
	s.installed.Close()
	e.Metrics.DecSessions()
}

// Events returns the generator run tracker of this session.
func (s *Session) Events() *notify.GeneratorEvents {
	return s.events
}

// Search returns the registry hits for query and tag. A failure is shown on this
// session's UI only.
func (s *Session) Search(ctx context.Context, query, tag string) (*model.SearchResult, error) {
	return s.explorer.search(ctx, query, tag, s.notifier)
}

// Install installs the generator and records it as installed on success.
func (s *Session) Install(ctx context.Context, gen model.GeneratorDescriptor) error {
	if err := gen.Validate(); err != nil {
		return err
	}
	name := gen.Name()
	if err := s.explorer.installGenerator(ctx, name, true); err != nil {
		return err
	}
	return s.installed.Add(ctx, name)
}

// Uninstall uninstalls the generator and drops it from the installed set on success.
func (s *Session) Uninstall(ctx context.Context, gen model.GeneratorDescriptor) error {
	if err := gen.Validate(); err != nil {
		return err
	}
	name := gen.Name()
	if err := s.explorer.uninstallGenerator(ctx, name); err != nil {
		return err
	}
	return s.installed.Remove(ctx, name)
}

// IsInstalled reports whether the generator is in the installed set.
func (s *Session) IsInstalled(ctx context.Context, gen model.GeneratorDescriptor) (bool, error) {
	return s.installed.Contains(ctx, gen.Name())
}

// Installed returns the session's installed set.
func (s *Session) Installed(ctx context.Context) ([]model.GeneratorName, error) {
	return s.installed.List(ctx)
}

// RecommendedQuery returns the configured recommended search tags.
func (s *Session) RecommendedQuery() []string {
	return s.explorer.RecommendedQuery()
}
