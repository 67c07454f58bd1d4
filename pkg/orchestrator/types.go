//go:generate mockgen -destination=./mocks/orchestrator.go . PackageManager,RegistryClient,Settings,UI,HookRunner

package orchestrator

import (
	"context"

	"github.com/glorpus-work/genhub/pkg/hooks"
	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/glorpus-work/genhub/pkg/npm"
)

// PackageManager is the subset of the npm client used by the orchestrator.
type PackageManager interface {
	ListInstalled(ctx context.Context, loc npm.Location) []model.GeneratorName
	Install(ctx context.Context, loc npm.Location, name model.GeneratorName) error
	Uninstall(ctx context.Context, loc npm.Location, name model.GeneratorName) error
}

// RegistryClient searches the package registry.
type RegistryClient interface {
	QueryURL(query, tag string) string
	Search(ctx context.Context, url string) (*model.SearchResponse, error)
}

// Settings are the user preferences read on every operation, so a changed value
// takes effect on the next call.
type Settings interface {
	AutoUpdate() bool
	InstallationLocation() string
	SearchQuery() []string
}

// UI is the remote side of a session; the orchestrator calls methods on it.
type UI interface {
	Invoke(ctx context.Context, method string, params []any) error
}

// HookRunner runs lifecycle hook scripts.
type HookRunner interface {
	Execute(hookType hooks.HookType, ctx hooks.HookContext) error
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // installing|uninstalling|done|error
	ID    string // generator name
	Msg   string
}

// Events carries callbacks for progress events.
type Events struct {
	OnEvent func(Event)
}

func emit(h Events, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}
