//go:generate mockgen -destination=./mocks/hooks.go . HookManager

// Package hooks runs user-supplied Tengo scripts after generator lifecycle events.
package hooks

// HookType represents the type of hooks.
type HookType string

// Supported hooks types.
const (
	PostInstall   HookType = "post-install"
	PostUninstall HookType = "post-uninstall"
	PostUpdate    HookType = "post-update"
)

// HookTypes lists the supported hook types.
var HookTypes = []HookType{PostInstall, PostUninstall, PostUpdate}

// Hook represents a hooks script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hooks.
type HookContext struct {
	GeneratorName string
	Operation     string
	Location      string
	Vars          map[string]interface{}
}

// HookManager defines the interface for managing hooks.
type HookManager interface {
	// Execute runs the specified hooks type with the given context
	Execute(hookType HookType, ctx HookContext) error

	// AddHook adds a new hooks
	AddHook(hook Hook) error

	// RemoveHook removes a hooks of the specified type
	RemoveHook(hookType HookType) error

	// HasHook checks if a hooks of the specified type exists
	HasHook(hookType HookType) bool
}
