package hooks

import (
	"github.com/glorpus-work/genhub/pkg/errors"
)

// DefaultHookManager is a HookManager running every hook with Tengo.
type DefaultHookManager struct {
	executor *TengoExecutor
}

// NewHookManager creates an empty hook manager.
func NewHookManager() *DefaultHookManager {
	return &DefaultHookManager{executor: NewTengoExecutor()}
}

// Execute runs the hook registered for hookType, if any.
func (m *DefaultHookManager) Execute(hookType HookType, ctx HookContext) error {
	if hookType == "" {
		return errors.ErrHookTypeEmpty
	}
	return m.executor.Execute(hookType, ctx)
}

// AddHook registers or replaces the hook for hook.Type.
func (m *DefaultHookManager) AddHook(hook Hook) error {
	if hook.Type == "" {
		return errors.ErrHookTypeEmpty
	}
	if !ValidHookType(hook.Type) {
		return ErrUnsupportedHookEvent(string(hook.Type))
	}
	m.executor.AddScript(hook.Type, hook.Content)
	return nil
}

// RemoveHook unregisters the hook for hookType.
func (m *DefaultHookManager) RemoveHook(hookType HookType) error {
	if hookType == "" {
		return errors.ErrHookTypeEmpty
	}
	m.executor.RemoveScript(hookType)
	return nil
}

// HasHook reports whether a hook is registered for hookType.
func (m *DefaultHookManager) HasHook(hookType HookType) bool {
	return m.executor.HasScript(hookType)
}
