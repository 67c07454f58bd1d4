package hooks

import (
	"github.com/glorpus-work/genhub/pkg/errors"
)

// ErrUnsupportedHookEvent is returned when an unsupported hooks event is used.
func ErrUnsupportedHookEvent(event string) error {
	return errors.Wrapf(errors.ErrHookExecution, "unsupported hooks event: %s", event)
}

// ValidHookType reports whether t is one of HookTypes.
func ValidHookType(t HookType) bool {
	for _, known := range HookTypes {
		if t == known {
			return true
		}
	}
	return false
}
