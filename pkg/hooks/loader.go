package hooks

import (
	"os"
	"strings"

	"github.com/glorpus-work/genhub/pkg/errors"
)

// LoadHooksFromPaths reads the script configured for each hook type and registers
// it with manager. Blank paths are skipped.
func LoadHooksFromPaths(manager HookManager, paths map[HookType]string) error {
	scripts, err := readScripts(paths)
	if err != nil {
		return err
	}
	for _, hookType := range HookTypes {
		content, ok := scripts[hookType]
		if !ok {
			continue
		}
		if err := manager.AddHook(Hook{Type: hookType, Content: content}); err != nil {
			return errors.Wrapf(err, "error adding hooks %s", hookType)
		}
	}
	return nil
}

// ReloadHooksFromPaths makes manager match paths after a configuration change:
// configured hooks are replaced with the current file content and the others are
// removed. manager is left untouched when any script cannot be read.
func ReloadHooksFromPaths(manager HookManager, paths map[HookType]string) error {
	scripts, err := readScripts(paths)
	if err != nil {
		return err
	}
	for _, hookType := range HookTypes {
		content, ok := scripts[hookType]
		if !ok {
			if err := manager.RemoveHook(hookType); err != nil {
				return errors.Wrapf(err, "error removing hooks %s", hookType)
			}
			continue
		}
		if err := manager.AddHook(Hook{Type: hookType, Content: content}); err != nil {
			return errors.Wrapf(err, "error adding hooks %s", hookType)
		}
	}
	return nil
}

func readScripts(paths map[HookType]string) (map[HookType]string, error) {
	scripts := make(map[HookType]string, len(HookTypes))
	for _, hookType := range HookTypes {
		path := strings.TrimSpace(paths[hookType])
		if path == "" {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrHookLoad, "error reading hooks file %s: %v", path, err)
		}
		scripts[hookType] = string(content)
	}
	return scripts, nil
}

// HookTemplate generates a template for a hooks script.
func HookTemplate(hookType HookType) string {
	switch hookType {
	case PostInstall:
		return `// Post-install hook
// This script runs after a generator was installed from the UI or the CLI
// Available variables:
// - generatorName: string - npm package name of the generator
// - operation: string - "install"
// - location: string - npm location flags, "-g" or "--prefix <path>"

// Example: print a note
/*
fmt := import("fmt")
fmt.println("installed " + generatorName)
*/`

	case PostUninstall:
		return `// Post-uninstall hook
// This script runs after a generator was uninstalled
// Available variables: same as post-install, with operation "uninstall"

// Example: fail the hook
/*
err := "cleanup failed for " + generatorName
*/`

	case PostUpdate:
		return `// Post-update hook
// This script runs after the daily auto-update reinstalled a generator
// Available variables: same as post-install, with operation "update"`

	default:
		return "// Unknown hooks type: " + string(hookType)
	}
}
