package cli

import (
	"fmt"
	"os"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/config"
	"github.com/glorpus-work/genhub/pkg/hooks"
	"github.com/glorpus-work/genhub/pkg/metrics"
	"github.com/glorpus-work/genhub/pkg/notify"
	"github.com/glorpus-work/genhub/pkg/npm"
	"github.com/glorpus-work/genhub/pkg/orchestrator"
	"github.com/glorpus-work/genhub/pkg/registry"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	NoColor      *bool
	OutputFormat *string
)

// app is the wired stack shared by the commands.
type app struct {
	store    *config.Store
	cfg      *config.Config
	npm      *npm.Client
	registry *registry.Client
	console  *notify.Console
	explorer *orchestrator.Explorer
}

// newApp loads the configuration and wires the npm client, the registry client,
// hooks and the console notifier into an Explorer. m may be nil.
func newApp(m *metrics.Metrics) (*app, error) {
	store, err := loadStore()
	if err != nil {
		return nil, err
	}
	cfg := store.Config()

	hookManager := hooks.NewHookManager()
	if err := hooks.LoadHooksFromPaths(hookManager, cfg.HookPaths()); err != nil {
		return nil, fmt.Errorf("failed to load hooks: %w", err)
	}
	store.OnChange(func(c *config.Config) {
		if err := hooks.ReloadHooksFromPaths(hookManager, c.HookPaths()); err != nil {
			logger.Warn("keeping previous hooks", logger.Fields{"error": err.Error()})
			return
		}
		logger.Debug("hooks reloaded")
	})

	console := notify.NewConsole(os.Stderr)
	if NoColor != nil && *NoColor {
		console.DisableColor()
	}

	a := &app{
		store:    store,
		cfg:      cfg,
		npm:      npm.NewClient(npm.NewExecRunner(), npmCommand(cfg.Settings.NpmCommand)),
		registry: registry.New(cfg.Settings.RegistryURL, cfg.Settings.HTTPTimeout),
		console:  console,
	}
	events := orchestrator.Events{OnEvent: func(e orchestrator.Event) {
		logger.Debug(e.Msg, logger.Fields{"phase": e.Phase, "generator": e.ID})
	}}
	a.explorer = orchestrator.New(a.npm, a.registry, store, console, hookManager, m, events)
	return a, nil
}

// npmCommand maps the portable default to the platform executable.
func npmCommand(configured string) string {
	if configured == "" || configured == "npm" {
		return npm.DefaultCommand()
	}
	return configured
}

// loadStore loads the live configuration and applies its logging settings.
func loadStore() (*config.Store, error) {
	store, err := config.NewStore(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	InitLogging(store.Config())
	return store, nil
}

// loadConfig loads a snapshot of the configuration.
func loadConfig() (*config.Config, error) {
	store, err := loadStore()
	if err != nil {
		return nil, err
	}
	return store.Config(), nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes the load fail with a descriptive error.
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

func outputFormat() string {
	if OutputFormat != nil && *OutputFormat != "" {
		return *OutputFormat
	}
	return FormatTable
}
