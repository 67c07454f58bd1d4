package cli

import (
	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/config"
)

// InitLogging configures the global logger from settings. --verbose forces debug.
func InitLogging(cfg *config.Config) {
	level := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}
	logger.InitLogger(level, logger.ParseFormat(cfg.Settings.OutputFormat))
}
