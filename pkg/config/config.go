// Package config provides configuration management for genhub.
// It handles loading, validating, and saving the YAML configuration file and
// exposes the explore-generators preferences that are read on every operation.
// Values can be overridden through GENHUB_ environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/fsutil"
	"github.com/glorpus-work/genhub/pkg/hooks"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// General settings
	Settings Settings `yaml:"settings" mapstructure:"settings"`

	// Preferences of the generator browser
	ExploreGenerators ExploreGenerators `yaml:"explore_generators" mapstructure:"explore_generators"`

	// Lifecycle hook scripts
	Hooks HooksConfig `yaml:"hooks" mapstructure:"hooks"`
}

// Settings represents general application settings.
type Settings struct {
	// Output settings
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`         // debug, info, warn, error
	OutputFormat string `yaml:"output_format" mapstructure:"output_format"` // text, logfmt, json

	// npm settings
	NpmCommand  string        `yaml:"npm_command" mapstructure:"npm_command"`
	RegistryURL string        `yaml:"registry_url" mapstructure:"registry_url"`
	HTTPTimeout time.Duration `yaml:"http_timeout" mapstructure:"http_timeout"`

	// State settings
	StateDir string `yaml:"state_dir,omitempty" mapstructure:"state_dir"`

	// Server settings
	ListenAddr string `yaml:"listen_addr" mapstructure:"listen_addr"`
}

// ExploreGenerators holds the user preferences of the generator browser.
type ExploreGenerators struct {
	AutoUpdate           bool     `yaml:"auto_update" mapstructure:"auto_update"`
	InstallationLocation string   `yaml:"installation_location" mapstructure:"installation_location"`
	SearchQuery          []string `yaml:"search_query" mapstructure:"search_query"`
}

// HooksConfig holds the paths of the lifecycle hook scripts. Blank paths disable a hook.
type HooksConfig struct {
	PostInstall   string `yaml:"post_install" mapstructure:"post_install"`
	PostUninstall string `yaml:"post_uninstall" mapstructure:"post_uninstall"`
	PostUpdate    string `yaml:"post_update" mapstructure:"post_update"`
}

// Default configuration values.
const (
	// DefaultRegistryURL is the public npm registry.
	DefaultRegistryURL = "https://registry.npmjs.com"

	// DefaultListenAddr is where `genhub serve` listens.
	DefaultListenAddr = "127.0.0.1:8733"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	stateDir, err := fsutil.GetDataHome()
	if err != nil {
		stateDir = os.TempDir()
	}

	return &Config{
		Settings: Settings{
			LogLevel:     "info",
			OutputFormat: "text",
			NpmCommand:   "npm",
			RegistryURL:  DefaultRegistryURL,
			StateDir:     stateDir,
			ListenAddr:   DefaultListenAddr,
		},
		ExploreGenerators: ExploreGenerators{
			AutoUpdate:  true,
			SearchQuery: []string{},
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	store, err := NewStore(absPath)
	if err != nil {
		return nil, err
	}
	return store.Config(), nil
}

// SaveConfig saves configuration to a file.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureFileDir(absPath); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	_ = file.Close()

	// Atomically replace the config file
	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	return validateSettings(c.Settings)
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeoutNegative
	}
	if strings.TrimSpace(s.NpmCommand) == "" {
		return errors.ErrNpmCommandEmpty
	}
	validFormats := map[string]bool{"text": true, "logfmt": true, "json": true}
	if !validFormats[s.OutputFormat] {
		return errors.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	path, err := fsutil.GetConfigPath()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return path, nil
}

// GetStatePath returns the path of the SQLite state database.
func (c *Config) GetStatePath() string {
	stateDir := c.Settings.StateDir
	if stateDir == "" {
		stateDir = DefaultConfig().Settings.StateDir
	}
	return fsutil.StatePath(stateDir)
}

// HookPaths maps each hook type to its configured script path.
func (c *Config) HookPaths() map[hooks.HookType]string {
	return map[hooks.HookType]string{
		hooks.PostInstall:   c.Hooks.PostInstall,
		hooks.PostUninstall: c.Hooks.PostUninstall,
		hooks.PostUpdate:    c.Hooks.PostUpdate,
	}
}

// clone returns a deep copy.
func (c *Config) clone() *Config {
	out := *c
	out.ExploreGenerators.SearchQuery = append([]string{}, c.ExploreGenerators.SearchQuery...)
	return &out
}
