package config

import (
	stderrors "errors"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/fsutil"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. GENHUB_SETTINGS_LOG_LEVEL.
const EnvPrefix = "GENHUB"

// Store is the live configuration. It reloads the file when it changes, so the
// settings accessors always return the latest valid values.
type Store struct {
	v    *viper.Viper
	path string

	mu  sync.RWMutex
	cfg *Config

	onChange []func(*Config)
}

// NewStore reads the configuration at path. A missing file yields the defaults
// plus any environment overrides.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	s := &Store{v: v, path: path}
	cfg, err := s.read()
	if err != nil {
		return nil, err
	}
	s.cfg = cfg
	return s, nil
}

// setDefaults registers every key so that Unmarshal also sees environment overrides.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("settings.log_level", d.Settings.LogLevel)
	v.SetDefault("settings.output_format", d.Settings.OutputFormat)
	v.SetDefault("settings.npm_command", d.Settings.NpmCommand)
	v.SetDefault("settings.registry_url", d.Settings.RegistryURL)
	v.SetDefault("settings.http_timeout", d.Settings.HTTPTimeout)
	v.SetDefault("settings.state_dir", d.Settings.StateDir)
	v.SetDefault("settings.listen_addr", d.Settings.ListenAddr)
	v.SetDefault("explore_generators.auto_update", d.ExploreGenerators.AutoUpdate)
	v.SetDefault("explore_generators.installation_location", d.ExploreGenerators.InstallationLocation)
	v.SetDefault("explore_generators.search_query", d.ExploreGenerators.SearchQuery)
	v.SetDefault("hooks.post_install", d.Hooks.PostInstall)
	v.SetDefault("hooks.post_uninstall", d.Hooks.PostUninstall)
	v.SetDefault("hooks.post_update", d.Hooks.PostUpdate)
}

func (s *Store) read() (*Config, error) {
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
		}
	}

	var cfg Config
	if err := s.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	if cfg.ExploreGenerators.SearchQuery == nil {
		cfg.ExploreGenerators.SearchQuery = []string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}
	return &cfg, nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Config returns a copy of the current configuration.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.clone()
}

// Reload re-reads the file. An invalid file leaves the current values in place.
func (s *Store) Reload() error {
	cfg, err := s.read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	callbacks := append([]func(*Config){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(cfg.clone())
	}
	return nil
}

// OnChange registers fn to run after every successful reload.
func (s *Store) OnChange(fn func(*Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Watch reloads the configuration whenever the file changes on disk. The
// directory is watched, so a file created later by config init or set is picked up.
func (s *Store) Watch() {
	if err := fsutil.EnsureFileDir(s.path); err != nil {
		logger.Warn("cannot create config directory, live reload disabled", logger.Fields{"path": s.path, "error": err.Error()})
		return
	}

	s.v.OnConfigChange(func(e fsnotify.Event) {
		if err := s.Reload(); err != nil {
			logger.Warn("ignoring invalid configuration change", logger.Fields{"path": e.Name, "error": err.Error()})
			return
		}
		logger.Debug("configuration reloaded", logger.Fields{"path": e.Name})
	})
	s.v.WatchConfig()
}

// AutoUpdate reports whether installed generators are updated daily.
func (s *Store) AutoUpdate() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.ExploreGenerators.AutoUpdate
}

// InstallationLocation returns the configured npm prefix, blank for global installs.
func (s *Store) InstallationLocation() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.ExploreGenerators.InstallationLocation
}

// SearchQuery returns a copy of the configured recommended search tags.
func (s *Store) SearchQuery() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.cfg.ExploreGenerators.SearchQuery...)
}
