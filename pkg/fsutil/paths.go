package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/glorpus-work/genhub/pkg/platform"
)

const (
	// AppName is the name of the application used in paths
	AppName = "genhub"

	// ConfigFileName is the name of the configuration file inside the config directory.
	ConfigFileName = "config.yaml"

	// StateFileName is the name of the SQLite state database.
	StateFileName = "state.db"
)

// GetConfigDir returns the platform-specific configuration directory
// On Linux: ~/.config/genhub/
// On macOS: ~/Library/Application Support/genhub/
// On Windows: %AppData%\genhub\
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// GetDataHome returns the platform-specific base data directory
// On Linux: $XDG_DATA_HOME or ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func GetDataHome() (string, error) {
	switch runtime.GOOS {
	case platform.OSWindows:
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", errors.New("LOCALAPPDATA environment variable not set")
		}
		return localAppData, nil

	case platform.OSDarwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	default: // Linux, BSD, etc.
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return xdgDataHome, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// StatePath returns <stateDir>/genhub/state.db.
func StatePath(stateDir string) string {
	return filepath.Join(stateDir, AppName, StateFileName)
}
