package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/genhub/pkg/errors"
)

// Keys lists the keys accepted by SetValue and GetValue, in display order.
var Keys = []string{
	"log_level",
	"output_format",
	"npm_command",
	"registry_url",
	"http_timeout",
	"state_dir",
	"listen_addr",
	"auto_update",
	"installation_location",
	"search_query",
	"hooks.post_install",
	"hooks.post_uninstall",
	"hooks.post_update",
}

// SetValue sets a configuration value by key.
// search_query takes a comma-separated list; an empty value clears it.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case "log_level":
		c.Settings.LogLevel = value
	case "output_format":
		c.Settings.OutputFormat = value
	case "npm_command":
		c.Settings.NpmCommand = value
	case "registry_url":
		c.Settings.RegistryURL = value
	case "http_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %s", key, value)
		}
		c.Settings.HTTPTimeout = d
	case "state_dir":
		c.Settings.StateDir = value
	case "listen_addr":
		c.Settings.ListenAddr = value
	case "auto_update":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		c.ExploreGenerators.AutoUpdate = boolVal
	case "installation_location":
		c.ExploreGenerators.InstallationLocation = value
	case "search_query":
		c.ExploreGenerators.SearchQuery = splitList(value)
	case "hooks.post_install":
		c.Hooks.PostInstall = value
	case "hooks.post_uninstall":
		c.Hooks.PostUninstall = value
	case "hooks.post_update":
		c.Hooks.PostUpdate = value
	default:
		return fmt.Errorf("%w: %s", errors.ErrUnknownConfigKey, key)
	}
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case "log_level":
		return c.Settings.LogLevel, nil
	case "output_format":
		return c.Settings.OutputFormat, nil
	case "npm_command":
		return c.Settings.NpmCommand, nil
	case "registry_url":
		return c.Settings.RegistryURL, nil
	case "http_timeout":
		return c.Settings.HTTPTimeout.String(), nil
	case "state_dir":
		return c.Settings.StateDir, nil
	case "listen_addr":
		return c.Settings.ListenAddr, nil
	case "auto_update":
		return strconv.FormatBool(c.ExploreGenerators.AutoUpdate), nil
	case "installation_location":
		return c.ExploreGenerators.InstallationLocation, nil
	case "search_query":
		return strings.Join(c.ExploreGenerators.SearchQuery, ","), nil
	case "hooks.post_install":
		return c.Hooks.PostInstall, nil
	case "hooks.post_uninstall":
		return c.Hooks.PostUninstall, nil
	case "hooks.post_update":
		return c.Hooks.PostUpdate, nil
	default:
		return "", fmt.Errorf("%w: %s", errors.ErrUnknownConfigKey, key)
	}
}

// ToMap returns every key with its value, for display.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys))
	for _, key := range Keys {
		value, _ := c.GetValue(key)
		result[key] = value
	}
	return result
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
