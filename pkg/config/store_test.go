package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glorpus-work/genhub/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), fsutil.FileModeDefault))
}

func TestStore_Accessors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "explore_generators:\n  auto_update: false\n  installation_location: /opt/gens\n  search_query: [a, b]\n")

	store, err := NewStore(path)
	require.NoError(t, err)

	assert.Equal(t, path, store.Path())
	assert.False(t, store.AutoUpdate())
	assert.Equal(t, "/opt/gens", store.InstallationLocation())
	assert.Equal(t, []string{"a", "b"}, store.SearchQuery())

	q := store.SearchQuery()
	q[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, store.SearchQuery(), "accessor must return a copy")

	cfg := store.Config()
	cfg.ExploreGenerators.InstallationLocation = "elsewhere"
	assert.Equal(t, "/opt/gens", store.InstallationLocation(), "Config must return a copy")
}

func TestStore_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "explore_generators:\n  installation_location: first\n")

	store, err := NewStore(path)
	require.NoError(t, err)

	var notified *Config
	store.OnChange(func(c *Config) { notified = c })

	writeConfig(t, path, "explore_generators:\n  installation_location: second\n")
	require.NoError(t, store.Reload())
	assert.Equal(t, "second", store.InstallationLocation())
	require.NotNil(t, notified)
	assert.Equal(t, "second", notified.ExploreGenerators.InstallationLocation)

	writeConfig(t, path, "settings:\n  output_format: table\n")
	assert.Error(t, store.Reload())
	assert.Equal(t, "second", store.InstallationLocation(), "an invalid file keeps the last good values")
}

func TestStore_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "explore_generators:\n  auto_update: true\n")

	store, err := NewStore(path)
	require.NoError(t, err)
	store.Watch()

	writeConfig(t, path, "explore_generators:\n  auto_update: false\n")
	assert.Eventually(t, func() bool { return !store.AutoUpdate() }, 5*time.Second, 20*time.Millisecond)
}

func TestStore_WatchPicksUpFileCreatedLater(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genhub", "config.yaml")
	store, err := NewStore(path)
	require.NoError(t, err)
	require.True(t, store.AutoUpdate())

	store.Watch()
	_, err = os.Stat(filepath.Dir(path))
	require.NoError(t, err, "the config directory is created for watching")

	cfg := DefaultConfig()
	cfg.ExploreGenerators.AutoUpdate = false
	require.NoError(t, cfg.SaveConfig(path))
	assert.Eventually(t, func() bool { return !store.AutoUpdate() }, 5*time.Second, 20*time.Millisecond)
}
