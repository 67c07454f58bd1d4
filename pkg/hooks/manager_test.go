package hooks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/hooks"
	hookmocks "github.com/glorpus-work/genhub/pkg/hooks/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddAndExecuteHook(t *testing.T) {
	manager := hooks.NewHookManager()

	tests := []struct {
		name        string
		hook        hooks.Hook
		expectedErr error
	}{
		{
			name: "valid hooks",
			hook: hooks.Hook{Type: hooks.PostInstall, Content: `// nothing`},
		},
		{
			name:        "empty hooks type",
			hook:        hooks.Hook{Type: "", Content: "test content"},
			expectedErr: errors.ErrHookTypeEmpty,
		},
		{
			name:        "unsupported hooks type",
			hook:        hooks.Hook{Type: "pre-install", Content: "test content"},
			expectedErr: errors.ErrHookExecution,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := manager.AddHook(testCase.hook)
			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, manager.HasHook(testCase.hook.Type))
			assert.NoError(t, manager.Execute(testCase.hook.Type, hooks.HookContext{GeneratorName: "generator-foo"}))
		})
	}
}

func TestRemoveHook(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PostUninstall, Content: `x := 1`}))

	require.NoError(t, manager.RemoveHook(hooks.PostUninstall))
	assert.False(t, manager.HasHook(hooks.PostUninstall))
	assert.ErrorIs(t, manager.RemoveHook(""), errors.ErrHookTypeEmpty)
	assert.ErrorIs(t, manager.Execute("", hooks.HookContext{}), errors.ErrHookTypeEmpty)
}

func TestLoadHooksFromPaths(t *testing.T) {
	dir := t.TempDir()
	installScript := filepath.Join(dir, "post-install.tengo")
	require.NoError(t, os.WriteFile(installScript, []byte(`err := "from file"`), 0o644))

	manager := hooks.NewHookManager()
	err := hooks.LoadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostInstall:   installScript,
		hooks.PostUninstall: "  ",
	})
	require.NoError(t, err)

	assert.True(t, manager.HasHook(hooks.PostInstall))
	assert.False(t, manager.HasHook(hooks.PostUninstall))
	assert.ErrorIs(t, manager.Execute(hooks.PostInstall, hooks.HookContext{}), errors.ErrHookScript)
}

func TestLoadHooksFromPaths_MissingFile(t *testing.T) {
	manager := hooks.NewHookManager()
	err := hooks.LoadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostUpdate: filepath.Join(t.TempDir(), "missing.tengo"),
	})
	assert.ErrorIs(t, err, errors.ErrHookLoad)
}

func TestLoadHooksFromPaths_AddsConfiguredHooksOnly(t *testing.T) {
	installScript := filepath.Join(t.TempDir(), "post-install.tengo")
	require.NoError(t, os.WriteFile(installScript, []byte(`x := 1`), 0o644))

	ctrl := gomock.NewController(t)
	manager := hookmocks.NewMockHookManager(ctrl)
	manager.EXPECT().AddHook(hooks.Hook{Type: hooks.PostInstall, Content: `x := 1`}).Return(nil)

	require.NoError(t, hooks.LoadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostInstall: installScript,
	}))
}

func TestReloadHooksFromPaths(t *testing.T) {
	updateScript := filepath.Join(t.TempDir(), "post-update.tengo")
	require.NoError(t, os.WriteFile(updateScript, []byte(`err := "stale"`), 0o644))

	ctrl := gomock.NewController(t)
	manager := hookmocks.NewMockHookManager(ctrl)
	gomock.InOrder(
		manager.EXPECT().RemoveHook(hooks.PostInstall).Return(nil),
		manager.EXPECT().RemoveHook(hooks.PostUninstall).Return(nil),
		manager.EXPECT().AddHook(hooks.Hook{Type: hooks.PostUpdate, Content: `err := "stale"`}).Return(nil),
	)

	require.NoError(t, hooks.ReloadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostUpdate: updateScript,
	}))
}

func TestReloadHooksFromPaths_UnreadableScriptChangesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := hookmocks.NewMockHookManager(ctrl)

	err := hooks.ReloadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostInstall: filepath.Join(t.TempDir(), "missing.tengo"),
	})
	assert.ErrorIs(t, err, errors.ErrHookLoad)
}

func TestReloadHooksFromPaths_ReplacesAndRemoves(t *testing.T) {
	dir := t.TempDir()
	installScript := filepath.Join(dir, "post-install.tengo")
	uninstallScript := filepath.Join(dir, "post-uninstall.tengo")
	require.NoError(t, os.WriteFile(installScript, []byte(`x := 1`), 0o644))
	require.NoError(t, os.WriteFile(uninstallScript, []byte(`x := 1`), 0o644))

	manager := hooks.NewHookManager()
	require.NoError(t, hooks.LoadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostInstall:   installScript,
		hooks.PostUninstall: uninstallScript,
	}))

	require.NoError(t, os.WriteFile(installScript, []byte(`err := "changed"`), 0o644))
	require.NoError(t, hooks.ReloadHooksFromPaths(manager, map[hooks.HookType]string{
		hooks.PostInstall: installScript,
	}))

	assert.ErrorIs(t, manager.Execute(hooks.PostInstall, hooks.HookContext{}), errors.ErrHookScript)
	assert.False(t, manager.HasHook(hooks.PostUninstall))
}

func TestHookTemplate(t *testing.T) {
	for _, hookType := range hooks.HookTypes {
		assert.Contains(t, hooks.HookTemplate(hookType), "generatorName")
	}
	assert.Contains(t, hooks.HookTemplate("nope"), "Unknown hooks type")
}
