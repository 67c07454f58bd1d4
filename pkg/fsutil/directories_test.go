package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "creates new directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "newdir")
			},
		},
		{
			name: "creates nested directories",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "parent", "child", "nested")
			},
		},
		{
			name: "succeeds when directory already exists",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			path := testCase.setup(t)

			require.NoError(t, EnsureDir(path))
			assert.DirExists(t, path)
		})
	}
}

func TestEnsureDir_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), FileModeDefault))

	assert.Error(t, EnsureDir(filepath.Join(file, "child")))
}

func TestEnsureFileDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b", "state.db")

	require.NoError(t, EnsureFileDir(file))
	assert.DirExists(t, filepath.Dir(file))
	assert.NoFileExists(t, file)
}
