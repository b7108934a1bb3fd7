//go:build integration

package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WalkDir(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "com", "acme"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "com", "acme", "App.java"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte(""), 0644))

	var files []string
	err := fs.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			rel, relErr := filepath.Rel(root, path)
			require.NoError(t, relErr)
			files = append(files, rel)
		}
		return nil
	})
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{"README.md", filepath.Join("com", "acme", "App.java")}, files)
}

func TestFS_WalkDir_Errors(t *testing.T) {
	fs := NewFS()
	root := t.TempDir()
	file := filepath.Join(root, "build.gradle")
	require.NoError(t, os.WriteFile(file, []byte(""), 0644))

	err := fs.WalkDir(file, func(string, iofs.DirEntry, error) error { return nil })
	assert.ErrorIs(t, err, ErrNotADirectory)

	err = fs.WalkDir(filepath.Join(root, "missing"), func(string, iofs.DirEntry, error) error { return nil })
	assert.True(t, fs.IsNotExist(err))
}
