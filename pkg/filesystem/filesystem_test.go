package filesystem_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/placer/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS(t *testing.T) {
	fsys, mem := filesystem.NewMemory()
	require.NoError(t, mem.MkdirAll("/project/docs", 0755))
	require.NoError(t, afero.WriteFile(mem, "/project/install.yml", []byte("version: 0.2.0\n"), 0644))

	t.Run("reads_file", func(t *testing.T) {
		data, err := fsys.ReadFile("/project/install.yml")
		require.NoError(t, err)
		assert.Equal(t, "version: 0.2.0\n", string(data))
	})

	t.Run("stat_directory", func(t *testing.T) {
		info, err := fsys.Stat("/project/docs")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("reading_directory_fails", func(t *testing.T) {
		_, err := fsys.ReadFile("/project/docs")
		assert.True(t, errors.Is(err, fs.ErrInvalid))
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := fsys.Stat("/project/install.toml")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "install.yml")
	require.NoError(t, os.WriteFile(path, []byte("pkgs: {}\n"), 0644))

	fsys := filesystem.NewOS()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pkgs: {}\n", string(data))

	info, err := fsys.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
