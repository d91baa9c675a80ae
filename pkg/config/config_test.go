package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/placer/pkg/config"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/testutil"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME at an empty directory and clears the
// placer environment
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, config.EnvPrefix) {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.False(t, cfg.System)
	assert.False(t, cfg.RustDebug)
	assert.True(t, cfg.Dirs.IsEmpty())
	assert.Equal(t, types.ScopeUser, cfg.Scope())
}

func TestLoadUserConfigFile(t *testing.T) {
	home := isolate(t)
	testutil.CreateFile(t, filepath.Join(home, ".config", "placer"), "placer.toml", `
rust_debug = true

[dirs]
bindir = "/home/alice/bin"
`)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.RustDebug)
	assert.Equal(t, "/home/alice/bin", cfg.Dirs.Bindir)
	assert.Equal(t, filepath.Join(home, ".config", "placer", "placer.toml"), config.UserConfigPath())
}

func TestLoadLayering(t *testing.T) {
	home := isolate(t)
	path := testutil.CreateFile(t, home, "custom.toml", `
[dirs]
prefix = "/opt/file"
bindir = "/opt/file/bin"
sysconfdir = "/opt/file/etc"
`)

	t.Setenv("PLACER_DIRS_BINDIR", "/opt/env/bin")
	t.Setenv("PLACER_DIRS_EXEC_PREFIX", "/opt/env")
	t.Setenv("PLACER_SYSTEM", "true")

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: path,
		Flags:      map[string]interface{}{"dirs.sysconfdir": "/opt/flag/etc"},
	})
	require.NoError(t, err)

	assert.True(t, cfg.System)
	assert.Equal(t, types.ScopeSystem, cfg.Scope())
	assert.Equal(t, "/opt/file", cfg.Dirs.Prefix)
	assert.Equal(t, "/opt/env", cfg.Dirs.ExecPrefix)
	assert.Equal(t, "/opt/env/bin", cfg.Dirs.Bindir)
	assert.Equal(t, "/opt/flag/etc", cfg.Dirs.Sysconfdir)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		home := isolate(t)
		_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(home, "missing.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_toml", func(t *testing.T) {
		home := isolate(t)
		path := testutil.CreateFile(t, home, "bad.toml", "[dirs\n")
		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unknown_key", func(t *testing.T) {
		home := isolate(t)
		path := testutil.CreateFile(t, home, "typo.toml", "[dirs]\nbinddir = \"/opt/bin\"\n")
		_, err := config.Load(config.LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, config.SystemConfigPath, config.DefaultPath(true))
	assert.Equal(t, config.UserConfigPath(), config.DefaultPath(false))
}

func TestGenerateConfigContent(t *testing.T) {
	content := config.GenerateConfigContent()

	assert.Contains(t, content, "# system = false")
	assert.Contains(t, content, "# bindir = \"\"")
	assert.Contains(t, content, "\n[dirs]\n")
	assert.Contains(t, content, "# placer configuration")
	assert.NotContains(t, content, "\nsystem = false")
}
