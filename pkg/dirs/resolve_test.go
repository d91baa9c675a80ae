package dirs_test

import (
	stderrors "errors"
	"regexp"
	"testing"

	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/testutil"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeholder = regexp.MustCompile(`@[A-Za-z_]+@`)

func TestDefaultsResolveWithoutPlaceholders(t *testing.T) {
	for _, scope := range []types.Scope{types.ScopeSystem, types.ScopeUser} {
		t.Run(string(scope), func(t *testing.T) {
			d, err := dirs.Resolve(scope, dirs.DirectorySet{}, testutil.NewFakeBaseDirectories())
			require.NoError(t, err)

			for _, e := range d.Entries() {
				assert.False(t, placeholder.MatchString(e.Value), "%s still has a placeholder: %s", e.Name, e.Value)
				assert.True(t, len(e.Value) > 0 && e.Value[0] == '/', "%s is not absolute: %s", e.Name, e.Value)
			}
		})
	}
}

func TestResolveSystemDefaults(t *testing.T) {
	d, err := dirs.Resolve(types.ScopeSystem, dirs.DirectorySet{}, nil)
	require.NoError(t, err)

	expected := dirs.DirectorySet{
		Prefix:          "/usr/local",
		ExecPrefix:      "/usr/local",
		Bindir:          "/usr/local/bin",
		Sbindir:         "/usr/local/sbin",
		Libdir:          "/usr/local/lib",
		Libexecdir:      "/usr/local/libexec",
		Datarootdir:     "/usr/local/share",
		Datadir:         "/usr/local/share",
		Sysconfdir:      "/usr/local/etc",
		Localstatedir:   "/usr/local/var",
		Runstatedir:     "/usr/local/var/run",
		Includedir:      "/usr/local/include",
		Docdir:          "/usr/local/share/doc",
		Mandir:          "/usr/local/share/man",
		PamModulesdir:   "/usr/local/lib/security",
		SystemdUnitsdir: "/usr/local/lib/systemd",
	}
	assert.Equal(t, expected, d)
}

func TestResolveSystemOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides dirs.DirectorySet
		check     map[dirs.Field]string
	}{
		{
			name:      "prefix_propagates_everywhere",
			overrides: dirs.DirectorySet{Prefix: "/usr"},
			check: map[dirs.Field]string{
				dirs.FieldBindir:          "/usr/bin",
				dirs.FieldDatadir:         "/usr/share",
				dirs.FieldRunstatedir:     "/usr/var/run",
				dirs.FieldMandir:          "/usr/share/man",
				dirs.FieldSystemdUnitsdir: "/usr/lib/systemd",
			},
		},
		{
			name:      "exec_prefix_only_affects_binaries_and_libraries",
			overrides: dirs.DirectorySet{ExecPrefix: "/opt/foo"},
			check: map[dirs.Field]string{
				dirs.FieldBindir:        "/opt/foo/bin",
				dirs.FieldLibdir:        "/opt/foo/lib",
				dirs.FieldPamModulesdir: "/opt/foo/lib/security",
				dirs.FieldDatadir:       "/usr/local/share",
				dirs.FieldIncludedir:    "/usr/local/include",
			},
		},
		{
			name:      "libdir_chain_resolves_through_exec_prefix",
			overrides: dirs.DirectorySet{Prefix: "/usr", Libdir: "@exec_prefix@/lib64"},
			check: map[dirs.Field]string{
				dirs.FieldLibdir:          "/usr/lib64",
				dirs.FieldPamModulesdir:   "/usr/lib64/security",
				dirs.FieldSystemdUnitsdir: "/usr/lib64/systemd",
			},
		},
		{
			name:      "sysconfdir_absolute_override",
			overrides: dirs.DirectorySet{Sysconfdir: "/etc"},
			check: map[dirs.Field]string{
				dirs.FieldSysconfdir: "/etc",
				dirs.FieldBindir:     "/usr/local/bin",
			},
		},
		{
			name:      "localstatedir_feeds_runstatedir",
			overrides: dirs.DirectorySet{Localstatedir: "/var"},
			check: map[dirs.Field]string{
				dirs.FieldRunstatedir: "/var/run",
			},
		},
		{
			name:      "trailing_separator_is_cleaned",
			overrides: dirs.DirectorySet{Bindir: "/opt/bin/"},
			check: map[dirs.Field]string{
				dirs.FieldBindir: "/opt/bin",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := dirs.Resolve(types.ScopeSystem, tt.overrides, nil)
			require.NoError(t, err)
			for field, want := range tt.check {
				assert.Equal(t, want, d.Get(field), "field %s", field)
			}
		})
	}
}

func TestResolveFollowsFixedOrder(t *testing.T) {
	// @libdir@ is only substituted into the PAM and systemd directories,
	// so sbindir keeps the literal token and is rejected.
	_, err := dirs.Resolve(types.ScopeSystem, dirs.DirectorySet{Sbindir: "@libdir@/sbin"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "sbindir", errors.GetErrorDetails(err)["field"])

	// @datarootdir@ runs after @localstatedir@, so a runstatedir that
	// references it stays unresolved as well.
	_, err = dirs.Resolve(types.ScopeSystem, dirs.DirectorySet{Runstatedir: "@datarootdir@/run"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolveRejectsInvalidOverrides(t *testing.T) {
	t.Run("relative_path", func(t *testing.T) {
		_, err := dirs.Resolve(types.ScopeSystem, dirs.DirectorySet{Bindir: "bin"}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown_placeholder", func(t *testing.T) {
		_, err := dirs.Resolve(types.ScopeSystem, dirs.DirectorySet{Datadir: "@XDG_DATA_HOME@"}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestResolveUserDefaults(t *testing.T) {
	d, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, testutil.NewFakeBaseDirectories())
	require.NoError(t, err)

	expected := dirs.DirectorySet{
		Bindir:          "/home/alice/.local/bin",
		Libdir:          "/home/alice/.local/lib",
		Libexecdir:      "/home/alice/.local/libexec",
		Datarootdir:     "/home/alice/.local/share",
		Datadir:         "/home/alice/.local/share",
		Sysconfdir:      "/home/alice/.config",
		Localstatedir:   "/home/alice/.local/share",
		Runstatedir:     "/run/user/1000",
		SystemdUnitsdir: "/home/alice/.config/systemd",
	}
	assert.Equal(t, expected, d)

	for _, f := range []dirs.Field{dirs.FieldSbindir, dirs.FieldIncludedir, dirs.FieldDocdir, dirs.FieldMandir, dirs.FieldPamModulesdir} {
		assert.False(t, d.Has(f), "%s must be unset in user scope", f)
	}
}

func TestResolveUserOverrides(t *testing.T) {
	t.Run("sysconfdir_feeds_systemd_unitsdir", func(t *testing.T) {
		d, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{Sysconfdir: "/home/alice/etc"}, testutil.NewFakeBaseDirectories())
		require.NoError(t, err)
		assert.Equal(t, "/home/alice/etc/systemd", d.SystemdUnitsdir)
	})

	t.Run("system_only_fields_are_ignored", func(t *testing.T) {
		d, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{Sbindir: "/home/alice/sbin", Mandir: "/home/alice/man"}, testutil.NewFakeBaseDirectories())
		require.NoError(t, err)
		assert.Empty(t, d.Sbindir)
		assert.Empty(t, d.Mandir)
	})

	t.Run("xdg_tokens_in_overrides", func(t *testing.T) {
		d, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{Bindir: "@XDG_DATA_HOME@/../bin"}, testutil.NewFakeBaseDirectories())
		require.NoError(t, err)
		assert.Equal(t, "/home/alice/.local/bin", d.Bindir)
	})
}

func TestResolveUserRuntimeDir(t *testing.T) {
	t.Run("insecure_runtime_dir_is_fatal", func(t *testing.T) {
		base := testutil.NewFakeBaseDirectories()
		base.RuntimeErr = errors.New(errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR found")

		_, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInsecureRuntimeDir))
	})

	t.Run("not_consulted_when_overridden", func(t *testing.T) {
		base := testutil.NewFakeBaseDirectories()
		base.RuntimeErr = errors.New(errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR found")

		d, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{Runstatedir: "/tmp/alice-run"}, base)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/alice-run", d.Runstatedir)
		assert.Equal(t, 0, base.RuntimeCalls)
	})
}

type failingBase struct {
	*testutil.FakeBaseDirectories
	dataErr error
}

func (f failingBase) DataHome() (string, error) {
	if f.dataErr != nil {
		return "", f.dataErr
	}
	return f.FakeBaseDirectories.DataHome()
}

func TestResolveUserExternalFailures(t *testing.T) {
	t.Run("provider_error", func(t *testing.T) {
		base := failingBase{FakeBaseDirectories: testutil.NewFakeBaseDirectories(), dataErr: stderrors.New("no home")}
		_, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalResolution))
	})

	t.Run("relative_base_directory", func(t *testing.T) {
		base := testutil.NewFakeBaseDirectories()
		base.ConfigDir = ".config"
		_, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalResolution))
	})

	t.Run("non_utf8_base_directory", func(t *testing.T) {
		base := testutil.NewFakeBaseDirectories()
		base.HomeDir = "/home/\xff"
		_, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalResolution))
	})

	t.Run("placeholder_in_base_directory", func(t *testing.T) {
		base := testutil.NewFakeBaseDirectories()
		base.DataDir = "/home/alice/@work@/share"
		var err error
		require.NotPanics(t, func() {
			_, err = dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalResolution))
	})

	t.Run("token_in_home_is_not_rewritten", func(t *testing.T) {
		base := testutil.NewFakeBaseDirectories()
		base.HomeDir = "/home/@XDG_DATA_HOME@"
		var err error
		require.NotPanics(t, func() {
			_, err = dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalResolution))
	})

	t.Run("missing_provider", func(t *testing.T) {
		_, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	})
}

func TestResolveIsDeterministic(t *testing.T) {
	base := testutil.NewFakeBaseDirectories()
	first, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
	require.NoError(t, err)
	second, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, base)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
