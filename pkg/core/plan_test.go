package core_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/placer/pkg/core"
	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/testutil"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectManifest = `
version: 0.2.0
pkgs:
  foo:
    type: rust
    exe: [foo]
    config: [foo.conf]
    systemd-units: [foo.service]
  foo-docs:
    docs: [README.md]
    man: [docs/foo.1]
`

func setup(t *testing.T, doc string) (*testutil.ProjectFS, *testutil.FakeRunner) {
	t.Helper()
	p := testutil.NewProjectFS(t, "/src/foo")
	p.WriteFile(t, "install.yml", doc)
	p.Mkdir(t, "target")
	return p, &testutil.FakeRunner{}
}

func options(p *testutil.ProjectFS, runner *testutil.FakeRunner, scope types.Scope) core.PlanOptions {
	return core.PlanOptions{
		Scope:           scope,
		PackageDir:      p.Root,
		BaseDirectories: testutil.NewFakeBaseDirectories(),
		FileSystem:      p.FS,
		Runner:          runner,
	}
}

func TestPlanSystem(t *testing.T) {
	p, runner := setup(t, projectManifest)

	result, err := core.Plan(context.Background(), options(p, runner, types.ScopeSystem))
	require.NoError(t, err)

	assert.Equal(t, types.ScopeSystem, result.Scope)
	assert.Equal(t, "0.2.0", result.Version)
	assert.Equal(t, "/usr/local/bin", result.Dirs.Bindir)
	require.Len(t, result.Packages, 2)

	foo := result.Packages[0]
	assert.Equal(t, "foo", foo.Name)
	assert.Equal(t, types.TypeRust, foo.Type)
	assert.Equal(t, "/src/foo/target/release", foo.Project.OutputDir)

	var destinations []string
	for _, target := range result.Targets() {
		destinations = append(destinations, target.Destination)
	}
	assert.Equal(t, []string{
		"/usr/local/bin/foo",
		"/usr/local/etc/foo.conf",
		"/usr/local/lib/systemd/system/foo.service",
		"/usr/local/share/man/man1/foo.1",
		"/usr/local/share/doc/foo-docs/README.md",
	}, destinations)
	assert.Empty(t, runner.Calls)
}

func TestPlanUser(t *testing.T) {
	p, runner := setup(t, projectManifest)

	result, err := core.Plan(context.Background(), options(p, runner, types.ScopeUser))
	require.NoError(t, err)

	var destinations []string
	for _, target := range result.Targets() {
		destinations = append(destinations, target.Destination)
	}
	assert.Equal(t, []string{
		"/home/alice/.local/bin/foo",
		"/home/alice/.config/foo.conf",
	}, destinations)
}

func TestPlanSelectsPackages(t *testing.T) {
	p, runner := setup(t, projectManifest)
	opts := options(p, runner, types.ScopeSystem)

	t.Run("requested_order", func(t *testing.T) {
		opts.Packages = []string{"foo-docs", "foo", "foo-docs"}
		result, err := core.Plan(context.Background(), opts)
		require.NoError(t, err)
		require.Len(t, result.Packages, 2)
		assert.Equal(t, "foo-docs", result.Packages[0].Name)
		assert.Equal(t, "foo", result.Packages[1].Name)
	})

	t.Run("unknown_package", func(t *testing.T) {
		opts.Packages = []string{"bar"}
		result, err := core.Plan(context.Background(), opts)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestPlanVersionGateRunsBeforeCompilation(t *testing.T) {
	doc := `
version: 0.1.0
pkgs:
  foo:
    type: rust
    exe: [foo]
  bar:
    systemd-units: [bar.service]
`
	p := testutil.NewProjectFS(t, "/src/foo")
	p.WriteFile(t, "install.yml", doc)
	runner := &testutil.FakeRunner{Output: []byte(`{"target_directory":"/src/foo/target"}`)}

	result, err := core.Plan(context.Background(), options(p, runner, types.ScopeSystem))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVersionIncompatible))
	assert.Empty(t, runner.Calls, "no project must be located once the gate fails")
}

func TestPlanWarnings(t *testing.T) {
	doc := "version: 0.2.0\npkgs:\n  foo:\n    type: custom\n    exe: [foo]\n"
	p, runner := setup(t, doc)

	result, err := core.Plan(context.Background(), options(p, runner, types.ScopeSystem))
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "/src/foo/foo", result.Targets()[0].Source)
}

func TestPlanOverrides(t *testing.T) {
	p, runner := setup(t, projectManifest)
	opts := options(p, runner, types.ScopeSystem)
	opts.Overrides = dirs.DirectorySet{Prefix: "/usr", Sysconfdir: "/etc"}
	opts.Packages = []string{"foo"}

	result, err := core.Plan(context.Background(), opts)
	require.NoError(t, err)

	targets := result.Targets()
	require.Len(t, targets, 3)
	assert.Equal(t, "/usr/bin/foo", targets[0].Destination)
	assert.Equal(t, "/etc/foo.conf", targets[1].Destination)
	assert.Equal(t, "/usr/lib/systemd/system/foo.service", targets[2].Destination)
}

func TestPlanFailures(t *testing.T) {
	t.Run("missing_manifest", func(t *testing.T) {
		p := testutil.NewProjectFS(t, "/src/foo")
		_, err := core.Plan(context.Background(), options(p, &testutil.FakeRunner{}, types.ScopeSystem))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("insecure_runtime_dir", func(t *testing.T) {
		p, runner := setup(t, projectManifest)
		base := testutil.NewFakeBaseDirectories()
		base.RuntimeErr = errors.New(errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR found")
		opts := options(p, runner, types.ScopeUser)
		opts.BaseDirectories = base

		_, err := core.Plan(context.Background(), opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInsecureRuntimeDir))
	})

	t.Run("cargo_failure", func(t *testing.T) {
		p := testutil.NewProjectFS(t, "/src/foo")
		p.WriteFile(t, "install.yml", projectManifest)
		runner := &testutil.FakeRunner{Output: []byte("not json")}

		_, err := core.Plan(context.Background(), options(p, runner, types.ScopeSystem))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrExternalResolution))
		assert.Equal(t, "foo", errors.GetErrorDetails(err)["package"])
	})

	t.Run("invalid_entry_discards_plan", func(t *testing.T) {
		doc := "version: 0.1.0\npkgs:\n  a:\n    exe: [a]\n  b:\n    man: [b.x]\n"
		p, runner := setup(t, doc)

		result, err := core.Plan(context.Background(), options(p, runner, types.ScopeSystem))
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidEntry))
	})
}
