package types_test

import (
	"testing"

	"github.com/arthur-debert/placer/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestInstallEntryFileName(t *testing.T) {
	tests := []struct {
		name     string
		entry    types.InstallEntry
		wantName string
		wantKeep bool
	}{
		{
			name:     "bare_source",
			entry:    types.InstallEntry{Source: "target/foo"},
			wantName: "foo",
			wantKeep: true,
		},
		{
			name:     "explicit_destination",
			entry:    types.InstallEntry{Source: "foo.conf.in", Destination: "foo.conf"},
			wantName: "foo.conf",
			wantKeep: false,
		},
		{
			name:     "destination_directory_keeps_source_name",
			entry:    types.InstallEntry{Source: "data/icon.png", Destination: "images/"},
			wantName: "icon.png",
			wantKeep: true,
		},
		{
			name:     "nested_destination",
			entry:    types.InstallEntry{Source: "a", Destination: "sub/dir/b"},
			wantName: "b",
			wantKeep: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.entry.FileName())
			assert.Equal(t, tt.wantKeep, tt.entry.UsesSourceName())
		})
	}
}

func TestInstallEntryInProjectDir(t *testing.T) {
	assert.True(t, types.InstallEntry{Source: "$PROJECTDIR/docs/foo.1"}.InProjectDir())
	assert.False(t, types.InstallEntry{Source: "docs/foo.1"}.InProjectDir())
	assert.False(t, types.InstallEntry{Source: "$PROJECTDIRfoo"}.InProjectDir())
}

func TestProjectType(t *testing.T) {
	t.Run("valid_types", func(t *testing.T) {
		for _, pt := range []types.ProjectType{"", types.TypeDefault, types.TypeRust, types.TypeCustom} {
			assert.True(t, pt.Valid(), "type %q should be valid", pt)
		}
		assert.False(t, types.ProjectType("meson").Valid())
	})

	t.Run("empty_normalizes_to_default", func(t *testing.T) {
		assert.Equal(t, types.TypeDefault, types.ProjectType("").Normalize())
		assert.Equal(t, types.TypeRust, types.TypeRust.Normalize())
	})
}

func TestPackageEntries(t *testing.T) {
	pkg := types.Package{
		Name: "foo",
		Exe:  []types.InstallEntry{{Source: "foo"}, {Source: "foo-helper"}},
		Completions: types.Completions{
			Zsh: []types.InstallEntry{{Source: "_foo"}},
		},
		Icons: []types.Icon{{Source: "icons/foo.svg"}},
	}

	assert.Len(t, pkg.Entries(types.CategoryExe), 2)
	assert.Len(t, pkg.Entries(types.CategoryZshCompletions), 1)
	assert.Nil(t, pkg.Entries(types.CategoryIcons))
	assert.Equal(t, 1, pkg.Count(types.CategoryIcons))
	assert.Equal(t, 0, pkg.Count(types.CategoryMan))

	total := 0
	for _, c := range types.AllCategories {
		total += pkg.Count(c)
	}
	assert.Equal(t, 4, total)
}

func TestManifestPackage(t *testing.T) {
	m := types.Manifest{
		Version:  "0.2.0",
		Packages: []types.Package{{Name: "foo"}, {Name: "bar"}},
	}

	pkg, ok := m.Package("bar")
	assert.True(t, ok)
	assert.Equal(t, "bar", pkg.Name)

	_, ok = m.Package("baz")
	assert.False(t, ok)
}

func TestScope(t *testing.T) {
	assert.Equal(t, types.ScopeSystem, types.ScopeFromSystemFlag(true))
	assert.Equal(t, types.ScopeUser, types.ScopeFromSystemFlag(false))
	assert.True(t, types.ScopeSystem.IsSystem())
	assert.False(t, types.ScopeUser.IsSystem())
}
