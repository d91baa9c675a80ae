package testutil

import (
	"testing"

	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/types"
)

// SystemDirs returns the resolved system defaults (prefix /usr/local)
func SystemDirs(t *testing.T) dirs.DirectorySet {
	t.Helper()
	d, err := dirs.Resolve(types.ScopeSystem, dirs.DirectorySet{}, nil)
	if err != nil {
		t.Fatalf("Failed to resolve system directories: %v", err)
	}
	return d
}

// UserDirs returns the resolved user defaults for FakeBaseDirectories
func UserDirs(t *testing.T) dirs.DirectorySet {
	t.Helper()
	d, err := dirs.Resolve(types.ScopeUser, dirs.DirectorySet{}, NewFakeBaseDirectories())
	if err != nil {
		t.Fatalf("Failed to resolve user directories: %v", err)
	}
	return d
}

// Project returns a project whose output dir differs from its source dir
func Project() types.Project {
	return types.Project{
		ProjectDir: "/src/foo",
		OutputDir:  "/src/foo/target/release",
	}
}
