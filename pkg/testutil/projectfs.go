package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/placer/pkg/filesystem"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/spf13/afero"
)

// ProjectFS is an in-memory project tree
type ProjectFS struct {
	Root string
	Mem  afero.Fs
	FS   types.FS
}

// NewProjectFS creates an empty in-memory project rooted at root
func NewProjectFS(t *testing.T, root string) *ProjectFS {
	t.Helper()
	fsys, mem := filesystem.NewMemory()
	if err := mem.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create project root %s: %v", root, err)
	}
	return &ProjectFS{Root: root, Mem: mem, FS: fsys}
}

// WriteFile writes a file relative to the project root
func (p *ProjectFS) WriteFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(p.Root, rel)
	if err := p.Mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(p.Mem, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// Mkdir creates a directory relative to the project root
func (p *ProjectFS) Mkdir(t *testing.T, rel string) string {
	t.Helper()
	path := filepath.Join(p.Root, rel)
	if err := p.Mem.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}
