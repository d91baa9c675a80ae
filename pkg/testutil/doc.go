// Package testutil provides utilities for testing placer components.
//
// Key components:
//   - FakeBaseDirectories: deterministic user base directories
//   - ProjectFS: in-memory project tree (afero) exposed as types.FS
//   - SystemDirs / UserDirs: resolved DirectorySet fixtures
//   - CreateFile / CreateDir: real filesystem helpers for t.TempDir trees
//
// Usage guidelines:
//   - Prefer ProjectFS over real files; only runtime directory checks and
//     the OS filesystem adapter need t.TempDir
//   - All test data should be defined inline, not in external files
package testutil
