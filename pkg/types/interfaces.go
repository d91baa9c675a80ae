package types

import "io/fs"

// FS is the read-only filesystem view placer needs to load manifests and
// inspect project directories. Implementations live in pkg/filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}
