package dirs

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/placer/pkg/errors"
)

// BaseDirectories supplies the per-user base directories referenced by
// the user-scope default table
type BaseDirectories interface {
	Home() (string, error)
	DataHome() (string, error)
	ConfigHome() (string, error)

	// RuntimeDir returns the runtime directory after checking that only
	// the current user can access it
	RuntimeDir() (string, error)
}

// XDGBaseDirectories reads the base directories from the environment
// following the XDG Base Directory specification
type XDGBaseDirectories struct{}

// NewXDGBaseDirectories reloads the XDG environment and returns a provider
func NewXDGBaseDirectories() *XDGBaseDirectories {
	xdg.Reload()
	return &XDGBaseDirectories{}
}

func (x *XDGBaseDirectories) Home() (string, error) {
	return xdg.Home, nil
}

func (x *XDGBaseDirectories) DataHome() (string, error) {
	return xdg.DataHome, nil
}

func (x *XDGBaseDirectories) ConfigHome() (string, error) {
	return xdg.ConfigHome, nil
}

func (x *XDGBaseDirectories) RuntimeDir() (string, error) {
	dir := xdg.RuntimeDir
	if err := checkRuntimeDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// checkRuntimeDir requires dir to be an existing directory owned by the
// current user with no group or other permission bits
func checkRuntimeDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR %q found", dir).
			WithDetail("path", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR %q found: not a directory", dir).
			WithDetail("path", dir)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		return errors.Newf(errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR %q found: mode %o", dir, perm).
			WithDetail("path", dir)
	}
	if !ownedByCurrentUser(info) {
		return errors.Newf(errors.ErrInsecureRuntimeDir, "insecure XDG_RUNTIME_DIR %q found: not owned by the current user", dir).
			WithDetail("path", dir)
	}
	return nil
}
