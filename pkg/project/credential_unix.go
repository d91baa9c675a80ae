//go:build unix

package project

import (
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/arthur-debert/placer/pkg/errors"
)

// dropPrivileges runs cmd as the invoking user under sudo. cargo reads the
// metadata of the user that built the project, not root's.
func dropPrivileges(cmd *exec.Cmd) error {
	if os.Geteuid() != 0 {
		return nil
	}
	uid, uidSet := os.LookupEnv("SUDO_UID")
	gid, gidSet := os.LookupEnv("SUDO_GID")
	if !uidSet && !gidSet {
		return nil
	}

	cred := &syscall.Credential{Uid: uint32(os.Getuid()), Gid: uint32(os.Getgid())}
	if uidSet {
		v, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid SUDO_UID %q", uid)
		}
		cred.Uid = uint32(v)
	}
	if gidSet {
		v, err := strconv.ParseUint(gid, 10, 32)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid SUDO_GID %q", gid)
		}
		cred.Gid = uint32(v)
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Credential: cred}
	return nil
}
