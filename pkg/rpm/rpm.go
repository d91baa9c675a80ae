// Package rpm writes compiled targets as the body of an RPM %files section.
package rpm

import (
	"bufio"
	"io"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/types"
)

// ConfigPrefix marks files rpm must not overwrite on upgrade
const ConfigPrefix = "%config(noreplace) "

// Write prints one destination per line in compile order. RPM packages
// only hold system-wide installations.
func Write(w io.Writer, targets []types.InstallTarget, scope types.Scope) error {
	if !scope.IsSystem() {
		return errors.New(errors.ErrInvalidInput, "RPM file lists are only available for system installations")
	}

	buf := bufio.NewWriter(w)
	for _, t := range targets {
		if t.Category == types.CategoryConfig {
			if _, err := buf.WriteString(ConfigPrefix); err != nil {
				return errors.Wrap(err, errors.ErrFileAccess, "failed to write file list")
			}
		}
		if _, err := buf.WriteString(t.Destination + "\n"); err != nil {
			return errors.Wrap(err, errors.ErrFileAccess, "failed to write file list")
		}
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "failed to write file list")
	}
	return nil
}
