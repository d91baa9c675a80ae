package compiler

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/types"
)

// newTarget resolves an entry against its install directory and the
// tree its source is read from
func newTarget(entry types.InstallEntry, installDir, baseDir string, project types.Project, replace bool) (types.InstallTarget, error) {
	if !utf8.ValidString(entry.Source) || !utf8.ValidString(entry.Destination) {
		return types.InstallTarget{}, errors.Newf(errors.ErrInvalidEntry, "unable to convert %q to a path string", entry.Source)
	}

	source := entry.Source
	if entry.InProjectDir() {
		source = strings.TrimPrefix(source, types.ProjectDirMarker)
		baseDir = project.ProjectDir
	}
	if source == "" {
		return types.InstallTarget{}, errors.New(errors.ErrInvalidEntry, "entry has no source")
	}
	if filepath.IsAbs(source) {
		return types.InstallTarget{}, errors.Newf(errors.ErrInvalidEntry, "source %q must be relative", source)
	}
	if filepath.IsAbs(entry.Destination) {
		return types.InstallTarget{}, errors.Newf(errors.ErrInvalidEntry, "destination %q must be relative", entry.Destination)
	}

	var destination string
	if entry.UsesSourceName() {
		destination = filepath.Join(installDir, entry.Destination, filepath.Base(source))
	} else {
		destination = filepath.Join(installDir, entry.Destination)
	}

	resolved := filepath.Join(baseDir, source)
	if isDirectory(source) {
		resolved += string(filepath.Separator)
	}

	return types.InstallTarget{
		Source:      resolved,
		Destination: destination,
		Replace:     replace,
		Templating:  entry.Templating,
	}, nil
}
