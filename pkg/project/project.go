// Package project locates the source and build output trees of a project.
package project

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

// TarballMarker is the file that identifies an unpacked release tarball.
// Release tarballs ship prebuilt artifacts next to the sources.
const TarballMarker = ".tarball"

// Options tunes how the build output tree is located
type Options struct {
	// Debug selects the debug profile of Rust projects instead of release
	Debug bool

	// Runner executes external tools, ExecRunner when nil
	Runner CommandRunner
}

// New returns the project rooted at projectDir for a package of the given
// type
func New(ctx context.Context, fsys types.FS, projectType types.ProjectType, projectDir string, opts Options) (types.Project, error) {
	logger := logging.GetLogger("project").With().
		Str("projectDir", projectDir).
		Str("type", string(projectType.Normalize())).
		Logger()

	if !filepath.IsAbs(projectDir) {
		return types.Project{}, errors.Newf(errors.ErrInvalidInput, "project directory %q must be absolute", projectDir)
	}
	projectDir = filepath.Clean(projectDir)

	if IsReleaseTarball(fsys, projectDir) {
		logger.Debug().Msg("Release tarball detected, artifacts are in the project directory")
		return types.Project{ProjectDir: projectDir, OutputDir: projectDir}, nil
	}

	switch projectType.Normalize() {
	case types.TypeRust:
		runner := opts.Runner
		if runner == nil {
			runner = NewExecRunner()
		}
		locator := &RustLocator{FS: fsys, Runner: runner, Debug: opts.Debug}
		outputDir, err := locator.OutputDir(ctx, projectDir)
		if err != nil {
			return types.Project{}, err
		}
		logger.Debug().Str("outputDir", outputDir).Msg("Rust output directory located")
		return types.Project{ProjectDir: projectDir, OutputDir: outputDir}, nil
	case types.TypeDefault, types.TypeCustom:
		return types.Project{ProjectDir: projectDir, OutputDir: projectDir}, nil
	}

	return types.Project{}, errors.Newf(errors.ErrInvalidInput, "unknown project type %q", projectType)
}

// IsReleaseTarball reports whether projectDir holds an unpacked release
func IsReleaseTarball(fsys types.FS, projectDir string) bool {
	_, err := fsys.Stat(filepath.Join(projectDir, TarballMarker))
	return err == nil
}
