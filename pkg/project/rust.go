package project

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"os/exec"
	"path/filepath"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

const (
	defaultTargetDir = "target"
	releaseProfile   = "release"
	debugProfile     = "debug"
)

// RustLocator finds the cargo target directory of a Rust project
type RustLocator struct {
	FS     types.FS
	Runner CommandRunner
	Debug  bool
}

// cargoMetadata is the part of `cargo metadata` output placer reads
type cargoMetadata struct {
	TargetDirectory string `json:"target_directory"`
}

// OutputDir returns the profile directory inside the cargo target
// directory. A target/ directory in the project wins; otherwise cargo is
// asked, and when cargo is not installed target/ is assumed.
func (l *RustLocator) OutputDir(ctx context.Context, projectDir string) (string, error) {
	targetDir, err := l.targetDir(ctx, projectDir)
	if err != nil {
		return "", err
	}

	profile := releaseProfile
	if l.Debug {
		profile = debugProfile
	}
	return filepath.Join(targetDir, profile), nil
}

func (l *RustLocator) targetDir(ctx context.Context, projectDir string) (string, error) {
	logger := logging.GetLogger("project.rust")

	local := filepath.Join(projectDir, defaultTargetDir)
	if info, err := l.FS.Stat(local); err == nil && info.IsDir() {
		return local, nil
	}

	out, err := l.Runner.Run(ctx, projectDir, "cargo", "metadata", "--format-version", "1", "--no-deps")
	if err != nil {
		if stderrors.Is(err, exec.ErrNotFound) {
			logger.Debug().Msg("cargo not found, assuming the default target directory")
			return local, nil
		}
		return "", errors.Wrap(err, errors.ErrExternalResolution, "unable to run `cargo metadata`").
			WithDetail("dir", projectDir)
	}

	var meta cargoMetadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return "", errors.Wrap(err, errors.ErrExternalResolution, "unable to parse JSON from `cargo metadata` output")
	}
	if meta.TargetDirectory == "" {
		return "", errors.New(errors.ErrExternalResolution, "`cargo metadata` did not report a target directory")
	}
	if !filepath.IsAbs(meta.TargetDirectory) {
		return filepath.Join(projectDir, meta.TargetDirectory), nil
	}
	return filepath.Clean(meta.TargetDirectory), nil
}
