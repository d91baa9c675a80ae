package core

import (
	"context"

	"github.com/arthur-debert/placer/pkg/compat"
	"github.com/arthur-debert/placer/pkg/compiler"
	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/filesystem"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/manifest"
	"github.com/arthur-debert/placer/pkg/project"
	"github.com/arthur-debert/placer/pkg/types"
)

// PlanOptions contains the inputs of a planning run
type PlanOptions struct {
	Scope types.Scope

	// PackageDir is the absolute path of the project holding the manifest
	PackageDir string

	// Packages restricts the run to the named packages, all when empty
	Packages []string

	// Overrides replace default directories before resolution
	Overrides dirs.DirectorySet

	// RustDebug locates Rust artifacts in the debug profile
	RustDebug bool

	// BaseDirectories defaults to the XDG environment
	BaseDirectories dirs.BaseDirectories

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// Runner defaults to running commands with os/exec
	Runner project.CommandRunner
}

// PackagePlan is the compiled plan of one package
type PackagePlan struct {
	Name    string                `json:"name" yaml:"name"`
	Type    types.ProjectType     `json:"type" yaml:"type"`
	Project types.Project         `json:"project" yaml:"project"`
	Targets []types.InstallTarget `json:"targets" yaml:"targets"`
}

// PlanResult is the outcome of a successful planning run
type PlanResult struct {
	Scope    types.Scope       `json:"scope" yaml:"scope"`
	Version  string            `json:"version" yaml:"version"`
	Dirs     dirs.DirectorySet `json:"dirs" yaml:"dirs"`
	Packages []PackagePlan     `json:"packages" yaml:"packages"`
	Warnings []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Targets returns the targets of every package in plan order
func (r *PlanResult) Targets() []types.InstallTarget {
	var all []types.InstallTarget
	for _, p := range r.Packages {
		all = append(all, p.Targets...)
	}
	return all
}

// ResolveDirs resolves the directory set of a run
func ResolveDirs(opts PlanOptions) (dirs.DirectorySet, error) {
	base := opts.BaseDirectories
	if base == nil && !opts.Scope.IsSystem() {
		base = dirs.NewXDGBaseDirectories()
	}
	return dirs.Resolve(opts.Scope, opts.Overrides, base)
}

// Plan compiles the install targets of the selected packages
func Plan(ctx context.Context, opts PlanOptions) (*PlanResult, error) {
	logger := logging.GetLogger("core.plan")
	logger.Info().
		Str("scope", string(opts.Scope)).
		Str("packageDir", opts.PackageDir).
		Strs("packages", opts.Packages).
		Msg("Starting planning")
	done := logging.LogOperationStart(logger, "plan")
	defer done()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// Step 1: directories
	d, err := ResolveDirs(opts)
	if err != nil {
		return nil, err
	}

	// Step 2: manifest
	m, err := manifest.Load(fsys, opts.PackageDir)
	if err != nil {
		return nil, err
	}

	// Step 3: selection and version gate, before anything is compiled
	selected, err := selectPackages(m, opts.Packages)
	if err != nil {
		return nil, err
	}

	result := &PlanResult{
		Scope:    opts.Scope,
		Version:  m.Version,
		Dirs:     d,
		Packages: make([]PackagePlan, 0, len(selected)),
	}
	for _, pkg := range selected {
		warnings, err := compat.Check(pkg, m.Version)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, warnings...)
	}

	// Step 4: compile
	for _, pkg := range selected {
		proj, err := project.New(ctx, fsys, pkg.Type, opts.PackageDir, project.Options{
			Debug:  opts.RustDebug,
			Runner: opts.Runner,
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to locate the project of %s", pkg.Name).
				WithDetail("package", pkg.Name)
		}

		targets, err := compiler.Compile(*pkg, d, proj, opts.Scope)
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Str("package", pkg.Name).
			Int("targets", len(targets)).
			Msg("Package compiled")

		result.Packages = append(result.Packages, PackagePlan{
			Name:    pkg.Name,
			Type:    pkg.Type,
			Project: proj,
			Targets: targets,
		})
	}

	logger.Info().
		Int("packages", len(result.Packages)).
		Int("targets", len(result.Targets())).
		Msg("Planning completed")
	return result, nil
}

// selectPackages returns the requested packages in request order, or every
// package in manifest order when none is requested
func selectPackages(m *types.Manifest, names []string) ([]*types.Package, error) {
	if len(names) == 0 {
		selected := make([]*types.Package, 0, len(m.Packages))
		for i := range m.Packages {
			selected = append(selected, &m.Packages[i])
		}
		return selected, nil
	}

	seen := make(map[string]bool, len(names))
	selected := make([]*types.Package, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		pkg, ok := m.Package(name)
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound, "package %s not found in the manifest", name).
				WithDetail("package", name)
		}
		selected = append(selected, pkg)
	}
	return selected, nil
}
