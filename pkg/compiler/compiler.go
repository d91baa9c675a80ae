package compiler

import (
	stderrors "errors"

	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/icons"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

// Compile produces the install targets of pkg. d must be resolved. Either
// every entry compiles or an error is returned and no target is.
func Compile(pkg types.Package, d dirs.DirectorySet, project types.Project, scope types.Scope) ([]types.InstallTarget, error) {
	if pkg.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "missing package name")
	}

	logger := logging.GetLogger("compiler").With().
		Str("package", pkg.Name).
		Str("scope", string(scope)).
		Logger()
	done := logging.LogOperationStart(logger, "compile")
	defer done()

	targets := make([]types.InstallTarget, 0)
	for _, v := range variants(scope) {
		if pkg.Count(v.category) == 0 {
			continue
		}
		if v.systemOnly && !scope.IsSystem() {
			logger.Debug().
				Str("category", string(v.category)).
				Msg("Skipping system-only category in a user installation")
			continue
		}

		installDir := v.dir(d, pkg.Name)
		if installDir == "" {
			if v.optional {
				logger.Debug().
					Str("category", string(v.category)).
					Msg("Skipping category without install directory")
				continue
			}
			return nil, errors.Newf(errors.ErrUnavailableDirectory,
				"no install directory available for %s", v.category).
				WithDetail("category", string(v.category)).
				WithDetail("package", pkg.Name)
		}

		entries, err := categoryEntries(&pkg, v.category, scope)
		if err != nil {
			return nil, err
		}

		baseDir := project.OutputDir
		if v.base == projectTree {
			baseDir = project.ProjectDir
		}

		count := 0
		for _, entry := range entries {
			dir := installDir
			if v.place != nil {
				var ok bool
				dir, ok, err = v.place(&entry, installDir)
				if err != nil {
					return nil, entryError(err, v.category, entry, pkg.Name)
				}
				if !ok {
					continue
				}
			}

			target, err := newTarget(entry, dir, baseDir, project, v.replace)
			if err != nil {
				return nil, entryError(err, v.category, entry, pkg.Name)
			}
			target.Category = v.category
			target.Package = pkg.Name
			targets = append(targets, target)
			count++
		}

		logger.Debug().
			Str("category", string(v.category)).
			Int("targets", count).
			Msg("Category compiled")
	}

	return targets, nil
}

// categoryEntries returns the entries of a category. Icons are converted
// to entries with a derived destination; pixmaps only apply to system
// installations.
func categoryEntries(pkg *types.Package, c types.Category, scope types.Scope) ([]types.InstallEntry, error) {
	if c != types.CategoryIcons {
		return pkg.Entries(c), nil
	}

	entries := make([]types.InstallEntry, 0, len(pkg.Icons))
	for _, icon := range pkg.Icons {
		if icon.Pixmaps && !scope.IsSystem() {
			continue
		}
		dest, err := icons.Destination(icon)
		if err != nil {
			return nil, entryError(
				errors.Wrapf(err, errors.ErrInvalidEntry, "unable to generate destination for icon %q", icon.Source),
				c, types.InstallEntry{Source: icon.Source}, pkg.Name)
		}
		entries = append(entries, types.InstallEntry{Source: icon.Source, Destination: dest})
	}
	return entries, nil
}

// entryError attaches the failing entry to err
func entryError(err error, c types.Category, entry types.InstallEntry, pkg string) error {
	var placerErr *errors.PlacerError
	if !stderrors.As(err, &placerErr) {
		placerErr = errors.Wrap(err, errors.ErrInvalidEntry, "invalid entry")
	}
	return placerErr.
		WithDetail("category", string(c)).
		WithDetail("source", entry.Source).
		WithDetail("package", pkg)
}
