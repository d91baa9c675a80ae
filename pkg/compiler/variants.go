package compiler

import (
	"path/filepath"

	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/types"
)

// baseTree selects where the sources of a category are read from
type baseTree int

const (
	outputTree baseTree = iota
	projectTree
)

// placeFunc adjusts one entry before its target is built. It returns the
// install directory to use and false when the entry must be skipped.
type placeFunc func(entry *types.InstallEntry, installDir string) (string, bool, error)

// variant describes how one category is compiled
type variant struct {
	category types.Category

	// dir returns the install directory, empty when unavailable
	dir func(d dirs.DirectorySet, pkg string) string

	// optional variants are skipped when their directory is unavailable,
	// the others fail with UNAVAILABLE_DIRECTORY
	optional bool

	base    baseTree
	replace bool

	// systemOnly variants are skipped in user scope, whatever the
	// directory set holds
	systemOnly bool

	place placeFunc
}

func field(f dirs.Field, elem ...string) func(dirs.DirectorySet, string) string {
	return func(d dirs.DirectorySet, _ string) string {
		v := d.Get(f)
		if v == "" {
			return ""
		}
		return filepath.Join(append([]string{v}, elem...)...)
	}
}

func perPackage(f dirs.Field, elem ...string) func(dirs.DirectorySet, string) string {
	return func(d dirs.DirectorySet, pkg string) string {
		v := d.Get(f)
		if v == "" {
			return ""
		}
		parts := append([]string{v}, elem...)
		return filepath.Join(append(parts, pkg)...)
	}
}

// variants returns the category table of a scope in traversal order
func variants(scope types.Scope) []variant {
	system := scope.IsSystem()

	userConfig := variant{
		category: types.CategoryUserConfig,
		dir:      field(dirs.FieldSysconfdir),
		base:     projectTree,
		replace:  false,
	}
	if system {
		// installed as documentation for users to copy
		userConfig = variant{
			category: types.CategoryUserConfig,
			dir: func(d dirs.DirectorySet, pkg string) string {
				if d.Docdir == "" {
					return ""
				}
				return filepath.Join(d.Docdir, pkg, "user-config")
			},
			optional: true,
			base:     projectTree,
			replace:  true,
		}
	}

	bashDir := "bash-completion"
	if system {
		bashDir = filepath.Join("bash-completion", "completions")
	}

	return []variant{
		{category: types.CategoryExe, dir: field(dirs.FieldBindir), base: outputTree, replace: true},
		{category: types.CategoryAdminExe, dir: field(dirs.FieldSbindir), optional: true, systemOnly: true, base: outputTree, replace: true},
		{category: types.CategoryLibs, dir: field(dirs.FieldLibdir), base: outputTree, replace: true},
		{category: types.CategoryLibexec, dir: field(dirs.FieldLibexecdir), base: outputTree, replace: true},
		{category: types.CategoryIncludes, dir: field(dirs.FieldIncludedir), optional: true, systemOnly: true, base: projectTree, replace: true},
		{category: types.CategoryData, dir: perPackage(dirs.FieldDatadir), base: projectTree, replace: true},
		{category: types.CategoryConfig, dir: field(dirs.FieldSysconfdir), base: projectTree, replace: false},
		userConfig,
		{category: types.CategoryMan, dir: field(dirs.FieldMandir), optional: true, systemOnly: true, base: projectTree, replace: true, place: placeManPage},
		{category: types.CategoryDocs, dir: perPackage(dirs.FieldDocdir), optional: true, systemOnly: true, base: projectTree, replace: true},
		{category: types.CategoryDesktopFiles, dir: field(dirs.FieldDatarootdir, "applications"), base: projectTree, replace: true},
		{category: types.CategoryAppstreamMetadata, dir: field(dirs.FieldDatarootdir, "metainfo"), base: projectTree, replace: true, systemOnly: true},
		{category: types.CategoryBashCompletions, dir: field(dirs.FieldDatarootdir, bashDir), base: projectTree, replace: true},
		{category: types.CategoryFishCompletions, dir: field(dirs.FieldDatarootdir, "fish", "vendor_completions.d"), base: projectTree, replace: true, systemOnly: true},
		{category: types.CategoryZshCompletions, dir: field(dirs.FieldDatarootdir, "zsh", "site-functions"), base: projectTree, replace: true, systemOnly: true},
		{category: types.CategoryPamModules, dir: field(dirs.FieldPamModulesdir), optional: true, systemOnly: true, base: outputTree, replace: true, place: placePamModule},
		{category: types.CategorySystemdUnits, dir: field(dirs.FieldSystemdUnitsdir, "system"), base: projectTree, replace: true, systemOnly: true},
		{category: types.CategorySystemdUserUnits, dir: field(dirs.FieldSystemdUnitsdir, "user"), base: projectTree, replace: true},
		{category: types.CategoryIcons, dir: field(dirs.FieldDatarootdir), base: projectTree, replace: true},
		{category: types.CategoryTerminfo, dir: field(dirs.FieldDatarootdir, "terminfo"), base: projectTree, replace: true, systemOnly: true, place: placeTerminfo},
		{category: types.CategoryLicenses, dir: perPackage(dirs.FieldDatarootdir, "licenses"), base: projectTree, replace: true},
		{category: types.CategoryPkgConfig, dir: field(dirs.FieldLibdir, "pkgconfig"), base: projectTree, replace: true, systemOnly: true},
	}
}
