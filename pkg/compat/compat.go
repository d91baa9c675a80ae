// Package compat checks that a package only uses manifest categories
// available in the manifest version it declares.
package compat

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

// SupportedVersions lists the manifest versions this tool understands
var SupportedVersions = []string{"0.1.0", "0.2.0"}

// Requirements maps each category to the version constraint it needs.
// Categories missing from the table require >=0.1.0.
var Requirements = map[types.Category]string{
	types.CategoryUserConfig:       ">=0.2.0",
	types.CategorySystemdUnits:     ">=0.2.0",
	types.CategorySystemdUserUnits: ">=0.2.0",
}

const (
	baseRequirement = ">=0.1.0"

	// customDeprecatedSince is the first version warning about TypeCustom
	customDeprecatedSince = ">=0.2.0"
)

// Requirement returns the version constraint of a category
func Requirement(c types.Category) string {
	if req, ok := Requirements[c]; ok {
		return req
	}
	return baseRequirement
}

// ParseVersion parses a declared manifest version and checks that it is
// one of SupportedVersions
func ParseVersion(declared string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(declared)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrVersionIncompatible, "%s is not a valid manifest version", declared).
			WithDetail("version", declared)
	}
	for _, supported := range SupportedVersions {
		if v.Equal(semver.MustParse(supported)) {
			return v, nil
		}
	}
	return nil, errors.Newf(errors.ErrVersionIncompatible, "%s is not a valid manifest version", declared).
		WithDetail("version", declared)
}

// Check validates every non-empty category of pkg against the declared
// version. Returned warnings are not fatal.
func Check(pkg *types.Package, declared string) ([]string, error) {
	logger := logging.GetLogger("compat").With().
		Str("package", pkg.Name).
		Str("version", declared).
		Logger()

	v, err := ParseVersion(declared)
	if err != nil {
		return nil, err
	}

	for _, c := range types.AllCategories {
		if pkg.Count(c) == 0 {
			continue
		}
		req := Requirement(c)
		constraint, err := semver.NewConstraint(req)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "invalid requirement %q for %s", req, c)
		}
		if !constraint.Check(v) {
			return nil, errors.Newf(errors.ErrVersionIncompatible, "%s requires version %s", c, req).
				WithDetail("category", string(c)).
				WithDetail("requires", req).
				WithDetail("package", pkg.Name)
		}
	}

	var warnings []string
	if pkg.Type == types.TypeCustom {
		deprecated, err := semver.NewConstraint(customDeprecatedSince)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "invalid deprecation constraint")
		}
		if deprecated.Check(v) {
			warnings = append(warnings, fmt.Sprintf(
				"package %s: type %q is deprecated since manifest version 0.2.0, use %q instead",
				pkg.Name, types.TypeCustom, types.TypeDefault))
		}
	}

	for _, w := range warnings {
		logger.Warn().Msg(w)
	}
	return warnings, nil
}
