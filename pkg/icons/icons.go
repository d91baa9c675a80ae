// Package icons derives the install destination of themed icons.
//
// Destinations are relative to datarootdir and follow the freedesktop icon
// theme layout: icons/<theme>/<size>/<type>/<file>. Legacy pixmaps go
// under pixmaps/.
package icons

import (
	"path"
	"regexp"
	"strings"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/types"
)

const (
	DefaultTheme = "hicolor"
	DefaultType  = "apps"

	scalable = "scalable"
)

var (
	// 48x48, 48 or 48x48@2
	sizePattern = regexp.MustCompile(`^([0-9]+)(?:x([0-9]+))?(@[0-9]+)?$`)
)

// Destination returns the path of an icon relative to datarootdir.
//
// An explicit destination is used as is. Otherwise the size is "scalable"
// for svg and svgz sources, then the icon dimensions when set, then the
// first directory of the source that looks like a size.
func Destination(icon types.Icon) (string, error) {
	if icon.Destination != "" {
		if path.IsAbs(icon.Destination) {
			return "", errors.Newf(errors.ErrInvalidEntry, "icon destination %q must be relative", icon.Destination).
				WithDetail("source", icon.Source)
		}
		return icon.Destination, nil
	}

	name := path.Base(strings.TrimSuffix(icon.Source, "/"))
	if icon.Source == "" || strings.HasSuffix(icon.Source, "/") || name == "." || name == "/" {
		return "", errors.Newf(errors.ErrInvalidEntry, "icon %q is not a file", icon.Source).
			WithDetail("source", icon.Source)
	}

	if icon.Pixmaps {
		return path.Join("pixmaps", name), nil
	}

	size, err := Size(icon)
	if err != nil {
		return "", err
	}

	theme := icon.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	kind := icon.Type
	if kind == "" {
		kind = DefaultType
	}

	return path.Join("icons", theme, size, kind, name), nil
}

// Size returns the theme size directory of an icon
func Size(icon types.Icon) (string, error) {
	switch strings.ToLower(path.Ext(icon.Source)) {
	case ".svg", ".svgz":
		return scalable, nil
	}

	if icon.Dimensions != "" {
		size, ok := normalizeSize(icon.Dimensions)
		if !ok {
			return "", errors.Newf(errors.ErrInvalidEntry, "invalid icon dimensions %q", icon.Dimensions).
				WithDetail("source", icon.Source)
		}
		return size, nil
	}

	for _, component := range strings.Split(path.Dir(icon.Source), "/") {
		if size, ok := normalizeSize(component); ok {
			return size, nil
		}
	}

	return "", errors.Newf(errors.ErrInvalidEntry, "unable to find the size of icon %q", icon.Source).
		WithDetail("source", icon.Source)
}

// normalizeSize accepts NxN, N and their @scale forms and returns NxN[@scale]
func normalizeSize(s string) (string, bool) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	width, height, scale := m[1], m[2], m[3]
	if height == "" {
		height = width
	}
	return width + "x" + height + scale, true
}
