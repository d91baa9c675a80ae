package types

import "strings"

// ProjectDirMarker prefixes an entry source that lives in the project
// source tree rather than in the build output tree.
const ProjectDirMarker = "$PROJECTDIR/"

// InstallEntry maps one source file of the project to a destination
// inside the install directory of its category.
//
// Destination is relative. An empty Destination keeps the source file
// name; a Destination ending with "/" is a directory that receives the
// file under its source name.
type InstallEntry struct {
	Source      string `mapstructure:"source" json:"source" yaml:"source"`
	Destination string `mapstructure:"destination" json:"destination,omitempty" yaml:"destination,omitempty"`
	Templating  bool   `mapstructure:"templating" json:"templating,omitempty" yaml:"templating,omitempty"`
}

// UsesSourceName reports whether the installed file keeps the source name
func (e InstallEntry) UsesSourceName() bool {
	return e.Destination == "" || strings.HasSuffix(e.Destination, "/")
}

// FileName returns the name the entry will have once installed
func (e InstallEntry) FileName() string {
	if e.UsesSourceName() {
		return baseName(e.Source)
	}
	return baseName(e.Destination)
}

// InProjectDir reports whether the source carries the project dir marker
func (e InstallEntry) InProjectDir() bool {
	return strings.HasPrefix(e.Source, ProjectDirMarker)
}

// Icon describes an icon to install under the icon theme directories.
// The destination is derived from the metadata unless set explicitly.
type Icon struct {
	Source      string `mapstructure:"source" json:"source" yaml:"source"`
	Destination string `mapstructure:"destination" json:"destination,omitempty" yaml:"destination,omitempty"`
	Theme       string `mapstructure:"theme" json:"theme,omitempty" yaml:"theme,omitempty"`
	Dimensions  string `mapstructure:"dimensions" json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Type        string `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty"`
	Pixmaps     bool   `mapstructure:"pixmaps" json:"pixmaps,omitempty" yaml:"pixmaps,omitempty"`
}

// baseName returns the last path element, ignoring a trailing separator
func baseName(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
