package types

// ProjectType tells where built artifacts of a package are found
type ProjectType string

const (
	// TypeDefault finds artifacts relative to the project directory
	TypeDefault ProjectType = "default"

	// TypeRust finds artifacts in the cargo target directory
	TypeRust ProjectType = "rust"

	// TypeCustom is the deprecated spelling of TypeDefault
	TypeCustom ProjectType = "custom"
)

// Valid reports whether t is a known project type. The empty value is
// accepted and means TypeDefault.
func (t ProjectType) Valid() bool {
	switch t {
	case "", TypeDefault, TypeRust, TypeCustom:
		return true
	}
	return false
}

// Normalize returns the effective type, mapping the empty value to TypeDefault
func (t ProjectType) Normalize() ProjectType {
	if t == "" {
		return TypeDefault
	}
	return t
}

// Completions groups shell completion entries by shell
type Completions struct {
	Bash []InstallEntry `mapstructure:"bash"`
	Fish []InstallEntry `mapstructure:"fish"`
	Zsh  []InstallEntry `mapstructure:"zsh"`
}

// Package is one installable unit declared in a manifest
type Package struct {
	Name string      `mapstructure:"-"`
	Type ProjectType `mapstructure:"type"`

	Exe               []InstallEntry `mapstructure:"exe"`
	AdminExe          []InstallEntry `mapstructure:"admin-exe"`
	Libs              []InstallEntry `mapstructure:"libs"`
	Libexec           []InstallEntry `mapstructure:"libexec"`
	Includes          []InstallEntry `mapstructure:"includes"`
	Man               []InstallEntry `mapstructure:"man"`
	Data              []InstallEntry `mapstructure:"data"`
	Docs              []InstallEntry `mapstructure:"docs"`
	Config            []InstallEntry `mapstructure:"config"`
	UserConfig        []InstallEntry `mapstructure:"user-config"`
	DesktopFiles      []InstallEntry `mapstructure:"desktop-files"`
	AppstreamMetadata []InstallEntry `mapstructure:"appstream-metadata"`
	Completions       Completions    `mapstructure:"completions"`
	PamModules        []InstallEntry `mapstructure:"pam-modules"`
	SystemdUnits      []InstallEntry `mapstructure:"systemd-units"`
	SystemdUserUnits  []InstallEntry `mapstructure:"systemd-user-units"`
	Icons             []Icon         `mapstructure:"icons"`
	Terminfo          []InstallEntry `mapstructure:"terminfo"`
	Licenses          []InstallEntry `mapstructure:"licenses"`
	PkgConfig         []InstallEntry `mapstructure:"pkg-config"`
}

// Entries returns the entries of an entry-based category.
// Icons are not InstallEntry values and return nil; use Package.Icons.
func (p *Package) Entries(c Category) []InstallEntry {
	switch c {
	case CategoryExe:
		return p.Exe
	case CategoryAdminExe:
		return p.AdminExe
	case CategoryLibs:
		return p.Libs
	case CategoryLibexec:
		return p.Libexec
	case CategoryIncludes:
		return p.Includes
	case CategoryMan:
		return p.Man
	case CategoryData:
		return p.Data
	case CategoryDocs:
		return p.Docs
	case CategoryConfig:
		return p.Config
	case CategoryUserConfig:
		return p.UserConfig
	case CategoryDesktopFiles:
		return p.DesktopFiles
	case CategoryAppstreamMetadata:
		return p.AppstreamMetadata
	case CategoryBashCompletions:
		return p.Completions.Bash
	case CategoryFishCompletions:
		return p.Completions.Fish
	case CategoryZshCompletions:
		return p.Completions.Zsh
	case CategoryPamModules:
		return p.PamModules
	case CategorySystemdUnits:
		return p.SystemdUnits
	case CategorySystemdUserUnits:
		return p.SystemdUserUnits
	case CategoryTerminfo:
		return p.Terminfo
	case CategoryLicenses:
		return p.Licenses
	case CategoryPkgConfig:
		return p.PkgConfig
	}
	return nil
}

// Count returns the number of entries declared for a category
func (p *Package) Count(c Category) int {
	if c == CategoryIcons {
		return len(p.Icons)
	}
	return len(p.Entries(c))
}

// Manifest is a parsed manifest document
type Manifest struct {
	// Version is the declared manifest schema version
	Version string

	// Packages in document order
	Packages []Package
}

// Package returns the package with the given name
func (m *Manifest) Package(name string) (*Package, bool) {
	for i := range m.Packages {
		if m.Packages[i].Name == name {
			return &m.Packages[i], true
		}
	}
	return nil, false
}
