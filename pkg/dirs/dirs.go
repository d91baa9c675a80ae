package dirs

import (
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

// Field names one slot of a DirectorySet
type Field string

const (
	FieldPrefix          Field = "prefix"
	FieldExecPrefix      Field = "exec_prefix"
	FieldBindir          Field = "bindir"
	FieldSbindir         Field = "sbindir"
	FieldLibdir          Field = "libdir"
	FieldLibexecdir      Field = "libexecdir"
	FieldDatarootdir     Field = "datarootdir"
	FieldDatadir         Field = "datadir"
	FieldSysconfdir      Field = "sysconfdir"
	FieldLocalstatedir   Field = "localstatedir"
	FieldRunstatedir     Field = "runstatedir"
	FieldIncludedir      Field = "includedir"
	FieldDocdir          Field = "docdir"
	FieldMandir          Field = "mandir"
	FieldPamModulesdir   Field = "pam_modulesdir"
	FieldSystemdUnitsdir Field = "systemd_unitsdir"
)

// Fields lists every field in display order
var Fields = []Field{
	FieldPrefix,
	FieldExecPrefix,
	FieldBindir,
	FieldSbindir,
	FieldLibdir,
	FieldLibexecdir,
	FieldDatarootdir,
	FieldDatadir,
	FieldSysconfdir,
	FieldLocalstatedir,
	FieldRunstatedir,
	FieldIncludedir,
	FieldDocdir,
	FieldMandir,
	FieldPamModulesdir,
	FieldSystemdUnitsdir,
}

// systemOnly fields are never populated in user scope
var systemOnly = map[Field]bool{
	FieldPrefix:        true,
	FieldExecPrefix:    true,
	FieldSbindir:       true,
	FieldIncludedir:    true,
	FieldDocdir:        true,
	FieldMandir:        true,
	FieldPamModulesdir: true,
}

// IsSystemOnly reports whether a field is only available in system scope
func IsSystemOnly(f Field) bool {
	return systemOnly[f]
}

// DirectorySet holds the installation directories of one run.
// An empty field is unset.
type DirectorySet struct {
	Prefix          string `koanf:"prefix" json:"prefix,omitempty" yaml:"prefix,omitempty"`
	ExecPrefix      string `koanf:"exec_prefix" json:"exec_prefix,omitempty" yaml:"exec_prefix,omitempty"`
	Bindir          string `koanf:"bindir" json:"bindir,omitempty" yaml:"bindir,omitempty"`
	Sbindir         string `koanf:"sbindir" json:"sbindir,omitempty" yaml:"sbindir,omitempty"`
	Libdir          string `koanf:"libdir" json:"libdir,omitempty" yaml:"libdir,omitempty"`
	Libexecdir      string `koanf:"libexecdir" json:"libexecdir,omitempty" yaml:"libexecdir,omitempty"`
	Datarootdir     string `koanf:"datarootdir" json:"datarootdir,omitempty" yaml:"datarootdir,omitempty"`
	Datadir         string `koanf:"datadir" json:"datadir,omitempty" yaml:"datadir,omitempty"`
	Sysconfdir      string `koanf:"sysconfdir" json:"sysconfdir,omitempty" yaml:"sysconfdir,omitempty"`
	Localstatedir   string `koanf:"localstatedir" json:"localstatedir,omitempty" yaml:"localstatedir,omitempty"`
	Runstatedir     string `koanf:"runstatedir" json:"runstatedir,omitempty" yaml:"runstatedir,omitempty"`
	Includedir      string `koanf:"includedir" json:"includedir,omitempty" yaml:"includedir,omitempty"`
	Docdir          string `koanf:"docdir" json:"docdir,omitempty" yaml:"docdir,omitempty"`
	Mandir          string `koanf:"mandir" json:"mandir,omitempty" yaml:"mandir,omitempty"`
	PamModulesdir   string `koanf:"pam_modulesdir" json:"pam_modulesdir,omitempty" yaml:"pam_modulesdir,omitempty"`
	SystemdUnitsdir string `koanf:"systemd_unitsdir" json:"systemd_unitsdir,omitempty" yaml:"systemd_unitsdir,omitempty"`
}

// slot returns a pointer to the storage of a field
func (d *DirectorySet) slot(f Field) *string {
	switch f {
	case FieldPrefix:
		return &d.Prefix
	case FieldExecPrefix:
		return &d.ExecPrefix
	case FieldBindir:
		return &d.Bindir
	case FieldSbindir:
		return &d.Sbindir
	case FieldLibdir:
		return &d.Libdir
	case FieldLibexecdir:
		return &d.Libexecdir
	case FieldDatarootdir:
		return &d.Datarootdir
	case FieldDatadir:
		return &d.Datadir
	case FieldSysconfdir:
		return &d.Sysconfdir
	case FieldLocalstatedir:
		return &d.Localstatedir
	case FieldRunstatedir:
		return &d.Runstatedir
	case FieldIncludedir:
		return &d.Includedir
	case FieldDocdir:
		return &d.Docdir
	case FieldMandir:
		return &d.Mandir
	case FieldPamModulesdir:
		return &d.PamModulesdir
	case FieldSystemdUnitsdir:
		return &d.SystemdUnitsdir
	}
	panic("dirs: unknown field " + string(f))
}

// Get returns the value of a field, empty when unset
func (d DirectorySet) Get(f Field) string {
	return *d.slot(f)
}

// Set assigns a field
func (d *DirectorySet) Set(f Field, value string) {
	*d.slot(f) = value
}

// Has reports whether a field is populated
func (d DirectorySet) Has(f Field) bool {
	return d.Get(f) != ""
}

// IsEmpty reports whether no field is populated
func (d DirectorySet) IsEmpty() bool {
	for _, f := range Fields {
		if d.Has(f) {
			return false
		}
	}
	return true
}

// Entry is a name/value pair of a populated field
type Entry struct {
	Name  Field
	Value string
}

// Entries returns the populated fields in display order
func (d DirectorySet) Entries() []Entry {
	var entries []Entry
	for _, f := range Fields {
		if v := d.Get(f); v != "" {
			entries = append(entries, Entry{Name: f, Value: v})
		}
	}
	return entries
}

// SystemDefaults returns the default system-wide directory table
func SystemDefaults() DirectorySet {
	return DirectorySet{
		Prefix:          "/usr/local",
		ExecPrefix:      "@prefix@",
		Bindir:          "@exec_prefix@/bin",
		Sbindir:         "@exec_prefix@/sbin",
		Libdir:          "@exec_prefix@/lib",
		Libexecdir:      "@exec_prefix@/libexec",
		Datarootdir:     "@prefix@/share",
		Datadir:         "@prefix@/share",
		Sysconfdir:      "@prefix@/etc",
		Localstatedir:   "@prefix@/var",
		Runstatedir:     "@localstatedir@/run",
		Includedir:      "@prefix@/include",
		Docdir:          "@datarootdir@/doc",
		Mandir:          "@datarootdir@/man",
		PamModulesdir:   "@libdir@/security",
		SystemdUnitsdir: "@libdir@/systemd",
	}
}

// UserDefaults returns the default per-user directory table
func UserDefaults() DirectorySet {
	return DirectorySet{
		Bindir:          "@HOME@/.local/bin",
		Libdir:          "@HOME@/.local/lib",
		Libexecdir:      "@HOME@/.local/libexec",
		Datarootdir:     "@XDG_DATA_HOME@",
		Datadir:         "@XDG_DATA_HOME@",
		Sysconfdir:      "@XDG_CONFIG_HOME@",
		Localstatedir:   "@XDG_DATA_HOME@",
		Runstatedir:     "@XDG_RUNTIME_DIR@",
		SystemdUnitsdir: "@sysconfdir@/systemd",
	}
}

// Defaults returns the default table for a scope
func Defaults(scope types.Scope) DirectorySet {
	if scope.IsSystem() {
		return SystemDefaults()
	}
	return UserDefaults()
}

// New merges overrides onto the defaults of a scope. Overrides of
// system-only fields are dropped in user scope.
func New(scope types.Scope, overrides DirectorySet) DirectorySet {
	logger := logging.GetLogger("dirs")
	d := Defaults(scope)
	for _, f := range Fields {
		v := overrides.Get(f)
		if v == "" {
			continue
		}
		if !scope.IsSystem() && IsSystemOnly(f) {
			logger.Warn().
				Str("field", string(f)).
				Str("value", v).
				Msg("Ignoring system-only directory in a user installation")
			continue
		}
		d.Set(f, v)
	}
	return d
}
