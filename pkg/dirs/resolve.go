package dirs

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
)

// baseDir identifies a directory supplied by a BaseDirectories provider
type baseDir int

const (
	baseNone baseDir = iota
	baseHome
	baseDataHome
	baseConfigHome
	baseRuntimeDir
)

// rewriteStep substitutes token with the value of source (or of an
// external base directory) in each of the into fields
type rewriteStep struct {
	token  string
	source Field
	base   baseDir
	into   []Field
}

// allBut returns every field except the excluded one
func allBut(excluded Field) []Field {
	fields := make([]Field, 0, len(Fields)-1)
	for _, f := range Fields {
		if f != excluded {
			fields = append(fields, f)
		}
	}
	return fields
}

var systemSteps = []rewriteStep{
	{token: "@prefix@", source: FieldPrefix, into: allBut(FieldPrefix)},
	{token: "@exec_prefix@", source: FieldExecPrefix, into: []Field{FieldBindir, FieldSbindir, FieldLibdir, FieldLibexecdir}},
	{token: "@localstatedir@", source: FieldLocalstatedir, into: []Field{FieldRunstatedir}},
	{token: "@datarootdir@", source: FieldDatarootdir, into: []Field{FieldDocdir, FieldMandir}},
	{token: "@libdir@", source: FieldLibdir, into: []Field{FieldPamModulesdir, FieldSystemdUnitsdir}},
}

var userSteps = []rewriteStep{
	{token: "@HOME@", base: baseHome, into: Fields},
	{token: "@XDG_DATA_HOME@", base: baseDataHome, into: Fields},
	{token: "@XDG_CONFIG_HOME@", base: baseConfigHome, into: Fields},
	{token: "@XDG_RUNTIME_DIR@", base: baseRuntimeDir, into: Fields},
	{token: "@sysconfdir@", source: FieldSysconfdir, into: []Field{FieldSystemdUnitsdir}},
}

var placeholderPattern = regexp.MustCompile(`@[A-Za-z_]+@`)

// Resolve builds the DirectorySet of a run: defaults of the scope, then
// overrides, then placeholder substitution. base is only consulted in user
// scope and may be nil for system installs.
func Resolve(scope types.Scope, overrides DirectorySet, base BaseDirectories) (DirectorySet, error) {
	logger := logging.GetLogger("dirs.resolve").With().Str("scope", string(scope)).Logger()

	d := New(scope, overrides)

	steps := systemSteps
	if !scope.IsSystem() {
		if base == nil {
			return DirectorySet{}, errors.New(errors.ErrInternal, "user installation requires base directories")
		}
		steps = userSteps
	}

	for _, step := range steps {
		if !step.referenced(d) {
			continue
		}
		value, err := step.value(d, base)
		if err != nil {
			return DirectorySet{}, err
		}
		for _, f := range step.into {
			if v := d.Get(f); v != "" {
				d.Set(f, strings.ReplaceAll(v, step.token, value))
			}
		}
		logger.Trace().Str("token", step.token).Str("value", value).Msg("Placeholder substituted")
	}

	if err := validate(&d, overrides); err != nil {
		return DirectorySet{}, err
	}

	for _, e := range d.Entries() {
		logger.Debug().Str("field", string(e.Name)).Str("path", e.Value).Msg("Directory resolved")
	}
	return d, nil
}

// referenced reports whether any target field still contains the token
func (s rewriteStep) referenced(d DirectorySet) bool {
	for _, f := range s.into {
		if strings.Contains(d.Get(f), s.token) {
			return true
		}
	}
	return false
}

// value returns the replacement text of a step
func (s rewriteStep) value(d DirectorySet, base BaseDirectories) (string, error) {
	if s.base == baseNone {
		v := d.Get(s.source)
		if v == "" {
			return "", errors.Newf(errors.ErrInvalidInput,
				"%s is referenced by %s but is not set", s.source, s.token).
				WithDetail("field", string(s.source))
		}
		return v, nil
	}

	var (
		v   string
		err error
	)
	switch s.base {
	case baseHome:
		v, err = base.Home()
	case baseDataHome:
		v, err = base.DataHome()
	case baseConfigHome:
		v, err = base.ConfigHome()
	case baseRuntimeDir:
		v, err = base.RuntimeDir()
	}
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrInsecureRuntimeDir) {
			return "", err
		}
		return "", errors.Wrapf(err, errors.ErrExternalResolution, "unable to resolve %s", s.token)
	}
	if !utf8.ValidString(v) || v == "" {
		return "", errors.Newf(errors.ErrExternalResolution, "unable to convert %q to a path string", v).
			WithDetail("token", s.token)
	}
	if !filepath.IsAbs(v) {
		return "", errors.Newf(errors.ErrExternalResolution, "%s resolved to a relative path %q", s.token, v).
			WithDetail("token", s.token)
	}
	// Later steps would rewrite it and validate would blame the defaults
	if placeholderPattern.MatchString(v) {
		return "", errors.Newf(errors.ErrExternalResolution, "%s resolved to %q, which contains a placeholder", s.token, v).
			WithDetail("token", s.token)
	}
	return filepath.Clean(v), nil
}

// validate checks that every populated field is an absolute path without
// placeholders. A broken default table is a programming error and panics.
func validate(d *DirectorySet, overrides DirectorySet) error {
	for _, f := range Fields {
		v := d.Get(f)
		if v == "" {
			continue
		}
		var problem string
		switch {
		case placeholderPattern.MatchString(v):
			problem = fmt.Sprintf("unresolved placeholder %s", placeholderPattern.FindString(v))
		case !filepath.IsAbs(v):
			problem = "path is not absolute"
		default:
			d.Set(f, filepath.Clean(v))
			continue
		}
		if overrides.IsEmpty() {
			panic(fmt.Sprintf("dirs: default %s %q is invalid: %s", f, v, problem))
		}
		return errors.Newf(errors.ErrInvalidInput, "invalid %s %q: %s", f, v, problem).
			WithDetail("field", string(f))
	}
	return nil
}
