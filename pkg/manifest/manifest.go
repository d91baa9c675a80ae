package manifest

import (
	"path/filepath"
	"reflect"

	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/go-viper/mapstructure/v2"
)

// Format is the syntax of a manifest file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// candidate is a manifest file name and its syntax
type candidate struct {
	name   string
	format Format
}

// FileNames lists the manifest file names in lookup order
var FileNames = []string{"install.yml", "install.yaml", "install.toml"}

var candidates = []candidate{
	{name: "install.yml", format: FormatYAML},
	{name: "install.yaml", format: FormatYAML},
	{name: "install.toml", format: FormatTOML},
}

// document is the top level of a manifest
type document struct {
	Version string                 `mapstructure:"version"`
	Pkgs    map[string]interface{} `mapstructure:"pkgs"`
}

// Find returns the path and format of the manifest in dir
func Find(fsys types.FS, dir string) (string, Format, error) {
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		info, err := fsys.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, c.format, nil
	}
	return "", "", errors.Newf(errors.ErrNotFound, "no manifest found in %s", dir).
		WithDetail("dir", dir).
		WithDetail("candidates", FileNames)
}

// Load finds and parses the manifest of the project in dir
func Load(fsys types.FS, dir string) (*types.Manifest, error) {
	logger := logging.GetLogger("manifest").With().Str("dir", dir).Logger()

	path, format, err := Find(fsys, dir)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, format)
	if err != nil {
		if placerErr, ok := err.(*errors.PlacerError); ok {
			placerErr.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("version", m.Version).
		Int("packages", len(m.Packages)).
		Msg("Manifest loaded")
	return m, nil
}

// Parse decodes a manifest document
func Parse(data []byte, format Format) (*types.Manifest, error) {
	var (
		raw   map[string]interface{}
		order []string
		err   error
	)
	switch format {
	case FormatYAML:
		raw, order, err = parseYAML(data)
	case FormatTOML:
		raw, order, err = parseTOML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown manifest format %q", format)
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := decode(raw, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrSchemaViolation, "invalid manifest")
	}
	if doc.Version == "" {
		return nil, errors.New(errors.ErrSchemaViolation, "the manifest does not declare a version")
	}

	m := &types.Manifest{Version: doc.Version}
	for _, name := range order {
		if name == "" {
			return nil, errors.New(errors.ErrInvalidInput, "missing package name")
		}

		var pkg types.Package
		if body := doc.Pkgs[name]; body != nil {
			if err := decode(body, &pkg); err != nil {
				return nil, errors.Wrapf(err, errors.ErrSchemaViolation, "invalid package %s", name).
					WithDetail("package", name)
			}
		}
		pkg.Name = name

		if !pkg.Type.Valid() {
			return nil, errors.Newf(errors.ErrSchemaViolation, "unknown project type %q", pkg.Type).
				WithDetail("package", name)
		}
		pkg.Type = pkg.Type.Normalize()

		m.Packages = append(m.Packages, pkg)
	}

	return m, nil
}

// decode maps a generic document onto a typed value, rejecting unknown keys
func decode(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      output,
		ErrorUnused: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToEntryHookFunc(),
			stringToIconHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// stringToEntryHookFunc accepts a bare source path as an InstallEntry
func stringToEntryHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(types.InstallEntry{}) {
			return data, nil
		}
		return types.InstallEntry{Source: data.(string)}, nil
	}
}

// stringToIconHookFunc accepts a bare source path as an Icon
func stringToIconHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(types.Icon{}) {
			return data, nil
		}
		return types.Icon{Source: data.(string)}, nil
	}
}
