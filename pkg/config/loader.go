package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/errors"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable placer reads
	EnvPrefix = "PLACER_"

	// SystemConfigPath is the configuration file of system installations
	SystemConfigPath = "/etc/placer.toml"

	appDirName     = "placer"
	configFileName = "placer.toml"
)

// Config holds the settings of a run
type Config struct {
	System    bool              `koanf:"system"`
	RustDebug bool              `koanf:"rust_debug"`
	Dirs      dirs.DirectorySet `koanf:"dirs"`
}

// Scope returns the installation scope selected by the configuration
func (c *Config) Scope() types.Scope {
	return types.ScopeFromSystemFlag(c.System)
}

// LoadOptions select the configuration file and carry flag overrides
type LoadOptions struct {
	// ConfigFile is an explicit configuration file, which must exist
	ConfigFile string

	// Flags maps keys such as "system" or "dirs.bindir" to values set on
	// the command line
	Flags map[string]interface{}
}

// UserConfigPath returns the configuration file of user installations
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

// DefaultPath returns the configuration file looked up for a scope
func DefaultPath(system bool) string {
	if system {
		return SystemConfigPath
	}
	return UserConfigPath()
}

// Load builds the configuration of a run from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	// The scope picks the configuration file, so it is settled from the
	// environment and the flags first
	pre := koanf.New(".")
	if err := loadOverrides(pre, opts.Flags); err != nil {
		return nil, err
	}
	system := pre.Bool("system")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Configuration file
	path := opts.ConfigFile
	if path == "" {
		path = DefaultPath(system)
		if _, err := os.Stat(path); err != nil {
			logger.Debug().Str("path", path).Msg("No configuration file")
			path = ""
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read configuration file %s", path).
			WithDetail("path", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load configuration from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Configuration file loaded")
	}

	// 3. Environment, 4. flags
	if err := loadOverrides(k, opts.Flags); err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Bool("system", cfg.System).
		Bool("rustDebug", cfg.RustDebug).
		Int("dirOverrides", len(cfg.Dirs.Entries())).
		Msg("Configuration loaded")
	return &cfg, nil
}

// loadOverrides loads the environment then the flags into k
func loadOverrides(k *koanf.Koanf, flags map[string]interface{}) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}
	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}
	return nil
}

// envKey maps PLACER_DIRS_EXEC_PREFIX to dirs.exec_prefix and
// PLACER_RUST_DEBUG to rust_debug
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "dirs_"); ok {
		return "dirs." + rest
	}
	return key
}
