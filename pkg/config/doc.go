// Package config loads placer settings.
//
// Settings are layered, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the configuration file: --config, or placer/placer.toml under
//     $XDG_CONFIG_HOME for user installations and /etc/placer.toml for
//     system installations
//  3. PLACER_* environment variables, e.g. PLACER_SYSTEM=true or
//     PLACER_DIRS_BINDIR=/opt/bin
//  4. command-line flags
//
// Only the explicit --config file must exist; the default locations are
// optional.
package config
