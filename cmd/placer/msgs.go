package placer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compile installation manifests into install targets"
	MsgPlanShort       = "Print the install targets of the selected packages"
	MsgRpmFilesShort   = "Print an RPM %files list of the install targets"
	MsgDirsShort       = "Print the resolved installation directories"
	MsgDirsLong        = "Dirs resolves the installation directories of the selected scope, applying overrides from the configuration file, the environment and the command line."
	MsgConfigShort     = "Print a sample configuration file"
	MsgConfigLong      = "Config prints a commented configuration file listing every setting with its default value."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSystem     = "Install system-wide instead of for the current user"
	MsgFlagConfig     = "Configuration file (default is $XDG_CONFIG_HOME/placer/placer.toml, /etc/placer.toml with --system)"
	MsgFlagPackageDir = "Directory holding the manifest (default is the current directory)"
	MsgFlagPackages   = "Packages to plan, all when omitted"
	MsgFlagRustDebug  = "Use the debug profile of Rust projects"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagFormat     = "Output format (text, json, yaml)"
	MsgFlagDir        = "Override the %s directory"
	MsgFlagManDir     = "Write one man page per command into this directory instead of stdout"

	// Version output
	MsgVersionFormat = "placer version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrPackageDir = "failed to determine the package directory: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/rpm-files-long.txt
	msgRpmFilesLongRaw string
	MsgRpmFilesLong    = strings.TrimSpace(msgRpmFilesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
