package placer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/placer/internal/version"
	"github.com/arthur-debert/placer/pkg/config"
	"github.com/arthur-debert/placer/pkg/core"
	"github.com/arthur-debert/placer/pkg/dirs"
	"github.com/arthur-debert/placer/pkg/logging"
	"github.com/arthur-debert/placer/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags shared by every command
type rootOptions struct {
	verbosity  int
	system     bool
	configFile string
	packageDir string
	packages   []string
	rustDebug  bool
	noColor    bool
	dirs       map[dirs.Field]*string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{dirs: make(map[dirs.Field]*string, len(dirs.Fields))}

	rootCmd := &cobra.Command{
		Use:     "placer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.system, "system", false, MsgFlagSystem)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&opts.packageDir, "package-dir", "P", "", MsgFlagPackageDir)
	flags.StringSliceVarP(&opts.packages, "pkgs", "p", nil, MsgFlagPackages)
	flags.BoolVar(&opts.rustDebug, "rust-debug-target", false, MsgFlagRustDebug)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)
	for _, f := range dirs.Fields {
		opts.dirs[f] = flags.String(dirFlagName(f), "", fmt.Sprintf(MsgFlagDir, string(f)))
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPlanCmd(opts))
	rootCmd.AddCommand(newRpmFilesCmd(opts))
	rootCmd.AddCommand(newDirsCmd(opts))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// dirFlagName maps exec_prefix to --exec-prefix
func dirFlagName(f dirs.Field) string {
	return strings.ReplaceAll(string(f), "_", "-")
}

// flagOverrides returns the configuration keys set explicitly on the
// command line. Unset flags do not mask the file or the environment.
func (o *rootOptions) flagOverrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	overrides := make(map[string]interface{})
	if flags.Changed("system") {
		overrides["system"] = o.system
	}
	if flags.Changed("rust-debug-target") {
		overrides["rust_debug"] = o.rustDebug
	}
	for _, f := range dirs.Fields {
		if flags.Changed(dirFlagName(f)) {
			overrides["dirs."+string(f)] = *o.dirs[f]
		}
	}
	return overrides
}

// planOptions loads the configuration and builds the options of a run
func (o *rootOptions) planOptions(cmd *cobra.Command) (core.PlanOptions, error) {
	logger := logging.WithFields(map[string]interface{}{
		"component": "cmd.placer",
		"command":   cmd.Name(),
	})

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Flags:      o.flagOverrides(cmd),
	})
	if err != nil {
		return core.PlanOptions{}, err
	}

	packageDir := o.packageDir
	if packageDir == "" {
		packageDir, err = os.Getwd()
		if err != nil {
			return core.PlanOptions{}, fmt.Errorf(MsgErrPackageDir, err)
		}
	}
	packageDir, err = filepath.Abs(packageDir)
	if err != nil {
		return core.PlanOptions{}, fmt.Errorf(MsgErrPackageDir, err)
	}

	logger.Debug().
		Str("scope", string(cfg.Scope())).
		Str("packageDir", packageDir).
		Strs("packages", o.packages).
		Msg("Run options assembled")

	return core.PlanOptions{
		Scope:      cfg.Scope(),
		PackageDir: packageDir,
		Packages:   o.packages,
		Overrides:  cfg.Dirs,
		RustDebug:  cfg.RustDebug,
	}, nil
}

// renderer returns a renderer for the command output
func (o *rootOptions) renderer(cmd *cobra.Command, format output.Format) *output.Renderer {
	w := cmd.OutOrStdout()
	return output.NewRenderer(w, format, o.noColor || !isTerminal(w))
}

// isTerminal reports whether w is a terminal that accepts colors
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !output.NoColor(f)
}
